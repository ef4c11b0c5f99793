package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// TicketHistory is one row of a customer's purchase history.
type TicketHistory struct {
	TicketID   int64
	FilmTitle  string
	Date       time.Time
	StartsAt   time.Time
	RoomNumber int
	Seat       string // row label + number, e.g. A1
	Price      float64
	Status     entity.TicketStatus
	Promotion  *string
}

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id int64) (*entity.Ticket, error)
	UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) (bool, error)

	// Business queries
	SeatTaken(ctx context.Context, screeningID, seatID int64) (bool, error)
	CountValidByScreening(ctx context.Context, screeningID int64) (int64, error)
	FindHistoryByCustomer(ctx context.Context, customerID int64) ([]*TicketHistory, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (screening_id, customer_id, seat_id, promotion_id, status, price, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		ticket.ScreeningID,
		ticket.CustomerID,
		ticket.SeatID,
		ticket.PromotionID,
		ticket.Status,
		ticket.Price,
		ticket.IssuedAt,
	).Scan(&ticket.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.Int64("screening_id", ticket.ScreeningID),
				zap.Int64("seat_id", ticket.SeatID),
				zap.Int64("customer_id", ticket.CustomerID),
			)
		}
		return fmt.Errorf("create ticket for screening %d seat %d: %w",
			ticket.ScreeningID, ticket.SeatID, err)
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id int64) (*entity.Ticket, error) {
	query := `
		SELECT id, screening_id, customer_id, seat_id, promotion_id, status, price, issued_at
		FROM tickets
		WHERE id = $1
	`

	var ticket entity.Ticket
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.ScreeningID,
		&ticket.CustomerID,
		&ticket.SeatID,
		&ticket.PromotionID,
		&ticket.Status,
		&ticket.Price,
		&ticket.IssuedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID",
			zap.Error(err),
			zap.Int64("ticket_id", id),
		)
		return nil, fmt.Errorf("find ticket by ID %d: %w", id, err)
	}

	return &ticket, nil
}

// UpdateStatus sets the ticket status unconditionally. There is no transition
// table: any status can be written over any other.
func (r *ticketRepository) UpdateStatus(ctx context.Context, ticketID int64, status entity.TicketStatus) (bool, error) {
	query := `UPDATE tickets SET status = $2 WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, ticketID, status)
	if err != nil {
		r.log.Error("Failed to update ticket status",
			zap.Error(err),
			zap.Int64("ticket_id", ticketID),
			zap.String("status", string(status)),
		)
		return false, fmt.Errorf("update ticket %d status to %s: %w", ticketID, string(status), err)
	}

	return result.RowsAffected() > 0, nil
}

// SeatTaken reports whether a valid ticket already claims the seat for the
// screening. Used and cancelled tickets do not block a sale.
func (r *ticketRepository) SeatTaken(ctx context.Context, screeningID, seatID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM tickets
			WHERE screening_id = $1 AND seat_id = $2 AND status = 'valid'
		)
	`

	var taken bool
	err := q(ctx, r.db).QueryRow(ctx, query, screeningID, seatID).Scan(&taken)
	if err != nil {
		r.log.Error("Failed to check seat occupancy",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
			zap.Int64("seat_id", seatID),
		)
		return false, fmt.Errorf("check seat %d for screening %d: %w", seatID, screeningID, err)
	}

	return taken, nil
}

func (r *ticketRepository) CountValidByScreening(ctx context.Context, screeningID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM tickets WHERE screening_id = $1 AND status = 'valid'`

	var count int64
	err := q(ctx, r.db).QueryRow(ctx, query, screeningID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count valid tickets",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
		)
		return 0, fmt.Errorf("count valid tickets for screening %d: %w", screeningID, err)
	}

	return count, nil
}

func (r *ticketRepository) FindHistoryByCustomer(ctx context.Context, customerID int64) ([]*TicketHistory, error) {
	query := `
		SELECT t.id, f.title, s.date, s.starts_at, ro.number,
		       se.row_label || se.number::text AS seat,
		       t.price, t.status, p.name
		FROM tickets t
		JOIN screenings s ON t.screening_id = s.id
		JOIN films f ON s.film_id = f.id
		JOIN rooms ro ON s.room_id = ro.id
		JOIN seats se ON t.seat_id = se.id
		LEFT JOIN promotions p ON t.promotion_id = p.id
		WHERE t.customer_id = $1
		ORDER BY s.date DESC, s.starts_at DESC
	`

	rows, err := q(ctx, r.db).Query(ctx, query, customerID)
	if err != nil {
		r.log.Error("Failed to find ticket history",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
		)
		return nil, fmt.Errorf("find ticket history for customer %d: %w", customerID, err)
	}
	defer rows.Close()

	var history []*TicketHistory
	for rows.Next() {
		var item TicketHistory
		err := rows.Scan(
			&item.TicketID,
			&item.FilmTitle,
			&item.Date,
			&item.StartsAt,
			&item.RoomNumber,
			&item.Seat,
			&item.Price,
			&item.Status,
			&item.Promotion,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket history row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket history row: %w", err)
		}
		history = append(history, &item)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate ticket history rows", zap.Error(err))
		return nil, fmt.Errorf("iterate ticket history rows: %w", err)
	}

	return history, nil
}
