package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	Create(ctx context.Context, seat *entity.Seat) error
	FindByID(ctx context.Context, id int64) (*entity.Seat, error)
	FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Seat, error)
	UpdateStatus(ctx context.Context, seatID int64, status entity.SeatStatus) error

	// Business queries
	FindAvailableForScreening(ctx context.Context, screeningID int64) ([]*entity.Seat, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) Create(ctx context.Context, seat *entity.Seat) error {
	query := `
		INSERT INTO seats (room_id, row_label, number, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		seat.RoomID,
		seat.RowLabel,
		seat.Number,
		seat.Status,
	).Scan(&seat.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create seat",
				zap.Error(err),
				zap.Int64("room_id", seat.RoomID),
				zap.String("row", seat.RowLabel),
				zap.Int("number", seat.Number),
			)
		}
		return fmt.Errorf("create seat %s%d in room %d: %w",
			seat.RowLabel, seat.Number, seat.RoomID, err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id int64) (*entity.Seat, error) {
	query := `
		SELECT id, room_id, row_label, number, status
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.RoomID,
		&seat.RowLabel,
		&seat.Number,
		&seat.Status,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.Int64("seat_id", id),
		)
		return nil, fmt.Errorf("find seat by ID %d: %w", id, err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByRoomID(ctx context.Context, roomID int64) ([]*entity.Seat, error) {
	query := `
		SELECT id, room_id, row_label, number, status
		FROM seats
		WHERE room_id = $1
		ORDER BY row_label, number
	`

	rows, err := q(ctx, r.db).Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find seats by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return nil, fmt.Errorf("find seats by room ID %d: %w", roomID, err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

// FindAvailableForScreening returns the seats of the screening's room that
// carry status available and have no valid ticket for that screening,
// ordered by row then number.
func (r *seatRepository) FindAvailableForScreening(ctx context.Context, screeningID int64) ([]*entity.Seat, error) {
	query := `
		SELECT se.id, se.room_id, se.row_label, se.number, se.status
		FROM seats se
		WHERE se.room_id = (SELECT room_id FROM screenings WHERE id = $1)
		  AND se.status = 'available'
		  AND se.id NOT IN (
			SELECT t.seat_id
			FROM tickets t
			WHERE t.screening_id = $1 AND t.status = 'valid'
		  )
		ORDER BY se.row_label, se.number
	`

	rows, err := q(ctx, r.db).Query(ctx, query, screeningID)
	if err != nil {
		r.log.Error("Failed to find available seats",
			zap.Error(err),
			zap.Int64("screening_id", screeningID),
		)
		return nil, fmt.Errorf("find available seats for screening %d: %w", screeningID, err)
	}
	defer rows.Close()

	return scanSeats(rows, r.log)
}

func (r *seatRepository) UpdateStatus(ctx context.Context, seatID int64, status entity.SeatStatus) error {
	query := `UPDATE seats SET status = $2 WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, seatID, status)
	if err != nil {
		r.log.Error("Failed to update seat status",
			zap.Error(err),
			zap.Int64("seat_id", seatID),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update seat %d status to %s: %w", seatID, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seat %d not found", seatID)
	}

	return nil
}

func scanSeats(rows pgx.Rows, log *zap.Logger) ([]*entity.Seat, error) {
	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.RoomID,
			&seat.RowLabel,
			&seat.Number,
			&seat.Status,
		)
		if err != nil {
			log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	if err := rows.Err(); err != nil {
		log.Error("Failed to iterate seat rows", zap.Error(err))
		return nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	return seats, nil
}
