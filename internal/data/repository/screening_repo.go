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

// ScreeningSummary is one row of the daily board: a screening joined with its
// film, room and tariff, plus the number of seats still sellable.
type ScreeningSummary struct {
	ScreeningID    int64
	FilmTitle      string
	RoomNumber     int
	StartsAt       time.Time
	EndsAt         time.Time
	BasePrice      float64
	SeatsRemaining int
}

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id int64) (*entity.Screening, error)
	FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*entity.Screening, error)
	Delete(ctx context.Context, id int64) error

	// Business queries
	ExistsOverlap(ctx context.Context, roomID int64, date time.Time, startsAt, endsAt time.Time, excludeID *int64) (bool, error)
	ListOnDate(ctx context.Context, date time.Time) ([]*ScreeningSummary, error)
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (date, starts_at, ends_at, film_id, room_id, staff_id, tariff_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		screening.Date,
		screening.StartsAt,
		screening.EndsAt,
		screening.FilmID,
		screening.RoomID,
		screening.StaffID,
		screening.TariffID,
	).Scan(&screening.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create screening",
				zap.Error(err),
				zap.Int64("film_id", screening.FilmID),
				zap.Int64("room_id", screening.RoomID),
				zap.Time("starts_at", screening.StartsAt),
			)
		}
		return fmt.Errorf("create screening for film %d room %d: %w",
			screening.FilmID, screening.RoomID, err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id int64) (*entity.Screening, error) {
	query := `
		SELECT id, date, starts_at, ends_at, film_id, room_id, staff_id, tariff_id
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.Date,
		&screening.StartsAt,
		&screening.EndsAt,
		&screening.FilmID,
		&screening.RoomID,
		&screening.StaffID,
		&screening.TariffID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return nil, fmt.Errorf("find screening by ID %d: %w", id, err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*entity.Screening, error) {
	query := `
		SELECT id, date, starts_at, ends_at, film_id, room_id, staff_id, tariff_id
		FROM screenings
		WHERE room_id = $1 AND date = $2
		ORDER BY starts_at
	`

	rows, err := q(ctx, r.db).Query(ctx, query, roomID, date)
	if err != nil {
		r.log.Error("Failed to find screenings by room and date",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("find screenings by room %d date %s: %w",
			roomID, date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.Date,
			&screening.StartsAt,
			&screening.EndsAt,
			&screening.FilmID,
			&screening.RoomID,
			&screening.StaffID,
			&screening.TariffID,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate screening rows", zap.Error(err))
		return nil, fmt.Errorf("iterate screening rows: %w", err)
	}

	return screenings, nil
}

// ExistsOverlap reports whether any screening in the room on the date
// intersects [startsAt, endsAt) under half-open semantics: an existing
// screening ending exactly at startsAt does not count.
func (r *screeningRepository) ExistsOverlap(ctx context.Context, roomID int64, date time.Time, startsAt, endsAt time.Time, excludeID *int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM screenings
			WHERE room_id = $1
			  AND date = $2
			  AND starts_at < $4
			  AND ends_at > $3
			  AND ($5::bigint IS NULL OR id <> $5)
		)
	`

	var exists bool
	err := q(ctx, r.db).QueryRow(ctx, query, roomID, date, startsAt, endsAt, excludeID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check screening overlap",
			zap.Error(err),
			zap.Int64("room_id", roomID),
			zap.Time("starts_at", startsAt),
			zap.Time("ends_at", endsAt),
		)
		return false, fmt.Errorf("check overlap in room %d: %w", roomID, err)
	}

	return exists, nil
}

func (r *screeningRepository) ListOnDate(ctx context.Context, date time.Time) ([]*ScreeningSummary, error) {
	query := `
		SELECT s.id, f.title, ro.number, s.starts_at, s.ends_at, t.base_price,
		       ro.capacity - COUNT(ti.id) AS seats_remaining
		FROM screenings s
		JOIN films f ON s.film_id = f.id
		JOIN rooms ro ON s.room_id = ro.id
		JOIN tariffs t ON s.tariff_id = t.id
		LEFT JOIN tickets ti ON ti.screening_id = s.id AND ti.status = 'valid'
		WHERE s.date = $1
		GROUP BY s.id, f.title, ro.number, ro.capacity, t.base_price
		HAVING ro.capacity - COUNT(ti.id) > 0
		ORDER BY s.starts_at
	`

	rows, err := q(ctx, r.db).Query(ctx, query, date)
	if err != nil {
		r.log.Error("Failed to list screenings on date",
			zap.Error(err),
			zap.Time("date", date),
		)
		return nil, fmt.Errorf("list screenings on %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var summaries []*ScreeningSummary
	for rows.Next() {
		var summary ScreeningSummary
		err := rows.Scan(
			&summary.ScreeningID,
			&summary.FilmTitle,
			&summary.RoomNumber,
			&summary.StartsAt,
			&summary.EndsAt,
			&summary.BasePrice,
			&summary.SeatsRemaining,
		)
		if err != nil {
			r.log.Error("Failed to scan screening summary row", zap.Error(err))
			return nil, fmt.Errorf("scan screening summary row: %w", err)
		}
		summaries = append(summaries, &summary)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate screening summary rows", zap.Error(err))
		return nil, fmt.Errorf("iterate screening summary rows: %w", err)
	}

	return summaries, nil
}

func (r *screeningRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM screenings WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete screening",
			zap.Error(err),
			zap.Int64("screening_id", id),
		)
		return fmt.Errorf("delete screening %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("screening %d not found", id)
	}

	r.log.Info("Screening deleted", zap.Int64("screening_id", id))
	return nil
}
