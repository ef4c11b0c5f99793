package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

// DailyRevenue is the takings of one calendar day. Cancelled tickets are
// excluded; used tickets still count because the money was collected.
type DailyRevenue struct {
	Day          time.Time
	TicketsSold  int64
	TotalRevenue float64
	AveragePrice float64
}

// FilmPopularity ranks films by non-cancelled tickets sold.
type FilmPopularity struct {
	Title         string
	TicketsSold   int64
	Revenue       *float64
	AverageRating *float64
}

type ReportRepository interface {
	DailyRevenue(ctx context.Context, from, to time.Time) ([]*DailyRevenue, error)
	TopFilms(ctx context.Context, limit int) ([]*FilmPopularity, error)
}

type reportRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReportRepository(db database.PgxIface, log *zap.Logger) ReportRepository {
	return &reportRepository{
		db:  db,
		log: log.With(zap.String("repository", "report")),
	}
}

func (r *reportRepository) DailyRevenue(ctx context.Context, from, to time.Time) ([]*DailyRevenue, error) {
	query := `
		SELECT DATE(t.issued_at) AS day,
		       COUNT(t.id) AS tickets_sold,
		       SUM(t.price) AS total_revenue,
		       AVG(t.price) AS average_price
		FROM tickets t
		WHERE t.status IN ('valid', 'used')
		  AND DATE(t.issued_at) BETWEEN $1 AND $2
		GROUP BY DATE(t.issued_at)
		ORDER BY day DESC
	`

	rows, err := q(ctx, r.db).Query(ctx, query, from, to)
	if err != nil {
		r.log.Error("Failed to query daily revenue",
			zap.Error(err),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return nil, fmt.Errorf("daily revenue %s..%s: %w",
			from.Format("2006-01-02"), to.Format("2006-01-02"), err)
	}
	defer rows.Close()

	var report []*DailyRevenue
	for rows.Next() {
		var day DailyRevenue
		err := rows.Scan(
			&day.Day,
			&day.TicketsSold,
			&day.TotalRevenue,
			&day.AveragePrice,
		)
		if err != nil {
			r.log.Error("Failed to scan daily revenue row", zap.Error(err))
			return nil, fmt.Errorf("scan daily revenue row: %w", err)
		}
		report = append(report, &day)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate daily revenue rows", zap.Error(err))
		return nil, fmt.Errorf("iterate daily revenue rows: %w", err)
	}

	return report, nil
}

func (r *reportRepository) TopFilms(ctx context.Context, limit int) ([]*FilmPopularity, error) {
	query := `
		SELECT f.title,
		       COUNT(t.id) AS tickets_sold,
		       SUM(t.price) AS revenue,
		       AVG(rv.rating) AS average_rating
		FROM films f
		LEFT JOIN screenings s ON f.id = s.film_id
		LEFT JOIN tickets t ON s.id = t.screening_id AND t.status <> 'cancelled'
		LEFT JOIN reviews rv ON f.id = rv.film_id
		GROUP BY f.id, f.title
		ORDER BY tickets_sold DESC
		LIMIT $1
	`

	rows, err := q(ctx, r.db).Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to query top films",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("top films: %w", err)
	}
	defer rows.Close()

	var report []*FilmPopularity
	for rows.Next() {
		var film FilmPopularity
		err := rows.Scan(
			&film.Title,
			&film.TicketsSold,
			&film.Revenue,
			&film.AverageRating,
		)
		if err != nil {
			r.log.Error("Failed to scan top films row", zap.Error(err))
			return nil, fmt.Errorf("scan top films row: %w", err)
		}
		report = append(report, &film)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate top films rows", zap.Error(err))
		return nil, fmt.Errorf("iterate top films rows: %w", err)
	}

	return report, nil
}
