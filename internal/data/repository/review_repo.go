package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ReviewSummary aggregates all reviews of one film.
type ReviewSummary struct {
	FilmTitle     string
	AverageRating *float64
	ReviewCount   int64
}

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ExistsByCustomerAndFilm(ctx context.Context, customerID, filmID int64) (bool, error)
	FindByFilmID(ctx context.Context, filmID int64) ([]*entity.Review, error)
	FilmSummary(ctx context.Context, filmID int64) (*ReviewSummary, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (rating, comment, customer_id, film_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		review.Rating,
		review.Comment,
		review.CustomerID,
		review.FilmID,
		review.CreatedAt,
	).Scan(&review.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create review",
				zap.Error(err),
				zap.Int64("customer_id", review.CustomerID),
				zap.Int64("film_id", review.FilmID),
			)
		}
		return fmt.Errorf("create review for film %d by customer %d: %w",
			review.FilmID, review.CustomerID, err)
	}

	return nil
}

func (r *reviewRepository) ExistsByCustomerAndFilm(ctx context.Context, customerID, filmID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM reviews WHERE customer_id = $1 AND film_id = $2
		)
	`

	var exists bool
	err := q(ctx, r.db).QueryRow(ctx, query, customerID, filmID).Scan(&exists)
	if err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.Int64("customer_id", customerID),
			zap.Int64("film_id", filmID),
		)
		return false, fmt.Errorf("check review for film %d by customer %d: %w", filmID, customerID, err)
	}

	return exists, nil
}

func (r *reviewRepository) FindByFilmID(ctx context.Context, filmID int64) ([]*entity.Review, error) {
	query := `
		SELECT id, rating, comment, customer_id, film_id, created_at
		FROM reviews
		WHERE film_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q(ctx, r.db).Query(ctx, query, filmID)
	if err != nil {
		r.log.Error("Failed to find reviews by film ID",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return nil, fmt.Errorf("find reviews by film ID %d: %w", filmID, err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.Rating,
			&review.Comment,
			&review.CustomerID,
			&review.FilmID,
			&review.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate review rows", zap.Error(err))
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func (r *reviewRepository) FilmSummary(ctx context.Context, filmID int64) (*ReviewSummary, error) {
	query := `
		SELECT f.title, AVG(r.rating), COUNT(r.id)
		FROM films f
		LEFT JOIN reviews r ON f.id = r.film_id
		WHERE f.id = $1
		GROUP BY f.id, f.title
	`

	var summary ReviewSummary
	err := q(ctx, r.db).QueryRow(ctx, query, filmID).Scan(
		&summary.FilmTitle,
		&summary.AverageRating,
		&summary.ReviewCount,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to get film review summary",
			zap.Error(err),
			zap.Int64("film_id", filmID),
		)
		return nil, fmt.Errorf("film review summary %d: %w", filmID, err)
	}

	return &summary, nil
}
