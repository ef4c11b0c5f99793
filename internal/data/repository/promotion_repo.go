package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PromotionRepository interface {
	Create(ctx context.Context, promotion *entity.Promotion) error
	FindByID(ctx context.Context, id int64) (*entity.Promotion, error)
	FindAll(ctx context.Context) ([]*entity.Promotion, error)
	Delete(ctx context.Context, id int64) error
}

type promotionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPromotionRepository(db database.PgxIface, log *zap.Logger) PromotionRepository {
	return &promotionRepository{
		db:  db,
		log: log.With(zap.String("repository", "promotion")),
	}
}

func (r *promotionRepository) Create(ctx context.Context, promotion *entity.Promotion) error {
	query := `
		INSERT INTO promotions (name, description, discount_percent, start_date, end_date, category)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		promotion.Name,
		promotion.Description,
		promotion.DiscountPercent,
		promotion.StartDate,
		promotion.EndDate,
		promotion.Category,
	).Scan(&promotion.ID)

	if err != nil {
		r.log.Error("Failed to create promotion",
			zap.Error(err),
			zap.String("name", promotion.Name),
		)
		return fmt.Errorf("create promotion %s: %w", promotion.Name, err)
	}

	return nil
}

func (r *promotionRepository) FindByID(ctx context.Context, id int64) (*entity.Promotion, error) {
	query := `
		SELECT id, name, description, discount_percent, start_date, end_date, category
		FROM promotions
		WHERE id = $1
	`

	var promotion entity.Promotion
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&promotion.ID,
		&promotion.Name,
		&promotion.Description,
		&promotion.DiscountPercent,
		&promotion.StartDate,
		&promotion.EndDate,
		&promotion.Category,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find promotion by ID",
			zap.Error(err),
			zap.Int64("promotion_id", id),
		)
		return nil, fmt.Errorf("find promotion by ID %d: %w", id, err)
	}

	return &promotion, nil
}

func (r *promotionRepository) FindAll(ctx context.Context) ([]*entity.Promotion, error) {
	query := `
		SELECT id, name, description, discount_percent, start_date, end_date, category
		FROM promotions
		ORDER BY start_date DESC
	`

	rows, err := q(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find promotions", zap.Error(err))
		return nil, fmt.Errorf("find promotions: %w", err)
	}
	defer rows.Close()

	var promotions []*entity.Promotion
	for rows.Next() {
		var promotion entity.Promotion
		err := rows.Scan(
			&promotion.ID,
			&promotion.Name,
			&promotion.Description,
			&promotion.DiscountPercent,
			&promotion.StartDate,
			&promotion.EndDate,
			&promotion.Category,
		)
		if err != nil {
			r.log.Error("Failed to scan promotion row", zap.Error(err))
			return nil, fmt.Errorf("scan promotion row: %w", err)
		}
		promotions = append(promotions, &promotion)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate promotion rows", zap.Error(err))
		return nil, fmt.Errorf("iterate promotion rows: %w", err)
	}

	return promotions, nil
}

func (r *promotionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM promotions WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete promotion",
			zap.Error(err),
			zap.Int64("promotion_id", id),
		)
		return fmt.Errorf("delete promotion %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("promotion %d not found", id)
	}

	r.log.Info("Promotion deleted", zap.Int64("promotion_id", id))
	return nil
}
