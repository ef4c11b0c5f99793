package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TariffRepository interface {
	Create(ctx context.Context, tariff *entity.Tariff) error
	FindByID(ctx context.Context, id int64) (*entity.Tariff, error)
	FindAll(ctx context.Context) ([]*entity.Tariff, error)
	Delete(ctx context.Context, id int64) error
}

type tariffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTariffRepository(db database.PgxIface, log *zap.Logger) TariffRepository {
	return &tariffRepository{
		db:  db,
		log: log.With(zap.String("repository", "tariff")),
	}
}

func (r *tariffRepository) Create(ctx context.Context, tariff *entity.Tariff) error {
	query := `
		INSERT INTO tariffs (name, base_price, time_band, day_of_week, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		tariff.Name,
		tariff.BasePrice,
		tariff.TimeBand,
		tariff.DayOfWeek,
		tariff.Description,
	).Scan(&tariff.ID)

	if err != nil {
		r.log.Error("Failed to create tariff",
			zap.Error(err),
			zap.String("name", tariff.Name),
		)
		return fmt.Errorf("create tariff %s: %w", tariff.Name, err)
	}

	return nil
}

func (r *tariffRepository) FindByID(ctx context.Context, id int64) (*entity.Tariff, error) {
	query := `
		SELECT id, name, base_price, time_band, day_of_week, description
		FROM tariffs
		WHERE id = $1
	`

	var tariff entity.Tariff
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&tariff.ID,
		&tariff.Name,
		&tariff.BasePrice,
		&tariff.TimeBand,
		&tariff.DayOfWeek,
		&tariff.Description,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tariff by ID",
			zap.Error(err),
			zap.Int64("tariff_id", id),
		)
		return nil, fmt.Errorf("find tariff by ID %d: %w", id, err)
	}

	return &tariff, nil
}

func (r *tariffRepository) FindAll(ctx context.Context) ([]*entity.Tariff, error) {
	query := `
		SELECT id, name, base_price, time_band, day_of_week, description
		FROM tariffs
		ORDER BY name
	`

	rows, err := q(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find tariffs", zap.Error(err))
		return nil, fmt.Errorf("find tariffs: %w", err)
	}
	defer rows.Close()

	var tariffs []*entity.Tariff
	for rows.Next() {
		var tariff entity.Tariff
		err := rows.Scan(
			&tariff.ID,
			&tariff.Name,
			&tariff.BasePrice,
			&tariff.TimeBand,
			&tariff.DayOfWeek,
			&tariff.Description,
		)
		if err != nil {
			r.log.Error("Failed to scan tariff row", zap.Error(err))
			return nil, fmt.Errorf("scan tariff row: %w", err)
		}
		tariffs = append(tariffs, &tariff)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate tariff rows", zap.Error(err))
		return nil, fmt.Errorf("iterate tariff rows: %w", err)
	}

	return tariffs, nil
}

func (r *tariffRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM tariffs WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete tariff",
			zap.Error(err),
			zap.Int64("tariff_id", id),
		)
		return fmt.Errorf("delete tariff %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("tariff %d not found", id)
	}

	r.log.Info("Tariff deleted", zap.Int64("tariff_id", id))
	return nil
}
