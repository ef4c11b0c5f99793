package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	FindByID(ctx context.Context, id int64) (*entity.Director, error)
	FindAll(ctx context.Context) ([]*entity.Director, error)
	Delete(ctx context.Context, id int64) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `
		INSERT INTO directors (first_name, last_name, nationality, birth_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		director.FirstName,
		director.LastName,
		director.Nationality,
		director.BirthDate,
	).Scan(&director.ID)

	if err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("last_name", director.LastName),
		)
		return fmt.Errorf("create director %s %s: %w", director.FirstName, director.LastName, err)
	}

	return nil
}

func (r *directorRepository) FindByID(ctx context.Context, id int64) (*entity.Director, error) {
	query := `
		SELECT id, first_name, last_name, nationality, birth_date
		FROM directors
		WHERE id = $1
	`

	var director entity.Director
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&director.ID,
		&director.FirstName,
		&director.LastName,
		&director.Nationality,
		&director.BirthDate,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return nil, fmt.Errorf("find director by ID %d: %w", id, err)
	}

	return &director, nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	query := `
		SELECT id, first_name, last_name, nationality, birth_date
		FROM directors
		ORDER BY last_name, first_name
	`

	rows, err := q(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find directors", zap.Error(err))
		return nil, fmt.Errorf("find directors: %w", err)
	}
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		err := rows.Scan(
			&director.ID,
			&director.FirstName,
			&director.LastName,
			&director.Nationality,
			&director.BirthDate,
		)
		if err != nil {
			r.log.Error("Failed to scan director row", zap.Error(err))
			return nil, fmt.Errorf("scan director row: %w", err)
		}
		directors = append(directors, &director)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate director rows", zap.Error(err))
		return nil, fmt.Errorf("iterate director rows: %w", err)
	}

	return directors, nil
}

func (r *directorRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM directors WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.Int64("director_id", id),
		)
		return fmt.Errorf("delete director %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director %d not found", id)
	}

	r.log.Info("Director deleted", zap.Int64("director_id", id))
	return nil
}
