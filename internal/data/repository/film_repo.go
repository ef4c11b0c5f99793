package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	Create(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id int64) (*entity.Film, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Film, error)
	CountAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error

	// Business queries
	SearchByTitle(ctx context.Context, term string) ([]*entity.Film, error)
	FindByGenre(ctx context.Context, genre string) ([]*entity.Film, error)
}

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	query := `
		INSERT INTO films (title, runtime_min, genre, rating, release_year, director_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		film.Title,
		film.RuntimeMin,
		film.Genre,
		film.Rating,
		film.ReleaseYear,
		film.DirectorID,
	).Scan(&film.ID)

	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("title", film.Title),
		)
		return fmt.Errorf("create film %s: %w", film.Title, err)
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int64) (*entity.Film, error) {
	query := `
		SELECT id, title, runtime_min, genre, rating, release_year, director_id
		FROM films
		WHERE id = $1
	`

	var film entity.Film
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Title,
		&film.RuntimeMin,
		&film.Genre,
		&film.Rating,
		&film.ReleaseYear,
		&film.DirectorID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return nil, fmt.Errorf("find film by ID %d: %w", id, err)
	}

	return &film, nil
}

func (r *filmRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Film, error) {
	query := `
		SELECT id, title, runtime_min, genre, rating, release_year, director_id
		FROM films
		ORDER BY title
		LIMIT $1 OFFSET $2
	`

	rows, err := q(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find films",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find films: %w", err)
	}
	defer rows.Close()

	return scanFilms(rows, r.log)
}

func (r *filmRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM films`

	var count int64
	err := q(ctx, r.db).QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count films", zap.Error(err))
		return 0, fmt.Errorf("count films: %w", err)
	}

	return count, nil
}

func (r *filmRepository) SearchByTitle(ctx context.Context, term string) ([]*entity.Film, error) {
	query := `
		SELECT id, title, runtime_min, genre, rating, release_year, director_id
		FROM films
		WHERE title ILIKE '%' || $1 || '%'
		ORDER BY title
	`

	rows, err := q(ctx, r.db).Query(ctx, query, term)
	if err != nil {
		r.log.Error("Failed to search films by title",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search films by title %q: %w", term, err)
	}
	defer rows.Close()

	return scanFilms(rows, r.log)
}

func (r *filmRepository) FindByGenre(ctx context.Context, genre string) ([]*entity.Film, error) {
	query := `
		SELECT id, title, runtime_min, genre, rating, release_year, director_id
		FROM films
		WHERE genre = $1
		ORDER BY title
	`

	rows, err := q(ctx, r.db).Query(ctx, query, genre)
	if err != nil {
		r.log.Error("Failed to find films by genre",
			zap.Error(err),
			zap.String("genre", genre),
		)
		return nil, fmt.Errorf("find films by genre %s: %w", genre, err)
	}
	defer rows.Close()

	return scanFilms(rows, r.log)
}

func (r *filmRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM films WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete film",
			zap.Error(err),
			zap.Int64("film_id", id),
		)
		return fmt.Errorf("delete film %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("film %d not found", id)
	}

	r.log.Info("Film deleted", zap.Int64("film_id", id))
	return nil
}

func scanFilms(rows pgx.Rows, log *zap.Logger) ([]*entity.Film, error) {
	var films []*entity.Film
	for rows.Next() {
		var film entity.Film
		err := rows.Scan(
			&film.ID,
			&film.Title,
			&film.RuntimeMin,
			&film.Genre,
			&film.Rating,
			&film.ReleaseYear,
			&film.DirectorID,
		)
		if err != nil {
			log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		films = append(films, &film)
	}

	if err := rows.Err(); err != nil {
		log.Error("Failed to iterate film rows", zap.Error(err))
		return nil, fmt.Errorf("iterate film rows: %w", err)
	}

	return films, nil
}
