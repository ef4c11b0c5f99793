package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type StaffRepository interface {
	Create(ctx context.Context, staff *entity.Staff) error
	FindByID(ctx context.Context, id int64) (*entity.Staff, error)
	FindAll(ctx context.Context) ([]*entity.Staff, error)
	Delete(ctx context.Context, id int64) error
}

type staffRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStaffRepository(db database.PgxIface, log *zap.Logger) StaffRepository {
	return &staffRepository{
		db:  db,
		log: log.With(zap.String("repository", "staff")),
	}
}

func (r *staffRepository) Create(ctx context.Context, staff *entity.Staff) error {
	query := `
		INSERT INTO staff (first_name, last_name, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		staff.FirstName,
		staff.LastName,
		staff.Username,
		staff.PasswordHash,
		staff.Role,
	).Scan(&staff.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create staff member",
				zap.Error(err),
				zap.String("username", staff.Username),
			)
		}
		return fmt.Errorf("create staff member %s: %w", staff.Username, err)
	}

	return nil
}

func (r *staffRepository) FindByID(ctx context.Context, id int64) (*entity.Staff, error) {
	query := `
		SELECT id, first_name, last_name, username, password_hash, role
		FROM staff
		WHERE id = $1
	`

	var staff entity.Staff
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&staff.ID,
		&staff.FirstName,
		&staff.LastName,
		&staff.Username,
		&staff.PasswordHash,
		&staff.Role,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find staff member by ID",
			zap.Error(err),
			zap.Int64("staff_id", id),
		)
		return nil, fmt.Errorf("find staff member by ID %d: %w", id, err)
	}

	return &staff, nil
}

func (r *staffRepository) FindAll(ctx context.Context) ([]*entity.Staff, error) {
	query := `
		SELECT id, first_name, last_name, username, password_hash, role
		FROM staff
		ORDER BY last_name, first_name
	`

	rows, err := q(ctx, r.db).Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find staff members", zap.Error(err))
		return nil, fmt.Errorf("find staff members: %w", err)
	}
	defer rows.Close()

	var members []*entity.Staff
	for rows.Next() {
		var staff entity.Staff
		err := rows.Scan(
			&staff.ID,
			&staff.FirstName,
			&staff.LastName,
			&staff.Username,
			&staff.PasswordHash,
			&staff.Role,
		)
		if err != nil {
			r.log.Error("Failed to scan staff row", zap.Error(err))
			return nil, fmt.Errorf("scan staff row: %w", err)
		}
		members = append(members, &staff)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Failed to iterate staff rows", zap.Error(err))
		return nil, fmt.Errorf("iterate staff rows: %w", err)
	}

	return members, nil
}

func (r *staffRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM staff WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete staff member",
			zap.Error(err),
			zap.Int64("staff_id", id),
		)
		return fmt.Errorf("delete staff member %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("staff member %d not found", id)
	}

	r.log.Info("Staff member deleted", zap.Int64("staff_id", id))
	return nil
}
