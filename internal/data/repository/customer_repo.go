package repository

import (
	"context"
	"fmt"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	FindByID(ctx context.Context, id int64) (*entity.Customer, error)
	FindByEmail(ctx context.Context, email string) (*entity.Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, id int64) error

	// Business queries
	Search(ctx context.Context, term string) ([]*entity.Customer, error)
}

type customerRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCustomerRepository(db database.PgxIface, log *zap.Logger) CustomerRepository {
	return &customerRepository{
		db:  db,
		log: log.With(zap.String("repository", "customer")),
	}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone, birth_date, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := q(ctx, r.db).QueryRow(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.BirthDate,
		customer.RegisteredAt,
	).Scan(&customer.ID)

	if err != nil {
		if !IsUniqueViolation(err) {
			r.log.Error("Failed to create customer",
				zap.Error(err),
				zap.String("email", customer.Email),
			)
		}
		return fmt.Errorf("create customer %s: %w", customer.Email, err)
	}

	return nil
}

func (r *customerRepository) FindByID(ctx context.Context, id int64) (*entity.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, birth_date, registered_at
		FROM customers
		WHERE id = $1
	`

	var customer entity.Customer
	err := q(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.BirthDate,
		&customer.RegisteredAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by ID",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return nil, fmt.Errorf("find customer by ID %d: %w", id, err)
	}

	return &customer, nil
}

func (r *customerRepository) FindByEmail(ctx context.Context, email string) (*entity.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, birth_date, registered_at
		FROM customers
		WHERE email = $1
	`

	var customer entity.Customer
	err := q(ctx, r.db).QueryRow(ctx, query, email).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.BirthDate,
		&customer.RegisteredAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find customer by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find customer by email %s: %w", email, err)
	}

	return &customer, nil
}

func (r *customerRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, birth_date, registered_at
		FROM customers
		ORDER BY registered_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q(ctx, r.db).Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find customers",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find customers: %w", err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.log)
}

func (r *customerRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM customers`

	var count int64
	err := q(ctx, r.db).QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count customers", zap.Error(err))
		return 0, fmt.Errorf("count customers: %w", err)
	}

	return count, nil
}

func (r *customerRepository) Search(ctx context.Context, term string) ([]*entity.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, birth_date, registered_at
		FROM customers
		WHERE first_name ILIKE '%' || $1 || '%'
		   OR last_name ILIKE '%' || $1 || '%'
		   OR email ILIKE '%' || $1 || '%'
		ORDER BY last_name, first_name
	`

	rows, err := q(ctx, r.db).Query(ctx, query, term)
	if err != nil {
		r.log.Error("Failed to search customers",
			zap.Error(err),
			zap.String("term", term),
		)
		return nil, fmt.Errorf("search customers %q: %w", term, err)
	}
	defer rows.Close()

	return scanCustomers(rows, r.log)
}

func (r *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, email = $4, phone = $5, birth_date = $6
		WHERE id = $1
	`

	result, err := q(ctx, r.db).Exec(ctx, query,
		customer.ID,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.BirthDate,
	)

	if err != nil {
		r.log.Error("Failed to update customer",
			zap.Error(err),
			zap.Int64("customer_id", customer.ID),
		)
		return fmt.Errorf("update customer %d: %w", customer.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", customer.ID)
	}

	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM customers WHERE id = $1`

	result, err := q(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete customer",
			zap.Error(err),
			zap.Int64("customer_id", id),
		)
		return fmt.Errorf("delete customer %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("customer %d not found", id)
	}

	r.log.Info("Customer deleted", zap.Int64("customer_id", id))
	return nil
}

func scanCustomers(rows pgx.Rows, log *zap.Logger) ([]*entity.Customer, error) {
	var customers []*entity.Customer
	for rows.Next() {
		var customer entity.Customer
		err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Email,
			&customer.Phone,
			&customer.BirthDate,
			&customer.RegisteredAt,
		)
		if err != nil {
			log.Error("Failed to scan customer row", zap.Error(err))
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, &customer)
	}

	if err := rows.Err(); err != nil {
		log.Error("Failed to iterate customer rows", zap.Error(err))
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}

	return customers, nil
}
