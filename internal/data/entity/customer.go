package entity

import "time"

type Customer struct {
	ID           int64      `db:"id"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	Email        string     `db:"email"`
	Phone        *string    `db:"phone"`
	BirthDate    *time.Time `db:"birth_date"`
	RegisteredAt time.Time  `db:"registered_at"`
}
