package entity

import "time"

type Director struct {
	ID          int64      `db:"id"`
	FirstName   string     `db:"first_name"`
	LastName    string     `db:"last_name"`
	Nationality *string    `db:"nationality"`
	BirthDate   *time.Time `db:"birth_date"`
}
