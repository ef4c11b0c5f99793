package entity

import "time"

type Review struct {
	ID         int64     `db:"id"`
	Rating     int       `db:"rating"` // 1..10
	Comment    *string   `db:"comment"`
	CustomerID int64     `db:"customer_id"`
	FilmID     int64     `db:"film_id"`
	CreatedAt  time.Time `db:"created_at"`
}
