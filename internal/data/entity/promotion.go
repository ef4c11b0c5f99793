package entity

import "time"

type Promotion struct {
	ID              int64     `db:"id"`
	Name            string    `db:"name"`
	Description     *string   `db:"description"`
	DiscountPercent float64   `db:"discount_percent"`
	StartDate       time.Time `db:"start_date"`
	EndDate         time.Time `db:"end_date"`
	Category        string    `db:"category"`
}

// ActiveOn reports whether the promotion window covers the given date.
func (p *Promotion) ActiveOn(day time.Time) bool {
	d := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(p.StartDate) && !d.After(p.EndDate)
}
