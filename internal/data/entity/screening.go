package entity

import "time"

// Screening is one scheduled showing of a film in a room. StartsAt/EndsAt are
// full timestamps on the screening date; the [StartsAt, EndsAt) interval is
// half-open, so back-to-back screenings in the same room do not overlap.
type Screening struct {
	ID       int64     `db:"id"`
	Date     time.Time `db:"date"`
	StartsAt time.Time `db:"starts_at"`
	EndsAt   time.Time `db:"ends_at"`
	FilmID   int64     `db:"film_id"`
	RoomID   int64     `db:"room_id"`
	StaffID  int64     `db:"staff_id"`
	TariffID int64     `db:"tariff_id"`
}
