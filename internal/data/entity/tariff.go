package entity

type TimeBand string

const (
	TimeBandMorning   TimeBand = "morning"
	TimeBandAfternoon TimeBand = "afternoon"
	TimeBandEvening   TimeBand = "evening"
	TimeBandNight     TimeBand = "night"
)

type Tariff struct {
	ID          int64     `db:"id"`
	Name        string    `db:"name"`
	BasePrice   float64   `db:"base_price"`
	TimeBand    *TimeBand `db:"time_band"`
	DayOfWeek   *string   `db:"day_of_week"` // monday..sunday
	Description *string   `db:"description"`
}
