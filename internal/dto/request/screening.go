package request

type CreateScreeningRequest struct {
	Date      string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	// EndTime may be omitted; it is then derived from the film runtime.
	EndTime  string `json:"end_time" validate:"omitempty,datetime=15:04"`
	FilmID   int64  `json:"film_id" validate:"required,min=1"`
	RoomID   int64  `json:"room_id" validate:"required,min=1"`
	StaffID  int64  `json:"staff_id" validate:"required,min=1"`
	TariffID int64  `json:"tariff_id" validate:"required,min=1"`
}
