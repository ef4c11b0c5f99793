package request

type RoomRequest struct {
	Number   int    `json:"number" validate:"required,min=1"`
	Capacity int    `json:"capacity" validate:"required,min=1"`
	Status   string `json:"status" validate:"omitempty,oneof=active maintenance out_of_service"`
}

type RoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active maintenance out_of_service"`
}

type SeatRequest struct {
	RowLabel string `json:"row_label" validate:"required,max=2"`
	Number   int    `json:"number" validate:"required,min=1"`
}

type SeatStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available occupied maintenance"`
}

type TariffRequest struct {
	Name        string  `json:"name" validate:"required,max=50"`
	BasePrice   float64 `json:"base_price" validate:"gte=0"`
	TimeBand    *string `json:"time_band,omitempty" validate:"omitempty,oneof=morning afternoon evening night"`
	DayOfWeek   *string `json:"day_of_week,omitempty" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	Description *string `json:"description,omitempty"`
}

type StaffRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Username  string `json:"username" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	Role      string `json:"role" validate:"required,oneof=cashier projectionist manager technician"`
}
