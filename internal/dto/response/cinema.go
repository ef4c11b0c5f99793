package response

import (
	"cinema-manager/internal/data/entity"
)

type RoomResponse struct {
	ID       int64             `json:"id"`
	Number   int               `json:"number"`
	Capacity int               `json:"capacity"`
	Status   entity.RoomStatus `json:"status"`
}

type SeatResponse struct {
	ID       int64             `json:"id"`
	RoomID   int64             `json:"room_id"`
	RowLabel string            `json:"row_label"`
	Number   int               `json:"number"`
	Status   entity.SeatStatus `json:"status"`
}

type TariffResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"base_price"`
	TimeBand    *string `json:"time_band,omitempty"`
	DayOfWeek   *string `json:"day_of_week,omitempty"`
	Description *string `json:"description,omitempty"`
}

// StaffResponse deliberately carries no password hash.
type StaffResponse struct {
	ID        int64            `json:"id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Username  string           `json:"username"`
	Role      entity.StaffRole `json:"role"`
}

// Helper converters
func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:       room.ID,
		Number:   room.Number,
		Capacity: room.Capacity,
		Status:   room.Status,
	}
}

func RoomsToResponse(rooms []*entity.Room) []RoomResponse {
	result := make([]RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		result = append(result, RoomToResponse(r))
	}
	return result
}

func SeatToResponse(seat *entity.Seat) SeatResponse {
	return SeatResponse{
		ID:       seat.ID,
		RoomID:   seat.RoomID,
		RowLabel: seat.RowLabel,
		Number:   seat.Number,
		Status:   seat.Status,
	}
}

func SeatsToResponse(seats []*entity.Seat) []SeatResponse {
	result := make([]SeatResponse, 0, len(seats))
	for _, s := range seats {
		result = append(result, SeatToResponse(s))
	}
	return result
}

func TariffToResponse(tariff *entity.Tariff) TariffResponse {
	resp := TariffResponse{
		ID:          tariff.ID,
		Name:        tariff.Name,
		BasePrice:   tariff.BasePrice,
		DayOfWeek:   tariff.DayOfWeek,
		Description: tariff.Description,
	}
	if tariff.TimeBand != nil {
		band := string(*tariff.TimeBand)
		resp.TimeBand = &band
	}
	return resp
}

func TariffsToResponse(tariffs []*entity.Tariff) []TariffResponse {
	result := make([]TariffResponse, 0, len(tariffs))
	for _, t := range tariffs {
		result = append(result, TariffToResponse(t))
	}
	return result
}

func StaffToResponse(staff *entity.Staff) StaffResponse {
	return StaffResponse{
		ID:        staff.ID,
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		Username:  staff.Username,
		Role:      staff.Role,
	}
}

func StaffListToResponse(members []*entity.Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(members))
	for _, m := range members {
		result = append(result, StaffToResponse(m))
	}
	return result
}
