package request

type SellTicketRequest struct {
	ScreeningID int64  `json:"screening_id" validate:"required,min=1"`
	CustomerID  int64  `json:"customer_id" validate:"required,min=1"`
	SeatID      int64  `json:"seat_id" validate:"required,min=1"`
	PromotionID *int64 `json:"promotion_id,omitempty" validate:"omitempty,min=1"`
}

type UpdateTicketStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=valid used cancelled"`
}
