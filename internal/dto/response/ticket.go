package response

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/utils"
)

type TicketResponse struct {
	ID          int64               `json:"id"`
	ScreeningID int64               `json:"screening_id"`
	CustomerID  int64               `json:"customer_id"`
	SeatID      int64               `json:"seat_id"`
	PromotionID *int64              `json:"promotion_id,omitempty"`
	Status      entity.TicketStatus `json:"status"`
	Price       float64             `json:"price"`
	IssuedAt    time.Time           `json:"issued_at"`
}

type TicketHistoryResponse struct {
	TicketID   int64               `json:"ticket_id"`
	FilmTitle  string              `json:"film_title"`
	Date       string              `json:"date"`
	StartTime  string              `json:"start_time"`
	RoomNumber int                 `json:"room_number"`
	Seat       string              `json:"seat"`
	Price      float64             `json:"price"`
	Status     entity.TicketStatus `json:"status"`
	Promotion  *string             `json:"promotion,omitempty"`
}

// Helper converters
func TicketToResponse(ticket *entity.Ticket) TicketResponse {
	return TicketResponse{
		ID:          ticket.ID,
		ScreeningID: ticket.ScreeningID,
		CustomerID:  ticket.CustomerID,
		SeatID:      ticket.SeatID,
		PromotionID: ticket.PromotionID,
		Status:      ticket.Status,
		Price:       ticket.Price,
		IssuedAt:    ticket.IssuedAt,
	}
}

func HistoryToResponse(rows []*repository.TicketHistory) []TicketHistoryResponse {
	history := make([]TicketHistoryResponse, 0, len(rows))
	for _, row := range rows {
		history = append(history, TicketHistoryResponse{
			TicketID:   row.TicketID,
			FilmTitle:  row.FilmTitle,
			Date:       row.Date.Format(utils.DateLayout),
			StartTime:  row.StartsAt.Format(utils.TimeLayout),
			RoomNumber: row.RoomNumber,
			Seat:       row.Seat,
			Price:      row.Price,
			Status:     row.Status,
			Promotion:  row.Promotion,
		})
	}
	return history
}
