package entity

import "time"

type TicketStatus string

const (
	TicketStatusValid     TicketStatus = "valid"
	TicketStatusUsed      TicketStatus = "used"
	TicketStatusCancelled TicketStatus = "cancelled"
)

type Ticket struct {
	ID          int64        `db:"id"`
	ScreeningID int64        `db:"screening_id"`
	CustomerID  int64        `db:"customer_id"`
	SeatID      int64        `db:"seat_id"`
	PromotionID *int64       `db:"promotion_id"`
	Status      TicketStatus `db:"status"`
	Price       float64      `db:"price"` // price charged at issuance, 2 decimals
	IssuedAt    time.Time    `db:"issued_at"`
}
