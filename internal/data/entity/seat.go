package entity

// SeatStatus is advisory metadata. Whether a seat can actually be sold for a
// screening is decided by the valid tickets of that screening; the status
// field only filters availability listings and blocks seats flagged
// maintenance from sale.
type SeatStatus string

const (
	SeatStatusAvailable   SeatStatus = "available"
	SeatStatusOccupied    SeatStatus = "occupied"
	SeatStatusMaintenance SeatStatus = "maintenance"
)

type Seat struct {
	ID       int64      `db:"id"`
	RoomID   int64      `db:"room_id"`
	RowLabel string     `db:"row_label"` // A, B, C, etc.
	Number   int        `db:"number"`    // 1, 2, 3, etc.
	Status   SeatStatus `db:"status"`
}
