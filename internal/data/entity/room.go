package entity

type RoomStatus string

const (
	RoomStatusActive       RoomStatus = "active"
	RoomStatusMaintenance  RoomStatus = "maintenance"
	RoomStatusOutOfService RoomStatus = "out_of_service"
)

type Room struct {
	ID       int64      `db:"id"`
	Number   int        `db:"number"`
	Capacity int        `db:"capacity"`
	Status   RoomStatus `db:"status"`
}
