package repository

import (
	"cinema-manager/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Tx        TxRunner
	Director  DirectorRepository
	Film      FilmRepository
	Room      RoomRepository
	Seat      SeatRepository
	Tariff    TariffRepository
	Staff     StaffRepository
	Customer  CustomerRepository
	Screening ScreeningRepository
	Promotion PromotionRepository
	Ticket    TicketRepository
	Review    ReviewRepository
	Report    ReportRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Tx:        NewTxRunner(db, log),
		Director:  NewDirectorRepository(db, log),
		Film:      NewFilmRepository(db, log),
		Room:      NewRoomRepository(db, log),
		Seat:      NewSeatRepository(db, log),
		Tariff:    NewTariffRepository(db, log),
		Staff:     NewStaffRepository(db, log),
		Customer:  NewCustomerRepository(db, log),
		Screening: NewScreeningRepository(db, log),
		Promotion: NewPromotionRepository(db, log),
		Ticket:    NewTicketRepository(db, log),
		Review:    NewReviewRepository(db, log),
		Report:    NewReportRepository(db, log),
	}
}
