package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	schedulingHandler *adaptor.SchedulingHandler,
) {
	r.Route("/api/rooms", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetRooms)
		r.Post("/", cinemaHandler.CreateRoom)

		r.Patch("/{id}/status", cinemaHandler.UpdateRoomStatus)
		r.Delete("/{id}", cinemaHandler.DeleteRoom)

		r.Get("/{id}/seats", cinemaHandler.GetRoomSeats)
		r.Post("/{id}/seats", cinemaHandler.AddSeats)

		// GET /api/rooms/{id}/screenings?date=YYYY-MM-DD
		r.Get("/{id}/screenings", schedulingHandler.GetRoomSchedule)
	})

	r.Patch("/api/seats/{id}/status", cinemaHandler.UpdateSeatStatus)

	r.Route("/api/tariffs", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetTariffs)
		r.Post("/", cinemaHandler.CreateTariff)
		r.Delete("/{id}", cinemaHandler.DeleteTariff)
	})

	r.Route("/api/staff", func(r chi.Router) {
		r.Get("/", cinemaHandler.GetStaff)
		r.Post("/", cinemaHandler.CreateStaff)
		r.Delete("/{id}", cinemaHandler.DeleteStaff)
	})
}
