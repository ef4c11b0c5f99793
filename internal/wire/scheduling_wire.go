package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireScheduling(
	r chi.Router,
	schedulingHandler *adaptor.SchedulingHandler,
	ticketingHandler *adaptor.TicketingHandler,
) {
	r.Route("/api/screenings", func(r chi.Router) {
		// GET /api/screenings?date=YYYY-MM-DD - daily board
		r.Get("/", schedulingHandler.GetDailyBoard)

		// POST /api/screenings - schedule a screening
		r.Post("/", schedulingHandler.CreateScreening)

		r.Get("/{id}", schedulingHandler.GetScreeningByID)
		r.Delete("/{id}", schedulingHandler.DeleteScreening)

		// GET /api/screenings/{id}/seats - free seats for a screening
		r.Get("/{id}/seats", ticketingHandler.ListAvailableSeats)
	})
}
