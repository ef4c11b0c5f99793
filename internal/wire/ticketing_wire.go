package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicketing(
	r chi.Router,
	ticketingHandler *adaptor.TicketingHandler,
) {
	r.Route("/api/tickets", func(r chi.Router) {
		// POST /api/tickets - sell a seat for a screening
		r.Post("/", ticketingHandler.SellTicket)

		r.Get("/{id}", ticketingHandler.GetTicketByID)

		// PATCH /api/tickets/{id}/status - use, cancel or revalidate
		r.Patch("/{id}/status", ticketingHandler.UpdateTicketStatus)
	})
}
