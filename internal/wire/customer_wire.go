package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	ticketingHandler *adaptor.TicketingHandler,
) {
	r.Route("/api/customers", func(r chi.Router) {
		// GET /api/customers - list, ?search= to filter by name or email
		r.Get("/", customerHandler.GetCustomers)
		r.Post("/", customerHandler.RegisterCustomer)

		r.Get("/{id}", customerHandler.GetCustomerByID)
		r.Put("/{id}", customerHandler.UpdateCustomer)
		r.Delete("/{id}", customerHandler.DeleteCustomer)

		// GET /api/customers/{id}/tickets - purchase history
		r.Get("/{id}/tickets", ticketingHandler.GetCustomerHistory)
	})
}
