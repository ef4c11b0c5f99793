package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
) {
	// POST /api/reviews - one review per customer per film
	r.Post("/api/reviews", reviewHandler.CreateReview)
}
