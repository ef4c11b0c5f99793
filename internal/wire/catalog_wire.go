package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	reviewHandler *adaptor.ReviewHandler,
) {
	r.Route("/api/films", func(r chi.Router) {
		// GET /api/films - list, ?title= or ?genre= to filter
		r.Get("/", catalogHandler.GetFilms)
		r.Post("/", catalogHandler.CreateFilm)

		r.Get("/{id}", catalogHandler.GetFilmByID)
		r.Delete("/{id}", catalogHandler.DeleteFilm)

		r.Get("/{id}/reviews", reviewHandler.GetFilmReviews)
		r.Get("/{id}/reviews/summary", reviewHandler.GetFilmReviewSummary)
	})

	r.Route("/api/directors", func(r chi.Router) {
		r.Get("/", catalogHandler.GetDirectors)
		r.Post("/", catalogHandler.CreateDirector)
		r.Delete("/{id}", catalogHandler.DeleteDirector)
	})
}
