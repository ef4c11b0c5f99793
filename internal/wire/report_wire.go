package wire

import (
	"cinema-manager/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
) {
	r.Route("/api/reports", func(r chi.Router) {
		// GET /api/reports/revenue?from=...&to=...
		r.Get("/revenue", reportHandler.GetDailyRevenue)

		// GET /api/reports/top-films?limit=N
		r.Get("/top-films", reportHandler.GetTopFilms)
	})
}
