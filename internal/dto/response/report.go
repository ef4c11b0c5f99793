package response

import (
	"cinema-manager/internal/data/repository"
	"cinema-manager/pkg/utils"
)

type DailyRevenueResponse struct {
	Day          string  `json:"day"`
	TicketsSold  int64   `json:"tickets_sold"`
	TotalRevenue float64 `json:"total_revenue"`
	AveragePrice float64 `json:"average_price"`
}

type FilmPopularityResponse struct {
	Title         string   `json:"title"`
	TicketsSold   int64    `json:"tickets_sold"`
	Revenue       *float64 `json:"revenue,omitempty"`
	AverageRating *float64 `json:"average_rating,omitempty"`
}

// Helper converters
func DailyRevenueToResponse(rows []*repository.DailyRevenue) []DailyRevenueResponse {
	result := make([]DailyRevenueResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, DailyRevenueResponse{
			Day:          row.Day.Format(utils.DateLayout),
			TicketsSold:  row.TicketsSold,
			TotalRevenue: row.TotalRevenue,
			AveragePrice: row.AveragePrice,
		})
	}
	return result
}

func TopFilmsToResponse(rows []*repository.FilmPopularity) []FilmPopularityResponse {
	result := make([]FilmPopularityResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, FilmPopularityResponse{
			Title:         row.Title,
			TicketsSold:   row.TicketsSold,
			Revenue:       row.Revenue,
			AverageRating: row.AverageRating,
		})
	}
	return result
}
