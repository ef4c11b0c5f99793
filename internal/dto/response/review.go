package response

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/internal/data/repository"
)

type ReviewResponse struct {
	ID         int64     `json:"id"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment,omitempty"`
	CustomerID int64     `json:"customer_id"`
	FilmID     int64     `json:"film_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReviewSummaryResponse struct {
	FilmTitle     string   `json:"film_title"`
	AverageRating *float64 `json:"average_rating,omitempty"`
	ReviewCount   int64    `json:"review_count"`
}

// Helper converters
func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CustomerID: review.CustomerID,
		FilmID:     review.FilmID,
		CreatedAt:  review.CreatedAt,
	}
}

func ReviewsToResponse(reviews []*entity.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, ReviewToResponse(r))
	}
	return result
}

func SummaryToResponse(summary *repository.ReviewSummary) ReviewSummaryResponse {
	return ReviewSummaryResponse{
		FilmTitle:     summary.FilmTitle,
		AverageRating: summary.AverageRating,
		ReviewCount:   summary.ReviewCount,
	}
}
