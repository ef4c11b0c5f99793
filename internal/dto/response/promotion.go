package response

import (
	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type PromotionResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DiscountPercent float64 `json:"discount_percent"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Category        string  `json:"category,omitempty"`
	Description     *string `json:"description,omitempty"`
}

// Helper converters
func PromotionToResponse(promotion *entity.Promotion) PromotionResponse {
	return PromotionResponse{
		ID:              promotion.ID,
		Name:            promotion.Name,
		DiscountPercent: promotion.DiscountPercent,
		StartDate:       promotion.StartDate.Format(utils.DateLayout),
		EndDate:         promotion.EndDate.Format(utils.DateLayout),
		Category:        promotion.Category,
		Description:     promotion.Description,
	}
}

func PromotionsToResponse(promotions []*entity.Promotion) []PromotionResponse {
	result := make([]PromotionResponse, 0, len(promotions))
	for _, p := range promotions {
		result = append(result, PromotionToResponse(p))
	}
	return result
}
