package request

type PromotionRequest struct {
	Name            string  `json:"name" validate:"required,max=100"`
	DiscountPercent float64 `json:"discount_percent" validate:"gte=0,lte=100"`
	StartDate       string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Category        string  `json:"category" validate:"omitempty,max=50"`
	Description     *string `json:"description,omitempty"`
}
