package request

type ReviewRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required,min=1"`
	FilmID     int64  `json:"film_id" validate:"required,min=1"`
	Rating     int    `json:"rating" validate:"required,min=1,max=10"`
	Comment    string `json:"comment" validate:"omitempty,max=1000"`
}
