package response

import (
	"time"

	"cinema-manager/internal/data/entity"
	"cinema-manager/pkg/utils"
)

type CustomerResponse struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone,omitempty"`
	BirthDate    *string   `json:"birth_date,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Helper converters
func CustomerToResponse(customer *entity.Customer) CustomerResponse {
	resp := CustomerResponse{
		ID:           customer.ID,
		FirstName:    customer.FirstName,
		LastName:     customer.LastName,
		Email:        customer.Email,
		Phone:        customer.Phone,
		RegisteredAt: customer.RegisteredAt,
	}
	if customer.BirthDate != nil {
		birth := customer.BirthDate.Format(utils.DateLayout)
		resp.BirthDate = &birth
	}
	return resp
}

func CustomersToResponse(customers []*entity.Customer) []CustomerResponse {
	result := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerToResponse(c))
	}
	return result
}
