package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/partner"
)

// RegisterCustomerRequest is the request to register a new customer
type RegisterCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,max=50"`
	City  string `json:"city" validate:"max=100"`
}

// UpdateCustomerRequest updates a customer addressed by email.
// Empty fields are left unchanged.
type UpdateCustomerRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"max=50"`
	City  string `json:"city" validate:"max=100"`
}

// CustomerResponse is the customer representation returned to callers
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	City      string    `json:"city,omitempty"`
	Orders    []int64   `json:"orders"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCustomerResponse converts a domain customer to its response shape
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	orders := c.Orders
	if orders == nil {
		orders = make([]int64, 0)
	}
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		City:      c.City,
		Orders:    orders,
		CreatedAt: c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of domain customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
