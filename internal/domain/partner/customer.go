package partner

import (
	"strings"

	"github.com/retail/retailctl/internal/domain/shared"
)

// Customer represents a registered customer.
// Orders holds the ids of the customer's orders in creation order.
type Customer struct {
	shared.BaseEntity
	Name   string
	Email  string
	Phone  string
	City   string
	Orders []int64
}

// NewCustomer creates a new customer
func NewCustomer(name, email, phone, city string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	email = NormalizeEmail(email)
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if strings.TrimSpace(phone) == "" {
		return nil, shared.NewDomainError("INVALID_PHONE", "Phone cannot be empty")
	}

	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Email:      email,
		Phone:      phone,
		City:       city,
		Orders:     make([]int64, 0),
	}, nil
}

// NormalizeEmail returns the canonical form of an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UpdateContact updates phone and city; empty values leave the field unchanged
func (c *Customer) UpdateContact(phone, city string) {
	if phone != "" {
		c.Phone = phone
	}
	if city != "" {
		c.City = city
	}
	c.Touch()
}

// AppendOrder appends an order id to the customer's order list
func (c *Customer) AppendOrder(orderID int64) {
	c.Orders = append(c.Orders, orderID)
	c.Touch()
}

// OrderCount returns the number of orders the customer has placed
func (c *Customer) OrderCount() int {
	return len(c.Orders)
}
