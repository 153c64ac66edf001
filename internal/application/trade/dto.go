package trade

import (
	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/partner"
	"github.com/retail/retailctl/internal/domain/trade"
)

// OrderItemRequest is one requested line of a new order
type OrderItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the request to create an order
type CreateOrderRequest struct {
	CustomerID uuid.UUID          `json:"customer_id" validate:"required"`
	Items      []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// OrderDetails pairs an order with a snapshot of its customer.
// Both are copies; mutating them does not touch ledger or directory state.
type OrderDetails struct {
	Order    trade.Order      `json:"order"`
	Customer partner.Customer `json:"customer"`
}
