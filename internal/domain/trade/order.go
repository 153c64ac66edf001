package trade

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPlaced, OrderStatusCancelled, OrderStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPlaced:
		return target == OrderStatusCancelled || target == OrderStatusCompleted
	case OrderStatusCancelled, OrderStatusCompleted:
		return false // Terminal states
	}
	return false
}

// OrderItem represents a line item in an order
type OrderItem struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewOrderItem creates a new order line item
func NewOrderItem(productID uuid.UUID, productName string, quantity int64, unitPrice valueobject.Money) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	return &OrderItem{
		ProductID:   productID,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Amount(),
		Amount:      unitPrice.Amount().Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// Order represents an order in the ledger.
// IDs are assigned monotonically by the ledger; the total amount captures
// prices at placement time and is immutable afterwards.
type Order struct {
	ID          int64           `json:"id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	Items       []OrderItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Status      OrderStatus     `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// NewOrder creates a new order in PLACED status.
// The total amount is the sum of line amounts at creation time.
func NewOrder(id int64, customerID uuid.UUID, items []OrderItem) (*Order, error) {
	if id <= 0 {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID must be positive")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Order must contain at least one item")
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}

	now := time.Now()
	return &Order{
		ID:          id,
		CustomerID:  customerID,
		Items:       items,
		TotalAmount: total,
		Status:      OrderStatusPlaced,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Cancel transitions the order from PLACED to CANCELLED.
// Stock restoration is coordinated by the ledger service.
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(OrderStatusCancelled) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now
	return nil
}

// Complete transitions the order from PLACED to COMPLETED.
// Stock was deducted at placement and is not returned.
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(OrderStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot complete order in %s status", o.Status))
	}

	now := time.Now()
	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	o.UpdatedAt = now
	return nil
}

// QuantityByProduct sums line quantities per product. Orders may carry
// several lines for the same product; stock checks and restoration work
// on these sums, never per line.
func (o *Order) QuantityByProduct() map[uuid.UUID]int64 {
	totals := make(map[uuid.UUID]int64, len(o.Items))
	for _, item := range o.Items {
		totals[item.ProductID] += item.Quantity
	}
	return totals
}

// TotalAmountMoney returns the total amount as a Money value object
func (o *Order) TotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

// IsPlaced returns true if the order is in PLACED status
func (o *Order) IsPlaced() bool {
	return o.Status == OrderStatusPlaced
}

// IsTerminal returns true if the order is cancelled or completed
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCancelled || o.Status == OrderStatusCompleted
}

// Clone returns a deep copy of the order. The ledger hands copies to
// callers so ledger state can only change through its own operations.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	if o.CancelledAt != nil {
		t := *o.CancelledAt
		cp.CancelledAt = &t
	}
	if o.CompletedAt != nil {
		t := *o.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}
