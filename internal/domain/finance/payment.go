package finance

import (
	"fmt"
	"time"

	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// ValidMethods are the accepted payment methods
var ValidMethods = []string{"Cash", "Card", "UPI"}

// IsValidMethod reports whether method is an accepted payment method
func IsValidMethod(method string) bool {
	for _, m := range ValidMethods {
		if m == method {
			return true
		}
	}
	return false
}

// Payment tracks the payment for a single order, keyed by order id.
// Its lifecycle is independent of the order ledger; the order id is the
// only link between the two.
type Payment struct {
	OrderID   int64           `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    PaymentStatus   `json:"status"`
	Method    *string         `json:"method"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewPayment creates a new pending payment for an order
func NewPayment(orderID int64, amount valueobject.Money) (*Payment, error) {
	if orderID <= 0 {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID must be positive")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount cannot be negative")
	}

	now := time.Now()
	return &Payment{
		OrderID:   orderID,
		Amount:    amount.Amount(),
		Status:    PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkPaid transitions the payment from PENDING to PAID with the given method
func (p *Payment) MarkPaid(method string) error {
	if !IsValidMethod(method) {
		return shared.NewDomainError("INVALID_METHOD", "Invalid payment method")
	}
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot pay a payment in %s status", p.Status))
	}

	p.Status = PaymentStatusPaid
	p.Method = &method
	p.UpdatedAt = time.Now()
	return nil
}

// MarkRefunded transitions the payment from PAID to REFUNDED
func (p *Payment) MarkRefunded() error {
	if p.Status != PaymentStatusPaid {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot refund a payment in %s status", p.Status))
	}

	p.Status = PaymentStatusRefunded
	p.UpdatedAt = time.Now()
	return nil
}

// AmountMoney returns the amount as a Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Amount)
}
