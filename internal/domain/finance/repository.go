package finance

import "context"

// PaymentRepository defines the persistence operations for payments
type PaymentRepository interface {
	FindByOrderID(ctx context.Context, orderID int64) (*Payment, error)
	Save(ctx context.Context, payment *Payment) error
}
