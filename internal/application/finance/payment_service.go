package finance

import (
	"context"
	"fmt"

	"github.com/retail/retailctl/internal/domain/finance"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
)

// PaymentService handles payment tracking. Payments are linked to orders
// by order id only; the order ledger is never consulted here.
type PaymentService struct {
	paymentRepo finance.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(paymentRepo finance.PaymentRepository) *PaymentService {
	return &PaymentService{paymentRepo: paymentRepo}
}

// Create records a new pending payment for an order
func (s *PaymentService) Create(ctx context.Context, orderID int64, amount valueobject.Money) (*finance.Payment, error) {
	if existing, err := s.paymentRepo.FindByOrderID(ctx, orderID); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("Payment for order %d already exists", orderID))
	} else if err != nil && !shared.IsCode(err, "NOT_FOUND") {
		return nil, err
	}

	payment, err := finance.NewPayment(orderID, amount)
	if err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Process marks the payment for an order as PAID with the given method
func (s *PaymentService) Process(ctx context.Context, orderID int64, method string) (*finance.Payment, error) {
	payment, err := s.find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := payment.MarkPaid(method); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// Refund marks the payment for an order as REFUNDED
func (s *PaymentService) Refund(ctx context.Context, orderID int64) (*finance.Payment, error) {
	payment, err := s.find(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := payment.MarkRefunded(); err != nil {
		return nil, err
	}
	if err := s.paymentRepo.Save(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// GetStatus returns the payment record for an order
func (s *PaymentService) GetStatus(ctx context.Context, orderID int64) (*finance.Payment, error) {
	return s.find(ctx, orderID)
}

func (s *PaymentService) find(ctx context.Context, orderID int64) (*finance.Payment, error) {
	payment, err := s.paymentRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		if shared.IsCode(err, "NOT_FOUND") {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("No payment found for order %d", orderID))
		}
		return nil, err
	}
	return payment, nil
}
