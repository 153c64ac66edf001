package finance

import (
	"context"
	"testing"

	"github.com/retail/retailctl/internal/domain/finance"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePaymentRepo struct {
	payments map[int64]*finance.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[int64]*finance.Payment)}
}

func (r *fakePaymentRepo) FindByOrderID(_ context.Context, orderID int64) (*finance.Payment, error) {
	payment, ok := r.payments[orderID]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *payment
	return &copied, nil
}

func (r *fakePaymentRepo) Save(_ context.Context, payment *finance.Payment) error {
	copied := *payment
	r.payments[payment.OrderID] = &copied
	return nil
}

func TestPaymentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending payment", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())

		payment, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPending, payment.Status)
		assert.Nil(t, payment.Method)
		assert.Equal(t, "15", payment.Amount.String())
	})

	t.Run("rejects a second payment for the same order", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())

		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)

		_, err = service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "ALREADY_EXISTS"))
	})
}

func TestPaymentService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("marks the payment paid", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())
		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)

		payment, err := service.Process(ctx, 1, "Card")
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPaid, payment.Status)
		require.NotNil(t, payment.Method)
		assert.Equal(t, "Card", *payment.Method)

		// the transition is persisted
		stored, err := service.GetStatus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPaid, stored.Status)
	})

	t.Run("rejects an unknown method", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())
		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)

		_, err = service.Process(ctx, 1, "Barter")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_METHOD"))
	})

	t.Run("cannot pay twice", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())
		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)
		_, err = service.Process(ctx, 1, "Cash")
		require.NoError(t, err)

		_, err = service.Process(ctx, 1, "Cash")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})

	t.Run("unknown order fails with NOT_FOUND", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())

		_, err := service.Process(ctx, 99, "Cash")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "NOT_FOUND"))
		assert.Contains(t, err.Error(), "99")
	})
}

func TestPaymentService_Refund(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds a paid payment", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())
		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)
		_, err = service.Process(ctx, 1, "UPI")
		require.NoError(t, err)

		payment, err := service.Refund(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusRefunded, payment.Status)
	})

	t.Run("cannot refund a pending payment", func(t *testing.T) {
		service := NewPaymentService(newFakePaymentRepo())
		_, err := service.Create(ctx, 1, valueobject.NewMoneyUSDFromFloat(15.0))
		require.NoError(t, err)

		_, err = service.Refund(ctx, 1)
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})
}
