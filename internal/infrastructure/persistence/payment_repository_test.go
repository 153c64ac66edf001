package persistence

import (
	"context"
	"testing"

	"github.com/retail/retailctl/internal/domain/finance"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPaymentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormPaymentRepository(db)
	ctx := context.Background()

	payment, err := finance.NewPayment(1, valueobject.NewMoneyUSDFromFloat(15.0))
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, payment))

	t.Run("round-trips a pending payment", func(t *testing.T) {
		found, err := repo.FindByOrderID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPending, found.Status)
		assert.Nil(t, found.Method)
		assert.True(t, found.Amount.Equal(payment.Amount))
	})

	t.Run("persists a status transition", func(t *testing.T) {
		require.NoError(t, payment.MarkPaid("Card"))
		require.NoError(t, repo.Save(ctx, payment))

		found, err := repo.FindByOrderID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, finance.PaymentStatusPaid, found.Status)
		require.NotNil(t, found.Method)
		assert.Equal(t, "Card", *found.Method)
	})

	t.Run("unknown order maps to ErrNotFound", func(t *testing.T) {
		_, err := repo.FindByOrderID(ctx, 99)
		assert.True(t, shared.IsCode(err, "NOT_FOUND"))
	})
}
