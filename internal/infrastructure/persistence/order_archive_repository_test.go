package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/retail/retailctl/internal/domain/trade"
	"github.com/retail/retailctl/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOrder(t *testing.T, id int64, customerID, productID uuid.UUID, quantity int64, price float64) *trade.Order {
	t.Helper()
	item, err := trade.NewOrderItem(productID, "Widget", quantity, valueobject.NewMoneyUSDFromFloat(price))
	require.NoError(t, err)
	order, err := trade.NewOrder(id, customerID, []trade.OrderItem{*item})
	require.NoError(t, err)
	return order
}

func TestGormOrderArchive_Record(t *testing.T) {
	db := setupTestDB(t)
	archive := NewGormOrderArchive(db)
	ctx := context.Background()

	customerID := uuid.New()
	productID := uuid.New()
	order := mustOrder(t, 1, customerID, productID, 3, 5.0)

	require.NoError(t, archive.Record(ctx, order))

	var model models.OrderModel
	require.NoError(t, db.Preload("Items").First(&model, "id = ?", int64(1)).Error)

	restored := model.ToDomain()
	assert.Equal(t, customerID, restored.CustomerID)
	assert.Equal(t, trade.OrderStatusPlaced, restored.Status)
	assert.True(t, restored.TotalAmount.Equal(order.TotalAmount))
	require.Len(t, restored.Items, 1)
	assert.Equal(t, productID, restored.Items[0].ProductID)
	assert.Equal(t, int64(3), restored.Items[0].Quantity)
}

func TestGormOrderArchive_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	archive := NewGormOrderArchive(db)
	ctx := context.Background()

	order := mustOrder(t, 1, uuid.New(), uuid.New(), 2, 5.0)
	require.NoError(t, archive.Record(ctx, order))

	require.NoError(t, archive.UpdateStatus(ctx, 1, trade.OrderStatusCancelled))

	var model models.OrderModel
	require.NoError(t, db.First(&model, "id = ?", int64(1)).Error)
	assert.Equal(t, "CANCELLED", model.Status)
	assert.NotNil(t, model.CancelledAt)

	t.Run("unknown order maps to ErrNotFound", func(t *testing.T) {
		err := archive.UpdateStatus(ctx, 99, trade.OrderStatusCompleted)
		assert.True(t, shared.IsCode(err, "NOT_FOUND"))
	})
}

func TestGormOrderArchive_LastOrderID(t *testing.T) {
	db := setupTestDB(t)
	archive := NewGormOrderArchive(db)
	ctx := context.Background()

	last, err := archive.LastOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), last, "empty archive seeds the counter at 1")

	require.NoError(t, archive.Record(ctx, mustOrder(t, 1, uuid.New(), uuid.New(), 1, 5.0)))
	require.NoError(t, archive.Record(ctx, mustOrder(t, 7, uuid.New(), uuid.New(), 2, 5.0)))

	last, err = archive.LastOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), last)
}
