package trade

import (
	"testing"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestItem(t *testing.T, quantity int64, price float64) OrderItem {
	item, err := NewOrderItem(uuid.New(), "Test Product", quantity, valueobject.NewMoneyUSDFromFloat(price))
	require.NoError(t, err)
	return *item
}

func createTestOrder(t *testing.T) *Order {
	order, err := NewOrder(1, uuid.New(), []OrderItem{createTestItem(t, 3, 5.0)})
	require.NoError(t, err)
	return order
}

func TestOrderStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  OrderStatus
		isValid bool
	}{
		{OrderStatusPlaced, true},
		{OrderStatusCancelled, true},
		{OrderStatusCompleted, true},
		{OrderStatus("SHIPPED"), false},
		{OrderStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     OrderStatus
		to       OrderStatus
		canTrans bool
	}{
		{OrderStatusPlaced, OrderStatusCancelled, true},
		{OrderStatusPlaced, OrderStatusCompleted, true},
		{OrderStatusPlaced, OrderStatusPlaced, false},
		{OrderStatusCancelled, OrderStatusCompleted, false},
		{OrderStatusCancelled, OrderStatusPlaced, false},
		{OrderStatusCompleted, OrderStatusCancelled, false},
		{OrderStatusCompleted, OrderStatusPlaced, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.canTrans, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewOrderItem(t *testing.T) {
	t.Run("computes line amount", func(t *testing.T) {
		item, err := NewOrderItem(uuid.New(), "Widget", 3, valueobject.NewMoneyUSDFromFloat(5.0))
		require.NoError(t, err)
		assert.True(t, decimal.NewFromFloat(15.0).Equal(item.Amount))
	})

	t.Run("rejects nil product", func(t *testing.T) {
		_, err := NewOrderItem(uuid.Nil, "Widget", 1, valueobject.NewMoneyUSDFromFloat(5.0))
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewOrderItem(uuid.New(), "Widget", 0, valueobject.NewMoneyUSDFromFloat(5.0))
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_QUANTITY"))

		_, err = NewOrderItem(uuid.New(), "Widget", -2, valueobject.NewMoneyUSDFromFloat(5.0))
		assert.Error(t, err)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("starts in PLACED with summed total", func(t *testing.T) {
		items := []OrderItem{
			createTestItem(t, 2, 10.0),
			createTestItem(t, 1, 2.5),
		}
		order, err := NewOrder(7, uuid.New(), items)
		require.NoError(t, err)

		assert.Equal(t, int64(7), order.ID)
		assert.Equal(t, OrderStatusPlaced, order.Status)
		assert.True(t, decimal.NewFromFloat(22.5).Equal(order.TotalAmount))
	})

	t.Run("rejects empty items", func(t *testing.T) {
		_, err := NewOrder(1, uuid.New(), nil)
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "NO_ITEMS"))
	})

	t.Run("rejects nil customer", func(t *testing.T) {
		_, err := NewOrder(1, uuid.Nil, []OrderItem{createTestItem(t, 1, 1.0)})
		assert.Error(t, err)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("cancels a placed order", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.Cancel())
		assert.Equal(t, OrderStatusCancelled, order.Status)
		assert.NotNil(t, order.CancelledAt)
	})

	t.Run("fails on terminal orders", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.Cancel())

		err := order.Cancel()
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))

		completed := createTestOrder(t)
		require.NoError(t, completed.Complete())
		err = completed.Cancel()
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("completes a placed order", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.Complete())
		assert.Equal(t, OrderStatusCompleted, order.Status)
		assert.NotNil(t, order.CompletedAt)
	})

	t.Run("fails on a cancelled order", func(t *testing.T) {
		order := createTestOrder(t)
		require.NoError(t, order.Cancel())

		err := order.Complete()
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_STATE"))
	})
}

func TestOrder_QuantityByProduct(t *testing.T) {
	productID := uuid.New()
	otherID := uuid.New()

	itemA, err := NewOrderItem(productID, "Widget", 4, valueobject.NewMoneyUSDFromFloat(2.0))
	require.NoError(t, err)
	itemB, err := NewOrderItem(productID, "Widget", 3, valueobject.NewMoneyUSDFromFloat(2.0))
	require.NoError(t, err)
	itemC, err := NewOrderItem(otherID, "Gadget", 1, valueobject.NewMoneyUSDFromFloat(9.0))
	require.NoError(t, err)

	order, err := NewOrder(1, uuid.New(), []OrderItem{*itemA, *itemB, *itemC})
	require.NoError(t, err)

	totals := order.QuantityByProduct()
	assert.Equal(t, int64(7), totals[productID])
	assert.Equal(t, int64(1), totals[otherID])
	assert.Len(t, totals, 2)
}

func TestOrder_Clone(t *testing.T) {
	order := createTestOrder(t)
	clone := order.Clone()

	clone.Items[0].Quantity = 99
	clone.Status = OrderStatusCompleted

	assert.Equal(t, int64(3), order.Items[0].Quantity)
	assert.Equal(t, OrderStatusPlaced, order.Status)
}
