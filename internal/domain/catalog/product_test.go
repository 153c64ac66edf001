package catalog

import (
	"testing"

	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProduct(t *testing.T, stock int64) *Product {
	product, err := NewProduct("Widget", "sku-001", valueobject.NewMoneyUSDFromFloat(5.0), stock, "Tools")
	require.NoError(t, err)
	return product
}

func TestNewProduct(t *testing.T) {
	t.Run("normalizes SKU", func(t *testing.T) {
		product := createTestProduct(t, 10)
		assert.Equal(t, "SKU-001", product.SKU)
		assert.Equal(t, int64(10), product.Stock)
	})

	t.Run("rejects non-positive price", func(t *testing.T) {
		_, err := NewProduct("Widget", "SKU-001", valueobject.ZeroUSD(), 0, "")
		require.Error(t, err)
		assert.True(t, shared.IsCode(err, "INVALID_PRICE"))

		_, err = NewProduct("Widget", "SKU-001", valueobject.NewMoneyUSDFromFloat(-1), 0, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative stock", func(t *testing.T) {
		_, err := NewProduct("Widget", "SKU-001", valueobject.NewMoneyUSDFromFloat(1), -1, "")
		assert.Error(t, err)
	})

	t.Run("rejects empty name and SKU", func(t *testing.T) {
		_, err := NewProduct("", "SKU-001", valueobject.NewMoneyUSDFromFloat(1), 0, "")
		assert.Error(t, err)

		_, err = NewProduct("Widget", "  ", valueobject.NewMoneyUSDFromFloat(1), 0, "")
		assert.Error(t, err)
	})
}

func TestProduct_Restock(t *testing.T) {
	product := createTestProduct(t, 2)

	require.NoError(t, product.Restock(5))
	assert.Equal(t, int64(7), product.Stock)

	err := product.Restock(0)
	require.Error(t, err)
	assert.True(t, shared.IsCode(err, "INVALID_DELTA"))
	assert.Equal(t, int64(7), product.Stock)
}

func TestProduct_AdjustStock(t *testing.T) {
	tests := []struct {
		name      string
		start     int64
		delta     int64
		wantStock int64
		wantErr   bool
	}{
		{"deduct within stock", 10, -3, 7, false},
		{"deduct to zero", 3, -3, 0, false},
		{"deduct past zero", 2, -3, 2, true},
		{"restore", 7, 3, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := createTestProduct(t, tt.start)
			err := product.AdjustStock(tt.delta)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, shared.IsCode(err, "INSUFFICIENT_STOCK"))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStock, product.Stock)
		})
	}
}

func TestProduct_IsLowStock(t *testing.T) {
	product := createTestProduct(t, 5)
	assert.True(t, product.IsLowStock(5))
	assert.False(t, product.IsLowStock(4))
}
