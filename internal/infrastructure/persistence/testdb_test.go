package persistence

import (
	"testing"

	"github.com/retail/retailctl/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB opens an in-memory SQLite database with the full schema.
// The production schema lives in SQL migrations; AutoMigrate over the
// models is close enough for repository behavior tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.ProductModel{},
		&models.CustomerModel{},
		&models.CustomerOrderModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.PaymentModel{},
	)
	require.NoError(t, err)

	return db
}
