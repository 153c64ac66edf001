package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
)

// ProductRepository defines the persistence operations for products
type ProductRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Product, error)
	FindByCategory(ctx context.Context, category string, filter shared.Filter) ([]Product, error)
	Save(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AdjustStock applies a signed stock delta as a single guarded update.
	// The update must fail with shared.ErrInsufficientStock rather than
	// drive the stock level negative.
	AdjustStock(ctx context.Context, id uuid.UUID, delta int64) error
}
