package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
)

// CustomerRepository defines the persistence operations for customers
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)
	Search(ctx context.Context, email, city string, filter shared.Filter) ([]Customer, error)
	Save(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendOrder appends an order id to the customer's order list.
	AppendOrder(ctx context.Context, id uuid.UUID, orderID int64) error
}
