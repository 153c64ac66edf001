package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/catalog"
	"github.com/retail/retailctl/internal/domain/partner"
)

// RepositoryCatalog adapts a catalog.ProductRepository to the ProductCatalog
// surface the ledger depends on.
type RepositoryCatalog struct {
	Products catalog.ProductRepository
}

// GetProduct looks up a product by id
func (a RepositoryCatalog) GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	return a.Products.FindByID(ctx, productID)
}

// AdjustStock applies a signed stock delta
func (a RepositoryCatalog) AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) error {
	return a.Products.AdjustStock(ctx, productID, delta)
}

// RepositoryDirectory adapts a partner.CustomerRepository to the
// CustomerDirectory surface the ledger depends on.
type RepositoryDirectory struct {
	Customers partner.CustomerRepository
}

// GetCustomer looks up a customer by id
func (a RepositoryDirectory) GetCustomer(ctx context.Context, customerID uuid.UUID) (*partner.Customer, error) {
	return a.Customers.FindByID(ctx, customerID)
}

// AppendOrder appends an order id to the customer's order list
func (a RepositoryDirectory) AppendOrder(ctx context.Context, customerID uuid.UUID, orderID int64) error {
	return a.Customers.AppendOrder(ctx, customerID, orderID)
}
