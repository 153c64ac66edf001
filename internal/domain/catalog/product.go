package catalog

import (
	"fmt"
	"strings"

	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.BaseEntity
	Name     string
	SKU      string
	Price    decimal.Decimal
	Stock    int64
	Category string
}

// NewProduct creates a new product
func NewProduct(name, sku string, price valueobject.Money, stock int64, category string) (*Product, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price must be greater than 0")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Product{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		SKU:        NormalizeSKU(sku),
		Price:      price.Amount(),
		Stock:      stock,
		Category:   category,
	}, nil
}

// NormalizeSKU returns the canonical form of a SKU
func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// Restock increases the stock by delta. Delta must be positive.
func (p *Product) Restock(delta int64) error {
	if delta <= 0 {
		return shared.NewDomainError("INVALID_DELTA", "Restock delta must be positive")
	}
	p.Stock += delta
	p.Touch()
	return nil
}

// AdjustStock applies a signed stock delta. Negative deltas deduct stock;
// the stock level is never allowed to go below zero.
func (p *Product) AdjustStock(delta int64) error {
	next := p.Stock + delta
	if next < 0 {
		return shared.NewDomainError("INSUFFICIENT_STOCK",
			fmt.Sprintf("Not enough stock for '%s'", p.Name))
	}
	p.Stock = next
	p.Touch()
	return nil
}

// SetCategory sets the optional category label
func (p *Product) SetCategory(category string) {
	p.Category = category
	p.Touch()
}

// PriceMoney returns the price as a Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Price)
}

// IsLowStock reports whether stock is at or below the threshold
func (p *Product) IsLowStock(threshold int64) bool {
	return p.Stock <= threshold
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if strings.TrimSpace(sku) == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	return nil
}
