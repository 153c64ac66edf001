package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/catalog"
)

// AddProductRequest is the request to add a product to the catalog
type AddProductRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	SKU      string  `json:"sku" validate:"required,max=50"`
	Price    float64 `json:"price" validate:"required,gt=0"`
	Stock    int64   `json:"stock" validate:"gte=0"`
	Category string  `json:"category" validate:"max=100"`
}

// RestockRequest is the request to increase a product's stock
type RestockRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Delta     int64     `json:"delta" validate:"required,gt=0"`
}

// ProductResponse is the product representation returned to callers
type ProductResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     string    `json:"price"`
	Stock     int64     `json:"stock"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ToProductResponse converts a domain product to its response shape
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price.StringFixed(2),
		Stock:     p.Stock,
		Category:  p.Category,
		CreatedAt: p.CreatedAt,
	}
}

// ToProductResponses converts a slice of domain products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
