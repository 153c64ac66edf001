package catalog

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/catalog"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/shared/valueobject"
)

// DefaultLowStockThreshold is used when no threshold is given
const DefaultLowStockThreshold = 5

// ProductService handles product-related business operations
type ProductService struct {
	productRepo catalog.ProductRepository
	validate    *validator.Validate
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// Add validates and inserts a new product. The SKU must be unique.
func (s *ProductService) Add(ctx context.Context, req AddProductRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}

	sku := catalog.NormalizeSKU(req.SKU)
	exists, err := s.productRepo.ExistsBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS",
			fmt.Sprintf("SKU already exists: %s", sku))
	}

	product, err := catalog.NewProduct(req.Name, req.SKU, valueobject.NewMoneyUSDFromFloat(req.Price), req.Stock, req.Category)
	if err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	response := ToProductResponse(product)
	return &response, nil
}

// GetByID retrieves a product by id
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// GetBySKU retrieves a product by SKU
func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, catalog.NormalizeSKU(sku))
	if err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}

// List lists products, optionally filtered by category
func (s *ProductService) List(ctx context.Context, category string, limit int) ([]ProductResponse, error) {
	filter := shared.DefaultFilter().WithLimit(limit)

	var (
		products []catalog.Product
		err      error
	)
	if category != "" {
		products, err = s.productRepo.FindByCategory(ctx, category, filter)
	} else {
		products, err = s.productRepo.FindAll(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	return ToProductResponses(products), nil
}

// Restock increases the stock of a product by a positive delta
func (s *ProductService) Restock(ctx context.Context, req RestockRequest) (*ProductResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", err.Error())
	}
	if req.Delta <= 0 {
		return nil, shared.NewDomainError("INVALID_DELTA", "Delta must be positive")
	}

	if _, err := s.productRepo.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}
	if err := s.productRepo.AdjustStock(ctx, req.ProductID, req.Delta); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, req.ProductID)
}

// LowStock returns products whose stock is at or below the threshold.
// A non-positive threshold falls back to the default.
func (s *ProductService) LowStock(ctx context.Context, threshold int64) ([]ProductResponse, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	products, err := s.productRepo.FindAll(ctx, shared.DefaultFilter().WithLimit(1000))
	if err != nil {
		return nil, err
	}

	low := make([]catalog.Product, 0)
	for _, p := range products {
		if p.IsLowStock(threshold) {
			low = append(low, p)
		}
	}
	return ToProductResponses(low), nil
}

// Delete removes a product by id and returns the deleted row
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	response := ToProductResponse(product)
	return &response, nil
}
