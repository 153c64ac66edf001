package models

import (
	"github.com/retail/retailctl/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	BaseModel
	Name     string          `gorm:"type:varchar(200);not null"`
	SKU      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Price    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Stock    int64           `gorm:"not null;default:0;check:stock >= 0"`
	Category string          `gorm:"type:varchar(100);index"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		SKU:        m.SKU,
		Price:      m.Price,
		Stock:      m.Stock,
		Category:   m.Category,
	}
}

// FromDomain populates the persistence model from a domain Product entity.
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Name = p.Name
	m.SKU = p.SKU
	m.Price = p.Price
	m.Stock = p.Stock
	m.Category = p.Category
}

// ProductModelFromDomain creates a new persistence model from a domain Product entity.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
