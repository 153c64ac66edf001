package models

import (
	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	BaseModel
	Name   string               `gorm:"type:varchar(200);not null"`
	Email  string               `gorm:"type:varchar(200);not null;uniqueIndex"`
	Phone  string               `gorm:"type:varchar(50);not null"`
	City   string               `gorm:"type:varchar(100);index"`
	Orders []CustomerOrderModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// CustomerOrderModel links a customer to one of their order ids.
// Rows are appended in order-creation order and read back sorted by
// order id, which preserves that order.
type CustomerOrderModel struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    int64     `gorm:"primaryKey;autoIncrement:false"`
}

// TableName returns the table name for GORM
func (CustomerOrderModel) TableName() string {
	return "customer_orders"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	orders := make([]int64, len(m.Orders))
	for i, o := range m.Orders {
		orders[i] = o.OrderID
	}
	return &partner.Customer{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Phone:      m.Phone,
		City:       m.City,
		Orders:     orders,
	}
}

// FromDomain populates the persistence model from a domain Customer entity.
// The order id list is persisted separately by the repository.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainBaseEntity(c.BaseEntity)
	m.Name = c.Name
	m.Email = c.Email
	m.Phone = c.Phone
	m.City = c.City
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer entity.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}
