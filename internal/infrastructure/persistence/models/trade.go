package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// OrderModel is the archived snapshot of a ledger order. The ledger
// assigns order ids itself, so the primary key is not auto-incremented.
type OrderModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement:false"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status      string          `gorm:"type:varchar(20);not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	CancelledAt *time.Time
	CompletedAt *time.Time
	Items       []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is one archived order line.
type OrderItemModel struct {
	ID          int64           `gorm:"primaryKey;autoIncrement"`
	OrderID     int64           `gorm:"not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	Quantity    int64           `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order.
func (m *OrderModel) ToDomain() *trade.Order {
	items := make([]trade.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = trade.OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
	return &trade.Order{
		ID:          m.ID,
		CustomerID:  m.CustomerID,
		Items:       items,
		TotalAmount: m.TotalAmount,
		Status:      trade.OrderStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
		CompletedAt: m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain Order.
func (m *OrderModel) FromDomain(o *trade.Order) {
	m.ID = o.ID
	m.CustomerID = o.CustomerID
	m.TotalAmount = o.TotalAmount
	m.Status = o.Status.String()
	m.CreatedAt = o.CreatedAt
	m.UpdatedAt = o.UpdatedAt
	m.CancelledAt = o.CancelledAt
	m.CompletedAt = o.CompletedAt

	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			OrderID:     o.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Amount:      item.Amount,
		}
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order.
func OrderModelFromDomain(o *trade.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomain(o)
	return m
}
