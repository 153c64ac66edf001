package models

import (
	"time"

	"github.com/retail/retailctl/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// PaymentModel is the persistence model for the Payment domain entity.
// Payments are keyed by order id, one payment per order.
type PaymentModel struct {
	OrderID   int64           `gorm:"primaryKey;autoIncrement:false"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Status    string          `gorm:"type:varchar(20);not null;index"`
	Method    *string         `gorm:"type:varchar(20)"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PaymentModel) TableName() string {
	return "payments"
}

// ToDomain converts the persistence model to a domain Payment.
func (m *PaymentModel) ToDomain() *finance.Payment {
	return &finance.Payment{
		OrderID:   m.OrderID,
		Amount:    m.Amount,
		Status:    finance.PaymentStatus(m.Status),
		Method:    m.Method,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain populates the persistence model from a domain Payment.
func (m *PaymentModel) FromDomain(p *finance.Payment) {
	m.OrderID = p.OrderID
	m.Amount = p.Amount
	m.Status = p.Status.String()
	m.Method = p.Method
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}

// PaymentModelFromDomain creates a new persistence model from a domain Payment.
func PaymentModelFromDomain(p *finance.Payment) *PaymentModel {
	m := &PaymentModel{}
	m.FromDomain(p)
	return m
}
