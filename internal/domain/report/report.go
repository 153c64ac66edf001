package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopProduct is a product together with its total quantity sold
type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	SKU       string    `json:"sku"`
	Price     string    `json:"price"`
	TotalSold int64     `json:"total_sold"`
}

// CustomerOrders is a customer together with their order count
type CustomerOrders struct {
	CustomerID  uuid.UUID `json:"customer_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	City        string    `json:"city,omitempty"`
	TotalOrders int64     `json:"total_orders"`
}

// RevenueSummary is the total of PAID payments for a period
type RevenueSummary struct {
	PeriodStart  time.Time       `json:"period_start"`
	PeriodEnd    time.Time       `json:"period_end"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

// Repository defines the reporting queries. All queries are read-only
// aggregations over the persistence tables; none mutate state.
type Repository interface {
	TopSellingProducts(ctx context.Context, limit int) ([]TopProduct, error)
	TotalRevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
	OrdersPerCustomer(ctx context.Context) ([]CustomerOrders, error)
}
