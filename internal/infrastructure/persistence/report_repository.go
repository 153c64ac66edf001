package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/report"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository using GORM.
// All queries aggregate over the archive tables; cancelled orders are
// excluded from sales figures because their status is mirrored there.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// TopSellingProducts returns products ordered by archived sale quantity, descending
func (r *GormReportRepository) TopSellingProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	type row struct {
		ProductID uuid.UUID
		Name      string
		SKU       string
		Price     decimal.Decimal
		TotalSold int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Table("order_items oi").
		Select(`
			oi.product_id as product_id,
			p.name as name,
			p.sku as sku,
			p.price as price,
			COALESCE(SUM(oi.quantity), 0) as total_sold
		`).
		Joins("JOIN orders o ON o.id = oi.order_id").
		Joins("JOIN products p ON p.id = oi.product_id").
		Where("o.status <> ?", "CANCELLED").
		Group("oi.product_id, p.name, p.sku, p.price").
		Order("total_sold DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]report.TopProduct, len(rows))
	for i, row := range rows {
		result[i] = report.TopProduct{
			ProductID: row.ProductID,
			Name:      row.Name,
			SKU:       row.SKU,
			Price:     row.Price.StringFixed(2),
			TotalSold: row.TotalSold,
		}
	}
	return result, nil
}

// TotalRevenueBetween sums PAID payments created in the half-open range [start, end)
func (r *GormReportRepository) TotalRevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	type row struct {
		Total decimal.Decimal
	}

	var result row
	err := r.db.WithContext(ctx).Table("payments").
		Select("COALESCE(SUM(amount), 0) as total").
		Where("status = ?", "PAID").
		Where("created_at >= ? AND created_at < ?", start, end).
		Scan(&result).Error
	if err != nil {
		return decimal.Zero, err
	}
	return result.Total, nil
}

// OrdersPerCustomer returns each customer with at least one archived order
func (r *GormReportRepository) OrdersPerCustomer(ctx context.Context) ([]report.CustomerOrders, error) {
	type row struct {
		CustomerID  uuid.UUID
		Name        string
		Email       string
		City        string
		TotalOrders int64
	}

	var rows []row
	err := r.db.WithContext(ctx).Table("orders o").
		Select(`
			o.customer_id as customer_id,
			c.name as name,
			c.email as email,
			c.city as city,
			COUNT(o.id) as total_orders
		`).
		Joins("JOIN customers c ON c.id = o.customer_id").
		Group("o.customer_id, c.name, c.email, c.city").
		Order("total_orders DESC, c.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]report.CustomerOrders, len(rows))
	for i, row := range rows {
		result[i] = report.CustomerOrders{
			CustomerID:  row.CustomerID,
			Name:        row.Name,
			Email:       row.Email,
			City:        row.City,
			TotalOrders: row.TotalOrders,
		}
	}
	return result, nil
}
