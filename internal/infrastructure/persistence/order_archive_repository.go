package persistence

import (
	"context"

	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/trade"
	"github.com/retail/retailctl/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormOrderArchive implements trade.OrderArchive using GORM.
// It records snapshots of ledger orders for reporting; the ledger reads
// back only the highest archived id, to seed its counter.
type GormOrderArchive struct {
	db *gorm.DB
}

// NewGormOrderArchive creates a new GormOrderArchive
func NewGormOrderArchive(db *gorm.DB) *GormOrderArchive {
	return &GormOrderArchive{db: db}
}

// Record archives a newly placed order together with its lines
func (a *GormOrderArchive) Record(ctx context.Context, order *trade.Order) error {
	model := models.OrderModelFromDomain(order)
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}

// UpdateStatus mirrors a ledger status transition onto the archived row
func (a *GormOrderArchive) UpdateStatus(ctx context.Context, orderID int64, status trade.OrderStatus) error {
	updates := map[string]any{"status": status.String()}
	switch status {
	case trade.OrderStatusCancelled:
		updates["cancelled_at"] = gorm.Expr("CURRENT_TIMESTAMP")
	case trade.OrderStatusCompleted:
		updates["completed_at"] = gorm.Expr("CURRENT_TIMESTAMP")
	}

	result := a.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// LastOrderID returns the highest archived order id, 0 when the archive
// is empty. New processes continue the id sequence from here.
func (a *GormOrderArchive) LastOrderID(ctx context.Context) (int64, error) {
	var last int64
	err := a.db.WithContext(ctx).Model(&models.OrderModel{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	return last, nil
}
