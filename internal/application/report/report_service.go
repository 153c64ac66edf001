package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/retail/retailctl/internal/domain/report"
	"go.uber.org/zap"
)

const (
	// DefaultTopProductsLimit caps the top-products report by default
	DefaultTopProductsLimit = 5
	// DefaultFrequentMinOrders is the default order count that makes a
	// customer "frequent"
	DefaultFrequentMinOrders = 3
)

// Cache is a read-through byte cache for report results. Implementations
// must treat misses and backend failures identically: return ok=false.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// ReportService runs the aggregate reporting queries. Results are cached
// read-through when a cache is configured; cache trouble degrades to the
// database.
type ReportService struct {
	reportRepo report.Repository
	cache      Cache
	logger     *zap.Logger
	now        func() time.Time
}

// NewReportService creates a new ReportService. cache may be nil.
func NewReportService(reportRepo report.Repository, cache Cache, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		reportRepo: reportRepo,
		cache:      cache,
		logger:     logger,
		now:        time.Now,
	}
}

// TopSellingProducts returns the products with the highest archived sale
// quantities, descending. A non-positive limit falls back to the default.
func (s *ReportService) TopSellingProducts(ctx context.Context, limit int) ([]report.TopProduct, error) {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	key := fmt.Sprintf("report:top-products:%d", limit)
	if cached, ok := s.cacheGet(ctx, key); ok {
		var result []report.TopProduct
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
	}

	result, err := s.reportRepo.TopSellingProducts(ctx, limit)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// TotalRevenueLastMonth sums PAID payments created in the previous
// calendar month.
func (s *ReportService) TotalRevenueLastMonth(ctx context.Context) (*report.RevenueSummary, error) {
	start, end := lastMonthBounds(s.now())

	key := fmt.Sprintf("report:revenue:%s", start.Format("2006-01"))
	if cached, ok := s.cacheGet(ctx, key); ok {
		var result report.RevenueSummary
		if err := json.Unmarshal(cached, &result); err == nil {
			return &result, nil
		}
	}

	total, err := s.reportRepo.TotalRevenueBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	result := &report.RevenueSummary{
		PeriodStart:  start,
		PeriodEnd:    end,
		TotalRevenue: total,
	}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// OrdersPerCustomer returns each customer with at least one archived
// order, together with their order count.
func (s *ReportService) OrdersPerCustomer(ctx context.Context) ([]report.CustomerOrders, error) {
	key := "report:orders-per-customer"
	if cached, ok := s.cacheGet(ctx, key); ok {
		var result []report.CustomerOrders
		if err := json.Unmarshal(cached, &result); err == nil {
			return result, nil
		}
	}

	result, err := s.reportRepo.OrdersPerCustomer(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, result)
	return result, nil
}

// FrequentCustomers returns customers with at least minOrders archived
// orders. A non-positive minOrders falls back to the default.
func (s *ReportService) FrequentCustomers(ctx context.Context, minOrders int64) ([]report.CustomerOrders, error) {
	if minOrders <= 0 {
		minOrders = DefaultFrequentMinOrders
	}

	all, err := s.OrdersPerCustomer(ctx)
	if err != nil {
		return nil, err
	}

	frequent := make([]report.CustomerOrders, 0)
	for _, c := range all {
		if c.TotalOrders >= minOrders {
			frequent = append(frequent, c)
		}
	}
	return frequent, nil
}

func (s *ReportService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	return s.cache.Get(ctx, key)
}

func (s *ReportService) cacheSet(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("failed to marshal report for cache", zap.String("key", key), zap.Error(err))
		return
	}
	s.cache.Set(ctx, key, data)
}

// lastMonthBounds returns the first instant of the previous calendar
// month and the first instant of the current month (half-open range).
func lastMonthBounds(now time.Time) (time.Time, time.Time) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfThisMonth.AddDate(0, -1, 0)
	return firstOfLastMonth, firstOfThisMonth
}
