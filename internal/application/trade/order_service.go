package trade

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/catalog"
	"github.com/retail/retailctl/internal/domain/partner"
	"github.com/retail/retailctl/internal/domain/shared"
	"github.com/retail/retailctl/internal/domain/trade"
	"go.uber.org/zap"
)

// ProductCatalog is the catalog surface the ledger needs: product lookup
// plus a signed stock mutation. Lookups return snapshots, not live records.
type ProductCatalog interface {
	GetProduct(ctx context.Context, productID uuid.UUID) (*catalog.Product, error)
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) error
}

// CustomerDirectory is the directory surface the ledger needs: customer
// lookup plus appending an order id to the customer's order list.
type CustomerDirectory interface {
	GetCustomer(ctx context.Context, customerID uuid.UUID) (*partner.Customer, error)
	AppendOrder(ctx context.Context, customerID uuid.UUID, orderID int64) error
}

// OrderService owns the order ledger: an in-memory, append-only sequence
// of orders that lives and dies with the process. It coordinates stock
// deduction and restoration against the product catalog.
//
// A single mutex serializes create/cancel/complete so the check-then-deduct
// sequence and status transitions are atomic within the process.
type OrderService struct {
	mu        sync.Mutex
	catalog   ProductCatalog
	directory CustomerDirectory
	archive   trade.OrderArchive
	logger    *zap.Logger

	orders []*trade.Order
	nextID int64
}

// NewOrderService creates an order ledger with injected collaborators.
// archive may be nil to disable reporting snapshots.
//
// With an archive, the id counter continues from the highest archived
// order id, so ids never collide with directory and archive rows
// persisted by earlier processes.
func NewOrderService(productCatalog ProductCatalog, directory CustomerDirectory, archive trade.OrderArchive, logger *zap.Logger) *OrderService {
	if logger == nil {
		logger = zap.NewNop()
	}

	nextID := int64(1)
	if archive != nil {
		if last, err := archive.LastOrderID(context.Background()); err != nil {
			logger.Warn("failed to read last archived order id, starting at 1", zap.Error(err))
		} else {
			nextID = last + 1
		}
	}

	return &OrderService{
		catalog:   productCatalog,
		directory: directory,
		archive:   archive,
		logger:    logger,
		orders:    make([]*trade.Order, 0),
		nextID:    nextID,
	}
}

// CreateOrder validates the whole order, deducts stock, and appends the
// order to the ledger. Validation completes fully before any mutation:
// a failure on any line leaves stock and directory state untouched.
// Quantities are summed per product before the stock check, so several
// lines for the same product cannot jointly exceed stock.
func (s *OrderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (*trade.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.directory.GetCustomer(ctx, req.CustomerID)
	if err != nil {
		if shared.IsCode(err, "NOT_FOUND") {
			return nil, shared.NewDomainError("NOT_FOUND",
				fmt.Sprintf("No customer found with id %s", req.CustomerID))
		}
		return nil, err
	}

	if len(req.Items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Order must contain at least one item")
	}

	// Validation pass: resolve every product once, build line items, and
	// sum requested quantities per product. No mutation happens here.
	products := make(map[uuid.UUID]*catalog.Product)
	required := make(map[uuid.UUID]int64)
	deductOrder := make([]uuid.UUID, 0, len(req.Items))
	items := make([]trade.OrderItem, 0, len(req.Items))

	for _, line := range req.Items {
		product, ok := products[line.ProductID]
		if !ok {
			product, err = s.catalog.GetProduct(ctx, line.ProductID)
			if err != nil {
				if shared.IsCode(err, "NOT_FOUND") {
					return nil, shared.NewDomainError("NOT_FOUND",
						fmt.Sprintf("Product id %s does not exist", line.ProductID))
				}
				return nil, err
			}
			products[line.ProductID] = product
			deductOrder = append(deductOrder, line.ProductID)
		}

		item, err := trade.NewOrderItem(product.ID, product.Name, line.Quantity, product.PriceMoney())
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
		required[line.ProductID] += line.Quantity
	}

	for _, productID := range deductOrder {
		product := products[productID]
		if required[productID] > product.Stock {
			return nil, shared.NewDomainError("INSUFFICIENT_STOCK",
				fmt.Sprintf("Not enough stock for '%s'", product.Name))
		}
	}

	// Deduction pass, in first-appearance order of the items. A failure
	// here (e.g. a concurrent process drained stock between check and
	// deduct) rolls back the deductions already applied.
	deducted := make([]uuid.UUID, 0, len(deductOrder))
	for _, productID := range deductOrder {
		if err := s.catalog.AdjustStock(ctx, productID, -required[productID]); err != nil {
			s.rollbackDeductions(ctx, deducted, required)
			return nil, err
		}
		deducted = append(deducted, productID)
	}

	order, err := trade.NewOrder(s.nextID, customer.ID, items)
	if err != nil {
		s.rollbackDeductions(ctx, deducted, required)
		return nil, err
	}

	if err := s.directory.AppendOrder(ctx, customer.ID, order.ID); err != nil {
		s.rollbackDeductions(ctx, deducted, required)
		return nil, err
	}

	s.nextID++
	s.orders = append(s.orders, order)

	s.logger.Info("order placed",
		zap.Int64("order_id", order.ID),
		zap.String("customer_id", customer.ID.String()),
		zap.String("total_amount", order.TotalAmount.String()),
	)

	s.archiveRecord(ctx, order)

	return order.Clone(), nil
}

// CancelOrder cancels a PLACED order and restores stock for every line
// item, summed per product, exactly reversing the original deduction.
func (s *OrderService) CancelOrder(ctx context.Context, orderID int64) (*trade.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(trade.OrderStatusCancelled) {
		return nil, shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot cancel order in %s status", order.Status))
	}

	// Stock is restored before the status transition. A restoration
	// failure (e.g. a line's product was deleted from the catalog)
	// reverts the restorations already applied and leaves the order
	// PLACED, so cancellation can be retried.
	required := order.QuantityByProduct()
	restored := make([]uuid.UUID, 0, len(required))
	for productID, quantity := range required {
		if err := s.catalog.AdjustStock(ctx, productID, quantity); err != nil {
			s.revertRestorations(ctx, restored, required)
			return nil, err
		}
		restored = append(restored, productID)
	}

	if err := order.Cancel(); err != nil {
		s.revertRestorations(ctx, restored, required)
		return nil, err
	}

	s.logger.Info("order cancelled", zap.Int64("order_id", orderID))
	s.archiveStatus(ctx, orderID, trade.OrderStatusCancelled)

	return order.Clone(), nil
}

// CompleteOrder marks a PLACED order as COMPLETED. Stock was deducted
// at placement and is not returned.
func (s *OrderService) CompleteOrder(ctx context.Context, orderID int64) (*trade.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	if err := order.Complete(); err != nil {
		return nil, err
	}

	s.logger.Info("order completed", zap.Int64("order_id", orderID))
	s.archiveStatus(ctx, orderID, trade.OrderStatusCompleted)

	return order.Clone(), nil
}

// GetOrderDetails returns the order paired with a snapshot of its
// customer, both by value.
func (s *OrderService) GetOrderDetails(ctx context.Context, orderID int64) (*OrderDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, err := s.findOrder(orderID)
	if err != nil {
		return nil, err
	}

	customer, err := s.directory.GetCustomer(ctx, order.CustomerID)
	if err != nil {
		return nil, err
	}

	return &OrderDetails{
		Order:    *order.Clone(),
		Customer: *customer,
	}, nil
}

// ListOrdersOfCustomer returns all orders of the customer in creation
// order, any status. An unknown or order-less customer yields an empty
// slice, not an error.
func (s *OrderService) ListOrdersOfCustomer(ctx context.Context, customerID uuid.UUID) []trade.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]trade.Order, 0)
	for _, order := range s.orders {
		if order.CustomerID == customerID {
			result = append(result, *order.Clone())
		}
	}
	return result
}

func (s *OrderService) findOrder(orderID int64) (*trade.Order, error) {
	for _, order := range s.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return nil, shared.NewDomainError("NOT_FOUND",
		fmt.Sprintf("No order found with id %d", orderID))
}

func (s *OrderService) rollbackDeductions(ctx context.Context, deducted []uuid.UUID, required map[uuid.UUID]int64) {
	for _, productID := range deducted {
		if err := s.catalog.AdjustStock(ctx, productID, required[productID]); err != nil {
			s.logger.Error("failed to roll back stock deduction",
				zap.String("product_id", productID.String()),
				zap.Error(err),
			)
		}
	}
}

// revertRestorations re-deducts stock restored by a failed cancellation
// so the net stock effect of the failure is zero.
func (s *OrderService) revertRestorations(ctx context.Context, restored []uuid.UUID, required map[uuid.UUID]int64) {
	for _, productID := range restored {
		if err := s.catalog.AdjustStock(ctx, productID, -required[productID]); err != nil {
			s.logger.Error("failed to revert stock restoration",
				zap.String("product_id", productID.String()),
				zap.Error(err),
			)
		}
	}
}

// archiveRecord writes a reporting snapshot. The ledger is authoritative;
// archive failures are logged and never fail the operation.
func (s *OrderService) archiveRecord(ctx context.Context, order *trade.Order) {
	if s.archive == nil {
		return
	}
	if err := s.archive.Record(ctx, order); err != nil {
		s.logger.Warn("failed to archive order", zap.Int64("order_id", order.ID), zap.Error(err))
	}
}

func (s *OrderService) archiveStatus(ctx context.Context, orderID int64, status trade.OrderStatus) {
	if s.archive == nil {
		return
	}
	if err := s.archive.UpdateStatus(ctx, orderID, status); err != nil {
		s.logger.Warn("failed to update archived order status",
			zap.Int64("order_id", orderID),
			zap.String("status", status.String()),
			zap.Error(err),
		)
	}
}
