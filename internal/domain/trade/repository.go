package trade

import "context"

// OrderArchive records order snapshots for reporting. The in-memory
// ledger stays authoritative; the only value read back is the highest
// archived order id, which seeds the ledger's id counter so ids never
// collide with rows persisted by earlier processes.
type OrderArchive interface {
	Record(ctx context.Context, order *Order) error
	UpdateStatus(ctx context.Context, orderID int64, status OrderStatus) error
	LastOrderID(ctx context.Context) (int64, error)
}
