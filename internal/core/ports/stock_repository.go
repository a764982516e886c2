package ports

import (
	"context"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

// StockRecordRepository handles append-only stock observation persistence.
// There are deliberately no update or delete operations.
type StockRecordRepository interface {
	// InsertBatch persists all records in one transaction; a failure leaves
	// the store untouched.
	InsertBatch(ctx context.Context, records []domain.StockRecord) error
	// ListAll returns every record ordered by timestamp descending.
	ListAll(ctx context.Context) ([]domain.StockRecord, error)
	// ListByItem returns one item's records ordered by timestamp ascending.
	ListByItem(ctx context.Context, itemID int64) ([]domain.StockRecord, error)
}
