package ports

import (
	"context"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

// ItemRepository defines persistence operations for the item catalog.
type ItemRepository interface {
	// ListAll returns the full catalog in insertion (id ascending) order.
	ListAll(ctx context.Context) ([]domain.Item, error)
	// ApplyCatalogChanges inserts creates and updates the par of updates in
	// one transaction. Either every change lands or none does.
	ApplyCatalogChanges(ctx context.Context, creates []domain.Item, updates []domain.Item) error
}
