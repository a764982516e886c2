package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

type StockRecordRepository struct {
	db *sqlx.DB
}

func NewStockRecordRepository(db *sqlx.DB) *StockRecordRepository {
	return &StockRecordRepository{db: db}
}

// InsertBatch persists one submission's records in a single transaction.
func (r *StockRecordRepository) InsertBatch(ctx context.Context, records []domain.StockRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin submission tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stock_records (item_id, current_stock, timestamp) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.ItemID, rec.CurrentStock, rec.Timestamp.UTC()); err != nil {
			return fmt.Errorf("insert stock record for item %d: %w", rec.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission tx: %w", err)
	}
	return nil
}

// ListAll returns every stock record, most recent first.
func (r *StockRecordRepository) ListAll(ctx context.Context) ([]domain.StockRecord, error) {
	records := []domain.StockRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT id, item_id, current_stock, timestamp FROM stock_records ORDER BY timestamp DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	return records, nil
}

// ListByItem returns one item's records in ascending timestamp order; ties
// break on insertion order so the bucketing pass sees a stable sequence.
func (r *StockRecordRepository) ListByItem(ctx context.Context, itemID int64) ([]domain.StockRecord, error) {
	records := []domain.StockRecord{}
	err := r.db.SelectContext(ctx, &records,
		`SELECT id, item_id, current_stock, timestamp FROM stock_records WHERE item_id = ? ORDER BY timestamp ASC, id ASC`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list stock records for item %d: %w", itemID, err)
	}
	return records, nil
}
