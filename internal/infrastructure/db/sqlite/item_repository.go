package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

type ItemRepository struct {
	db *sqlx.DB
}

func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// ListAll returns the full catalog in insertion order.
func (r *ItemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	items := []domain.Item{}
	err := r.db.SelectContext(ctx, &items, `SELECT id, name, par FROM items ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// ApplyCatalogChanges commits an import's creates and par updates in one
// transaction. A failure on any statement rolls back every change.
func (r *ItemRepository) ApplyCatalogChanges(ctx context.Context, creates []domain.Item, updates []domain.Item) error {
	if len(creates) == 0 && len(updates) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin catalog tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, it := range creates {
		if _, err := tx.ExecContext(ctx, `INSERT INTO items (name, par) VALUES (?, ?)`, it.Name, it.Par); err != nil {
			return fmt.Errorf("insert item %q: %w", it.Name, err)
		}
	}
	for _, it := range updates {
		if _, err := tx.ExecContext(ctx, `UPDATE items SET par = ? WHERE id = ?`, it.Par, it.ID); err != nil {
			return fmt.Errorf("update item %q: %w", it.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit catalog tx: %w", err)
	}
	return nil
}
