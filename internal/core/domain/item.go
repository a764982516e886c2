package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrArtifactNotFound = errors.New("artifact not found")

// ErrMissingHeaders is returned when an import file lacks the required
// "name" and "par" header columns. Nothing is written when it is raised.
var ErrMissingHeaders = errors.New(`import file must contain "name" and "par" headers`)

// Item is a catalog entry: a named product with a target (PAR) quantity.
// Items are created and updated by catalog imports, matched by exact name,
// and never deleted in normal operation.
type Item struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`
	Par  int    `json:"par" db:"par"`
}

// StockRecord is one observation of an item's stock level at a point in
// time. Records are append-only: written once by a submission, never
// updated or deleted. Timestamp is stored in UTC.
type StockRecord struct {
	ID           int64     `json:"id" db:"id"`
	ItemID       int64     `json:"item_id" db:"item_id"`
	CurrentStock int       `json:"current_stock" db:"current_stock"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
}

// ValidationError rejects an entire submission because of one bad figure.
// The whole batch is discarded; no records and no artifact are produced.
type ValidationError struct {
	Item   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid stock figure for %q: %s", e.Item, e.Reason)
}
