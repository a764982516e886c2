package ports

import (
	"context"
	"io"
)

// SkippedRow records one import row that was dropped without aborting the
// rest of the file.
type SkippedRow struct {
	Line   int    `json:"line"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// ImportedItem is one catalog entry touched by an import.
type ImportedItem struct {
	Name string `json:"name"`
	Par  int    `json:"par"`
}

// ImportReport summarises what a catalog import did.
type ImportReport struct {
	Created []ImportedItem `json:"created"`
	Updated []ImportedItem `json:"updated"`
	Skipped []SkippedRow   `json:"skipped"`
}

// CatalogService imports the item catalog from delimited text.
type CatalogService interface {
	// Import parses a CSV stream with a header row and upserts items by
	// name. Missing required headers fail the whole import with
	// domain.ErrMissingHeaders; bad rows are skipped, not fatal. All
	// resulting changes commit in a single transaction.
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}
