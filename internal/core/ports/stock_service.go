package ports

import (
	"context"
	"io"
	"time"
)

// SubmissionResult is returned by the service after recording a stock count
// submission.
type SubmissionResult struct {
	// Filename of the CSV artifact written for this submission. Empty when
	// the artifact write failed after the database commit succeeded.
	Filename    string    `json:"filename,omitempty"`
	Records     int       `json:"records"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// StockService records stock count submissions.
type StockService interface {
	// Submit validates every figure before anything is written: a negative
	// or non-numeric value aborts the whole submission with a
	// *domain.ValidationError. On success one StockRecord per counted item
	// is committed in a single transaction and a CSV artifact is written.
	Submit(ctx context.Context, counts map[string]string) (*SubmissionResult, error)
}

// ArtifactInfo describes one stored artifact.
type ArtifactInfo struct {
	Name       string    `json:"name"`
	Size       int64     `json:"size"`
	ModifiedAt time.Time `json:"modified_at"`
}

// ArtifactStore persists and serves the CSV files generated by submissions.
type ArtifactStore interface {
	// Write stores a CSV artifact for a submission made at ts and returns
	// the filename it was stored under.
	Write(ts time.Time, rows [][]string) (string, error)
	// List returns stored artifact names, most recently modified first.
	List() ([]ArtifactInfo, error)
	// Open returns the named artifact for reading, or
	// domain.ErrArtifactNotFound.
	Open(name string) (io.ReadCloser, error)
}
