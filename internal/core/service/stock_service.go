package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

var csvHeader = []string{"Item Name", "Stock Quantity", "PAR"}

// StockService records stock count submissions and emits a CSV artifact per
// committed submission.
type StockService struct {
	items     ports.ItemRepository
	records   ports.StockRecordRepository
	artifacts ports.ArtifactStore
	logger    zerolog.Logger
}

func NewStockService(items ports.ItemRepository, records ports.StockRecordRepository, artifacts ports.ArtifactStore, logger zerolog.Logger) *StockService {
	return &StockService{items: items, records: records, artifacts: artifacts, logger: logger}
}

// Submit records one stock figure per counted catalog item.
//
// The whole batch is validated before anything is written: the first
// negative or non-numeric figure aborts with a *domain.ValidationError and
// no records or artifact are produced. Items absent from counts are simply
// not recorded this round. On success all records commit in one
// transaction; the CSV artifact is written only after the commit, so a
// failed commit never leaves a stray file. A valid submission with nothing
// to record still emits a header-only artifact. An artifact write failure
// after the commit is logged and reported through the empty Filename, but
// the committed records stand.
func (s *StockService) Submit(ctx context.Context, counts map[string]string) (*ports.SubmissionResult, error) {
	catalog, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	now := time.Now().UTC()

	// Validation pass: nothing is persisted until every figure checks out.
	var records []domain.StockRecord
	var rows [][]string
	for _, item := range catalog {
		raw, ok := counts[item.Name]
		if !ok {
			continue
		}

		stock, err := strconv.Atoi(raw)
		if err != nil {
			return nil, &domain.ValidationError{Item: item.Name, Reason: "not a number"}
		}
		if stock < 0 {
			return nil, &domain.ValidationError{Item: item.Name, Reason: "negative stock"}
		}

		records = append(records, domain.StockRecord{
			ItemID:       item.ID,
			CurrentStock: stock,
			Timestamp:    now,
		})
		rows = append(rows, []string{item.Name, strconv.Itoa(stock), strconv.Itoa(item.Par)})
	}

	if len(records) > 0 {
		if err := s.records.InsertBatch(ctx, records); err != nil {
			s.logger.Error().Err(err).Msg("stock submission commit failed")
			return nil, fmt.Errorf("insert stock records: %w", err)
		}
	}

	filename, err := s.artifacts.Write(now, append([][]string{csvHeader}, rows...))
	if err != nil {
		// The database is now ahead of the file store. Deliberate
		// asymmetry: the commit is not undone.
		s.logger.Error().Err(err).Msg("artifact write failed after commit")
		return &ports.SubmissionResult{Records: len(records), SubmittedAt: now}, nil
	}

	s.logger.Info().
		Int("records", len(records)).
		Str("artifact", filename).
		Msg("stock submission recorded")

	return &ports.SubmissionResult{Filename: filename, Records: len(records), SubmittedAt: now}, nil
}
