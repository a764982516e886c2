package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/parlevel/stocktake-api/internal/core/domain"
	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// CatalogService imports the item catalog from CSV uploads.
type CatalogService struct {
	items  ports.ItemRepository
	logger zerolog.Logger
}

func NewCatalogService(items ports.ItemRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{items: items, logger: logger}
}

// Import upserts catalog items from a CSV stream with a header row.
//
// Required columns are "name" and "par"; if either header is absent the
// whole import fails with domain.ErrMissingHeaders and nothing is written.
// Rows with missing data or a non-integer par are skipped individually.
// Matching against existing items is by exact, case-sensitive name. All
// accumulated creates and updates commit in one transaction at the end.
func (s *CatalogService) Import(ctx context.Context, r io.Reader) (*ports.ImportReport, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, domain.ErrMissingHeaders
	}

	nameCol, parCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "name":
			nameCol = i
		case "par":
			parCol = i
		}
	}
	if nameCol < 0 || parCol < 0 {
		return nil, domain.ErrMissingHeaders
	}

	existing, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	byName := make(map[string]domain.Item, len(existing))
	for _, it := range existing {
		byName[it.Name] = it
	}

	report := &ports.ImportReport{}
	var creates, updates []domain.Item
	// pending tracks names already seen in this file so a duplicate row
	// updates the earlier row's value instead of inserting twice.
	pending := make(map[string]int)

	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			report.Skipped = append(report.Skipped, ports.SkippedRow{Line: line, Reason: "unparseable row"})
			continue
		}

		name := field(row, nameCol)
		parRaw := field(row, parCol)
		if name == "" || parRaw == "" {
			report.Skipped = append(report.Skipped, ports.SkippedRow{Line: line, Name: name, Reason: "missing data"})
			continue
		}

		par, err := strconv.Atoi(parRaw)
		if err != nil {
			report.Skipped = append(report.Skipped, ports.SkippedRow{Line: line, Name: name, Reason: "invalid par"})
			continue
		}

		if idx, seen := pending[name]; seen {
			if idx >= 0 {
				creates[idx].Par = par
				report.Created[idx].Par = par
			} else {
				for i := range updates {
					if updates[i].Name == name {
						updates[i].Par = par
						report.Updated[i].Par = par
					}
				}
			}
			continue
		}

		if prev, ok := byName[name]; ok {
			prev.Par = par
			updates = append(updates, prev)
			pending[name] = -1
			report.Updated = append(report.Updated, ports.ImportedItem{Name: name, Par: par})
		} else {
			creates = append(creates, domain.Item{Name: name, Par: par})
			pending[name] = len(creates) - 1
			report.Created = append(report.Created, ports.ImportedItem{Name: name, Par: par})
		}
	}

	if err := s.items.ApplyCatalogChanges(ctx, creates, updates); err != nil {
		s.logger.Error().Err(err).Msg("catalog import commit failed")
		return nil, fmt.Errorf("apply catalog changes: %w", err)
	}

	s.logger.Info().
		Int("created", len(report.Created)).
		Int("updated", len(report.Updated)).
		Int("skipped", len(report.Skipped)).
		Msg("catalog imported")

	return report, nil
}

func field(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
