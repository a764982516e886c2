package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/parlevel/stocktake-api/internal/core/ports"
)

// historyDates is the number of distinct submission dates shown in the grid.
const historyDates = 5

const dateFormat = "2006-01-02"

// HistoryService pivots the flat stock record series into a per-item,
// per-date grid covering the most recent submission dates.
type HistoryService struct {
	items   ports.ItemRepository
	records ports.StockRecordRepository
	loc     *time.Location
}

func NewHistoryService(items ports.ItemRepository, records ports.StockRecordRepository, loc *time.Location) *HistoryService {
	if loc == nil {
		loc = time.UTC
	}
	return &HistoryService{items: items, records: records, loc: loc}
}

// View builds the comparison grid. Stored UTC timestamps are converted to
// the local timezone before date bucketing, so a late-evening UTC record
// can land on the previous local day. When an item has several records on
// one local date, the record with the greatest timestamp wins.
func (s *HistoryService) View(ctx context.Context) (*ports.HistoryView, error) {
	all, err := s.records.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stock records: %w", err)
	}

	seen := make(map[string]struct{})
	for _, rec := range all {
		seen[s.localDate(rec.Timestamp)] = struct{}{}
	}

	// Fixed-format date strings sort lexicographically in chronological
	// order, so a plain descending sort yields newest first.
	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > historyDates {
		dates = dates[:historyDates]
	}

	catalog, err := s.items.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	view := &ports.HistoryView{Dates: dates, Items: make([]ports.ItemHistory, 0, len(catalog))}
	for _, item := range catalog {
		recs, err := s.records.ListByItem(ctx, item.ID)
		if err != nil {
			return nil, fmt.Errorf("load records for %q: %w", item.Name, err)
		}

		// recs arrive in ascending timestamp order, so the latest record
		// on a date overwrites any earlier one.
		byDate := make(map[string]int, len(recs))
		for _, rec := range recs {
			byDate[s.localDate(rec.Timestamp)] = rec.CurrentStock
		}

		view.Items = append(view.Items, ports.ItemHistory{
			Name:   item.Name,
			Par:    item.Par,
			ByDate: byDate,
		})
	}

	return view, nil
}

func (s *HistoryService) localDate(ts time.Time) string {
	return ts.UTC().In(s.loc).Format(dateFormat)
}
