package service

import (
	"context"
	"testing"
	"time"

	"github.com/parlevel/stocktake-api/internal/core/domain"
)

// noonUTC returns a timestamp that lands on the same calendar date in
// America/New_York as in UTC.
func noonUTC(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func newYork(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestHistoryService_View_LimitsToFiveDates(t *testing.T) {
	items := newStubItemRepo(domain.Item{Name: "Vodka", Par: 6})
	records := &stubStockRepo{}
	for day := 1; day <= 6; day++ {
		records.records = append(records.records, domain.StockRecord{
			ID: int64(day), ItemID: 1, CurrentStock: day, Timestamp: noonUTC(2025, time.March, day),
		})
	}

	svc := NewHistoryService(items, records, newYork(t))
	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}

	if len(view.Dates) != 5 {
		t.Fatalf("expected 5 dates, got %d: %v", len(view.Dates), view.Dates)
	}

	want := []string{"2025-03-06", "2025-03-05", "2025-03-04", "2025-03-03", "2025-03-02"}
	for i, d := range want {
		if view.Dates[i] != d {
			t.Fatalf("dates[%d]: expected %s, got %s", i, d, view.Dates[i])
		}
	}
	for _, d := range view.Dates {
		if d == "2025-03-01" {
			t.Fatalf("oldest date must be excluded")
		}
	}
}

func TestHistoryService_View_AbsenceIsNotZero(t *testing.T) {
	items := newStubItemRepo(
		domain.Item{Name: "Vodka", Par: 6},
		domain.Item{Name: "Gin", Par: 4},
	)
	records := &stubStockRepo{records: []domain.StockRecord{
		{ID: 1, ItemID: 1, CurrentStock: 3, Timestamp: noonUTC(2025, time.March, 1)},
		{ID: 2, ItemID: 1, CurrentStock: 4, Timestamp: noonUTC(2025, time.March, 2)},
		{ID: 3, ItemID: 2, CurrentStock: 2, Timestamp: noonUTC(2025, time.March, 2)},
	}}

	svc := NewHistoryService(items, records, newYork(t))
	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}

	if len(view.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(view.Items))
	}

	gin := view.Items[1]
	if gin.Name != "Gin" {
		t.Fatalf("expected catalog order, got %q second", gin.Name)
	}
	if _, ok := gin.ByDate["2025-03-01"]; ok {
		t.Fatalf("missing date must be absent from the mapping, not zero")
	}
	if got := gin.ByDate["2025-03-02"]; got != 2 {
		t.Fatalf("expected Gin 2 on 2025-03-02, got %d", got)
	}
}

func TestHistoryService_View_SameDateLatestWins(t *testing.T) {
	items := newStubItemRepo(domain.Item{Name: "Vodka", Par: 6})
	morning := time.Date(2025, time.March, 1, 13, 0, 0, 0, time.UTC)
	evening := time.Date(2025, time.March, 1, 21, 0, 0, 0, time.UTC)
	records := &stubStockRepo{records: []domain.StockRecord{
		{ID: 2, ItemID: 1, CurrentStock: 9, Timestamp: evening},
		{ID: 1, ItemID: 1, CurrentStock: 5, Timestamp: morning},
	}}

	svc := NewHistoryService(items, records, newYork(t))
	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}

	if got := view.Items[0].ByDate["2025-03-01"]; got != 9 {
		t.Fatalf("record with the greatest timestamp must win, got %d", got)
	}
}

func TestHistoryService_View_TimezoneBucketing(t *testing.T) {
	items := newStubItemRepo(domain.Item{Name: "Vodka", Par: 6})
	// 02:00 UTC on March 2nd is still March 1st in New York (UTC-5).
	lateNight := time.Date(2025, time.March, 2, 2, 0, 0, 0, time.UTC)
	records := &stubStockRepo{records: []domain.StockRecord{
		{ID: 1, ItemID: 1, CurrentStock: 3, Timestamp: lateNight},
	}}

	svc := NewHistoryService(items, records, newYork(t))
	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}

	if len(view.Dates) != 1 || view.Dates[0] != "2025-03-01" {
		t.Fatalf("expected local date 2025-03-01, got %v", view.Dates)
	}
	if got := view.Items[0].ByDate["2025-03-01"]; got != 3 {
		t.Fatalf("expected stock 3 on local date, got %d", got)
	}
}

func TestHistoryService_View_NoRecords(t *testing.T) {
	items := newStubItemRepo(domain.Item{Name: "Vodka", Par: 6})
	svc := NewHistoryService(items, &stubStockRepo{}, newYork(t))

	view, err := svc.View(context.Background())
	if err != nil {
		t.Fatalf("View returned error: %v", err)
	}
	if len(view.Dates) != 0 {
		t.Fatalf("expected no dates, got %v", view.Dates)
	}
	if len(view.Items) != 1 {
		t.Fatalf("catalog items still appear with empty mappings, got %d", len(view.Items))
	}
	if len(view.Items[0].ByDate) != 0 {
		t.Fatalf("expected empty mapping, got %v", view.Items[0].ByDate)
	}
}
