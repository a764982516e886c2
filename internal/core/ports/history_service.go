package ports

import "context"

// ItemHistory is one item's row in the history grid. ByDate holds an entry
// only for dates the item actually has a record on; absent means blank in
// the rendered grid, not zero.
type ItemHistory struct {
	Name   string         `json:"name"`
	Par    int            `json:"par"`
	ByDate map[string]int `json:"by_date"`
}

// HistoryView is the date-bucketed comparison grid of past submissions.
// Dates holds at most the five most recent distinct local submission dates,
// newest first, formatted 2006-01-02.
type HistoryView struct {
	Dates []string      `json:"dates"`
	Items []ItemHistory `json:"items"`
}

// HistoryService reconstructs the rolling submission history per item.
type HistoryService interface {
	View(ctx context.Context) (*HistoryView, error)
}
