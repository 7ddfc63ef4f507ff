package stats

import (
	"context"
	"time"
)

// Summary is a snapshot of computation counters since process start.
type Summary struct {
	Total       int64            `json:"total"`
	Succeeded   int64            `json:"succeeded"`
	Failed      int64            `json:"failed"`
	NonFinite   int64            `json:"non_finite"`
	ByCode      map[string]int64 `json:"by_code"`
	ByMethod    map[string]int64 `json:"by_method"`
	ByField     map[string]int64 `json:"by_field"`
	LastUpdated *time.Time       `json:"last_updated,omitempty"` // nil until the first event
}

// SummaryRequest is the (empty) request for the summary service.
type SummaryRequest struct{}

// StatsPort is the contract driving adapters use to read statistics.
type StatsPort interface {
	Summary(ctx context.Context) (*Summary, error)
}
