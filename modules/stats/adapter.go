package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

type statsAdapter struct {
	container mono.ServiceContainer
}

// NewStatsAdapter creates a StatsPort backed by the stats module's services.
func NewStatsAdapter(container mono.ServiceContainer) StatsPort {
	if container == nil {
		panic("stats adapter requires non-nil ServiceContainer")
	}
	return &statsAdapter{container: container}
}

// Summary fetches the current counters via the summary service.
func (a *statsAdapter) Summary(ctx context.Context) (*Summary, error) {
	var resp Summary
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"summary",
		json.Marshal,
		json.Unmarshal,
		&SummaryRequest{},
		&resp,
	); err != nil {
		return nil, fmt.Errorf("summary service call failed: %w", err)
	}
	return &resp, nil
}
