package stats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/power-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// StatsModule consumes computation events and serves aggregate counters.
type StatsModule struct {
	store  *Store
	logger types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*StatsModule)(nil)
	_ mono.EventConsumerModule   = (*StatsModule)(nil)
	_ mono.ServiceProviderModule = (*StatsModule)(nil)
)

// NewModule creates a new StatsModule.
func NewModule(logger types.Logger) *StatsModule {
	return &StatsModule{
		store:  NewStore(),
		logger: logger,
	}
}

// Name returns the module name.
func (m *StatsModule) Name() string {
	return "stats"
}

// RegisterEventConsumers subscribes to ComputationCompleted events.
func (m *StatsModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(
		registry, events.ComputationCompletedV1, m.handleComputationCompleted, m,
	); err != nil {
		return fmt.Errorf("failed to register ComputationCompleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", []string{"ComputationCompleted.v1"})
	return nil
}

// RegisterServices registers the summary service.
func (m *StatsModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "summary", json.Unmarshal, json.Marshal, m.summary,
	); err != nil {
		return fmt.Errorf("failed to register summary service: %w", err)
	}

	m.logger.Info("Registered services", "services", []string{"summary"})
	return nil
}

func (m *StatsModule) handleComputationCompleted(_ context.Context, event events.ComputationCompletedEvent, _ *mono.Msg) error {
	m.store.Record(event)
	m.logger.Debug("Recorded computation",
		"id", event.ID,
		"method", event.Method,
		"succeeded", event.Succeeded)
	return nil
}

func (m *StatsModule) summary(_ context.Context, _ SummaryRequest, _ *mono.Msg) (Summary, error) {
	return m.store.Summary(), nil
}

// Store returns the underlying store.
func (m *StatsModule) Store() *Store {
	return m.store
}

// Start initializes the stats module.
func (m *StatsModule) Start(_ context.Context) error {
	m.logger.Info("Stats module started")
	return nil
}

// Stop gracefully stops the stats module.
func (m *StatsModule) Stop(_ context.Context) error {
	s := m.store.Summary()
	m.logger.Info("Stats module stopped", "total", s.Total, "failed", s.Failed)
	return nil
}
