package calc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/power-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// CalcModule exposes the power evaluator as request-reply services.
type CalcModule struct {
	config   Config
	logger   types.Logger
	eventBus mono.EventBus
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*CalcModule)(nil)
	_ mono.ServiceProviderModule = (*CalcModule)(nil)
	_ mono.EventEmitterModule    = (*CalcModule)(nil)
)

// NewModule creates a new CalcModule.
func NewModule(logger types.Logger, opts ...Option) *CalcModule {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &CalcModule{
		config: config,
		logger: logger,
	}
}

// Name returns the module name.
func (m *CalcModule) Name() string {
	return "calc"
}

// SetEventBus receives the event bus from the framework.
func (m *CalcModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
}

// EmitEvents declares the events this module can emit.
func (m *CalcModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.ComputationCompletedV1.ToBase(),
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes names, so "compute" becomes "services.calc.compute".
func (m *CalcModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "compute", json.Unmarshal, json.Marshal, m.compute,
	); err != nil {
		return fmt.Errorf("failed to register compute service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "compute-batch", json.Unmarshal, json.Marshal, m.computeBatch,
	); err != nil {
		return fmt.Errorf("failed to register compute-batch service: %w", err)
	}

	m.logger.Info("Registered services", "services", []string{"compute", "compute-batch"})
	return nil
}

// Start initializes the calc module.
func (m *CalcModule) Start(_ context.Context) error {
	if m.eventBus == nil {
		m.logger.Warn("Event bus not set, ComputationCompleted events will not be published")
	}
	m.logger.Info("Calc module started",
		"default_method", m.config.DefaultMethod,
		"batch_workers", m.config.BatchWorkers)
	return nil
}

// Stop gracefully stops the calc module.
func (m *CalcModule) Stop(_ context.Context) error {
	m.logger.Info("Calc module stopped")
	return nil
}
