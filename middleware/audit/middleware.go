package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// Middleware records every request-reply call and event delivery that
// passes through the framework. It never alters payloads or errors.
type Middleware struct {
	name   string
	config Config
	logger types.Logger

	calls    atomic.Int64
	failures atomic.Int64
	slow     atomic.Int64

	mu       sync.RWMutex
	handlers map[string]*HandlerStats
}

// HandlerStats holds per-handler counters.
type HandlerStats struct {
	Calls         int64         `json:"calls"`
	Failures      int64         `json:"failures"`
	Slow          int64         `json:"slow"`
	TotalDuration time.Duration `json:"total_duration"`
}

// Compile-time interface checks
var _ mono.Module = (*Middleware)(nil)
var _ mono.MiddlewareModule = (*Middleware)(nil)

// New creates a new audit middleware.
func New(logger types.Logger, opts ...Option) *Middleware {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Middleware{
		name:     "audit",
		config:   config,
		logger:   logger,
		handlers: make(map[string]*HandlerStats),
	}
}

// Name returns the middleware name.
func (m *Middleware) Name() string {
	return m.name
}

// Start logs the active configuration.
func (m *Middleware) Start(_ context.Context) error {
	m.logger.Info("Audit middleware started",
		"slow_threshold", m.config.SlowThreshold,
		"log_every_call", m.config.LogEveryCall)
	return nil
}

// Stop logs the totals collected since start.
func (m *Middleware) Stop(_ context.Context) error {
	m.logger.Info("Audit middleware stopped",
		"calls", m.calls.Load(),
		"failures", m.failures.Load(),
		"slow", m.slow.Load())
	return nil
}

// OnModuleLifecycle logs module start and stop failures.
func (m *Middleware) OnModuleLifecycle(
	_ context.Context,
	event types.ModuleLifecycleEvent,
) types.ModuleLifecycleEvent {
	switch event.Type {
	case types.ModuleStartedEvent:
		m.logger.Info("Module started",
			"module", event.ModuleName,
			"startup_ms", event.Duration.Milliseconds())
	case types.ModuleStoppedEvent:
		if event.Error != nil {
			m.logger.Warn("Module stopped with error",
				"module", event.ModuleName,
				"error", event.Error)
		}
	}
	return event
}

// OnServiceRegistration wraps request-reply handlers with call auditing.
func (m *Middleware) OnServiceRegistration(
	_ context.Context,
	reg types.ServiceRegistration,
) types.ServiceRegistration {
	if reg.Type != types.ServiceTypeRequestReply || reg.RequestHandler == nil {
		return reg
	}

	serviceName := reg.Name
	original := reg.RequestHandler

	m.logger.Debug("Auditing service", "service", serviceName)

	reg.RequestHandler = func(ctx context.Context, req *types.Msg) ([]byte, error) {
		start := time.Now()
		resp, err := original(ctx, req)
		m.record("service", serviceName, time.Since(start), err)
		return resp, err
	}
	return reg
}

// OnConfigurationChange passes through configuration changes unchanged.
func (m *Middleware) OnConfigurationChange(
	_ context.Context,
	event types.ConfigurationEvent,
) types.ConfigurationEvent {
	return event
}

// OnOutgoingMessage passes through outgoing messages unchanged.
func (m *Middleware) OnOutgoingMessage(
	octx types.OutgoingMessageContext,
) types.OutgoingMessageContext {
	return octx
}

// OnEventConsumerRegistration wraps event consumer handlers with delivery auditing.
func (m *Middleware) OnEventConsumerRegistration(
	_ context.Context,
	entry types.EventConsumerEntry,
) types.EventConsumerEntry {
	if entry.Handler == nil {
		return entry
	}

	eventName := entry.EventDef.Name
	original := entry.Handler
	entry.Handler = func(ctx context.Context, msg *types.Msg) error {
		start := time.Now()
		err := original(ctx, msg)
		m.record("event", eventName, time.Since(start), err)
		return err
	}
	return entry
}

// OnEventStreamConsumerRegistration passes through event stream consumer registrations unchanged.
func (m *Middleware) OnEventStreamConsumerRegistration(
	_ context.Context,
	entry types.EventStreamConsumerEntry,
) types.EventStreamConsumerEntry {
	return entry
}

func (m *Middleware) record(kind, name string, elapsed time.Duration, err error) {
	m.calls.Add(1)
	isSlow := m.config.SlowThreshold > 0 && elapsed > m.config.SlowThreshold
	if err != nil {
		m.failures.Add(1)
	}
	if isSlow {
		m.slow.Add(1)
	}

	m.mu.Lock()
	stats, ok := m.handlers[name]
	if !ok {
		stats = &HandlerStats{}
		m.handlers[name] = stats
	}
	stats.Calls++
	stats.TotalDuration += elapsed
	if err != nil {
		stats.Failures++
	}
	if isSlow {
		stats.Slow++
	}
	m.mu.Unlock()

	switch {
	case err != nil:
		m.logger.Warn("Call failed", "kind", kind, "name", name, "duration", elapsed, "error", err)
	case isSlow:
		m.logger.Warn("Slow call", "kind", kind, "name", name, "duration", elapsed)
	case m.config.LogEveryCall:
		m.logger.Debug("Call completed", "kind", kind, "name", name, "duration", elapsed)
	}
}

// Calls returns the total number of audited calls.
func (m *Middleware) Calls() int64 {
	return m.calls.Load()
}

// Failures returns the number of audited calls that returned an error.
func (m *Middleware) Failures() int64 {
	return m.failures.Load()
}

// Snapshot returns a copy of the per-handler counters.
func (m *Middleware) Snapshot() map[string]HandlerStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make(map[string]HandlerStats, len(m.handlers))
	for name, stats := range m.handlers {
		out[name] = *stats
	}
	return out
}
