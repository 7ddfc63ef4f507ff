package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/example/power-calculator/modules/calc"
	"github.com/example/power-calculator/modules/stats"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// APIModule is the driving adapter that exposes the calculator over REST.
type APIModule struct {
	config    Config
	app       *fiber.App
	calcPort  calc.CalcPort
	statsPort stats.StatsPort
}

// Compile-time interface checks.
var _ mono.Module = (*APIModule)(nil)
var _ mono.DependentModule = (*APIModule)(nil)
var _ mono.HealthCheckableModule = (*APIModule)(nil)

// NewModule creates a new APIModule.
func NewModule(opts ...Option) *APIModule {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &APIModule{config: config}
}

// Name returns the module name.
func (m *APIModule) Name() string {
	return "api"
}

// Dependencies returns the list of module dependencies.
func (m *APIModule) Dependencies() []string {
	return []string{"calc", "stats"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *APIModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "calc":
		m.calcPort = calc.NewCalcAdapter(container)
	case "stats":
		m.statsPort = stats.NewStatsAdapter(container)
	}
}

// Start builds the Fiber app and starts listening.
// Returns an error if required dependencies are not set or the port is taken.
func (m *APIModule) Start(ctx context.Context) error {
	if m.calcPort == nil {
		return fmt.Errorf("calcPort dependency not set")
	}
	if m.statsPort == nil {
		return fmt.Errorf("statsPort dependency not set")
	}

	m.app = m.newApp()

	addr := fmt.Sprintf(":%d", m.config.Port)
	errChan := make(chan error, 1)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Give server a moment to start or fail
	select {
	case err := <-errChan:
		return fmt.Errorf("failed to start HTTP server: %w", err)
	case <-time.After(100 * time.Millisecond):
		log.Printf("[api] HTTP server started on %s", addr)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop shuts down the Fiber HTTP server, waiting for in-flight requests.
func (m *APIModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[api] Shutting down HTTP server...")
	if err := m.app.Shutdown(); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// Health returns the health status of the module.
func (m *APIModule) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "HTTP server not initialized",
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"port": m.config.Port,
		},
	}
}

// newApp creates the Fiber app with middleware and routes.
func (m *APIModule) newApp() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	if m.config.RateLimitMax > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        m.config.RateLimitMax,
			Expiration: m.config.RateLimitWindow,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests",
				})
			},
		}))
	}

	m.setupRoutes(app)
	return app
}

// customErrorHandler handles Fiber errors.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(ErrorResponse{
		Error:   "server_error",
		Message: message,
	})
}
