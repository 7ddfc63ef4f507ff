package api

import (
	"context"

	"github.com/example/power-calculator/modules/calc"
	"github.com/gofiber/fiber/v2"
)

// setupRoutes configures all HTTP routes.
func (m *APIModule) setupRoutes(app *fiber.App) {
	app.Get("/health", m.healthHandler)

	api := app.Group("/api/v1")
	api.Post("/compute", m.computeJSON)
	api.Get("/compute", m.computeQuery)
	api.Post("/compute/batch", m.computeBatch)
	api.Get("/stats", m.getStats)
}

// healthHandler handles GET /health.
func (m *APIModule) healthHandler(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "healthy",
		Details: map[string]any{
			"module": "api",
			"port":   m.config.Port,
		},
	})
}

// computeJSON handles POST /api/v1/compute.
func (m *APIModule) computeJSON(c *fiber.Ctx) error {
	var req calc.ComputeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	return m.compute(c, &req)
}

// computeQuery handles GET /api/v1/compute?multiplier=&base=&exponent=&method=.
// An absent parameter is passed on as null.
func (m *APIModule) computeQuery(c *fiber.Ctx) error {
	req := calc.ComputeRequest{
		Multiplier: queryText(c, "multiplier"),
		Base:       queryText(c, "base"),
		Exponent:   queryText(c, "exponent"),
		Method:     c.Query("method"),
	}
	return m.compute(c, &req)
}

func (m *APIModule) compute(c *fiber.Ctx, req *calc.ComputeRequest) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), m.config.ServiceTimeout)
	defer cancel()

	resp, err := m.calcPort.Compute(ctx, req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "compute_failed",
			Message: err.Error(),
		})
	}
	return c.Status(statusFor(resp)).JSON(resp)
}

// computeBatch handles POST /api/v1/compute/batch.
func (m *APIModule) computeBatch(c *fiber.Ctx) error {
	var req calc.BatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}
	if len(req.Items) > calc.MaxBatchSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(ErrorResponse{
			Error:   "batch_too_large",
			Message: "Batch exceeds the maximum number of items",
		})
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), m.config.ServiceTimeout)
	defer cancel()

	resp, err := m.calcPort.ComputeBatch(ctx, &req)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "compute_failed",
			Message: err.Error(),
		})
	}
	if resp.Error != "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "invalid_request",
			Message: resp.Error,
		})
	}
	return c.JSON(resp)
}

// getStats handles GET /api/v1/stats.
func (m *APIModule) getStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), m.config.ServiceTimeout)
	defer cancel()

	summary, err := m.statsPort.Summary(ctx)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(ErrorResponse{
			Error:   "stats_failed",
			Message: err.Error(),
		})
	}
	return c.JSON(summary)
}

// statusFor maps a compute response to an HTTP status.
func statusFor(resp *calc.ComputeResponse) int {
	switch {
	case resp.Succeeded():
		return fiber.StatusOK
	case resp.Code == "unknown_method":
		return fiber.StatusBadRequest
	case resp.Code == "internal":
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusUnprocessableEntity
	}
}

func queryText(c *fiber.Ctx, key string) *string {
	if !c.Context().QueryArgs().Has(key) {
		return nil
	}
	return calc.Text(c.Query(key))
}
