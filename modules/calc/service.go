package calc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/example/power-calculator/domain/power"
	"github.com/example/power-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// errBatchTooLarge is reported in the response, not as a Go error.
var errBatchTooLarge = fmt.Errorf("batch exceeds %d items", MaxBatchSize)

// compute handles the calc.compute service request.
func (m *CalcModule) compute(_ context.Context, req ComputeRequest, _ *mono.Msg) (ComputeResponse, error) {
	return m.evaluate(req), nil // Failures travel in the response
}

// computeBatch handles the calc.compute-batch service request.
func (m *CalcModule) computeBatch(ctx context.Context, req BatchRequest, _ *mono.Msg) (BatchResponse, error) {
	if len(req.Items) > MaxBatchSize {
		return BatchResponse{Error: errBatchTooLarge.Error()}, nil
	}

	results := make([]ComputeResponse, len(req.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.config.BatchWorkers)
	for i := range req.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = m.evaluate(req.Items[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BatchResponse{}, fmt.Errorf("batch interrupted: %w", err)
	}

	resp := BatchResponse{Results: results}
	for i := range results {
		if results[i].Succeeded() {
			resp.Succeeded++
		} else {
			resp.Failed++
		}
	}
	return resp, nil
}

// evaluate runs one computation and publishes its completion.
func (m *CalcModule) evaluate(req ComputeRequest) ComputeResponse {
	resp := ComputeResponse{ID: uuid.NewString()}

	method, err := m.resolveMethod(req.Method)
	if err != nil {
		resp.Method = req.Method
		m.fail(&resp, err)
		m.publish(&resp, false)
		return resp
	}
	resp.Method = string(method)

	value, err := power.ComputeWith(method, deref(req.Multiplier), deref(req.Base), deref(req.Exponent))
	outcome := power.NewOutcome(value, err)
	resp.Display = outcome.String()
	if err != nil {
		m.fail(&resp, err)
		m.publish(&resp, false)
		return resp
	}

	finite := !math.IsInf(value, 0) && !math.IsNaN(value)
	if finite {
		resp.Result = &value
	}
	m.publish(&resp, finite)
	return resp
}

func (m *CalcModule) resolveMethod(name string) (power.Method, error) {
	if name == "" {
		return m.config.DefaultMethod, nil
	}
	return power.ParseMethod(name)
}

func (m *CalcModule) fail(resp *ComputeResponse, err error) {
	resp.Error = power.Message(err)
	resp.Code = power.Code(err)
	resp.Display = "Error: " + resp.Error

	var verr *power.ValidationError
	if errors.As(err, &verr) {
		resp.Field = string(verr.Role)
	}
	if resp.Code == "internal" {
		m.logger.Error("Computation failed unexpectedly", "id", resp.ID, "error", err)
	}
}

// publish emits ComputationCompleted. Publishing is best-effort.
func (m *CalcModule) publish(resp *ComputeResponse, finite bool) {
	if m.eventBus == nil {
		return
	}
	event := events.ComputationCompletedEvent{
		ID:          resp.ID,
		Method:      resp.Method,
		Succeeded:   resp.Succeeded(),
		Code:        resp.Code,
		Field:       resp.Field,
		Finite:      finite,
		CompletedAt: time.Now(),
	}
	if err := events.ComputationCompletedV1.Publish(m.eventBus, event, nil); err != nil {
		m.logger.Warn("Failed to publish ComputationCompleted event", "id", resp.ID, "error", err)
	}
}
