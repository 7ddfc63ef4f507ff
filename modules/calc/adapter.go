package calc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// calcAdapter wraps ServiceContainer for type-safe cross-module communication.
type calcAdapter struct {
	container mono.ServiceContainer
}

// NewCalcAdapter creates a CalcPort backed by the calc module's services.
// container is the ServiceContainer received via SetDependencyServiceContainer.
func NewCalcAdapter(container mono.ServiceContainer) CalcPort {
	if container == nil {
		panic("calc adapter requires non-nil ServiceContainer")
	}
	return &calcAdapter{container: container}
}

// Compute evaluates one request via the compute service.
func (a *calcAdapter) Compute(ctx context.Context, req *ComputeRequest) (*ComputeResponse, error) {
	var resp ComputeResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"compute",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("compute service call failed: %w", err)
	}
	return &resp, nil
}

// ComputeBatch evaluates several requests via the compute-batch service.
func (a *calcAdapter) ComputeBatch(ctx context.Context, req *BatchRequest) (*BatchResponse, error) {
	var resp BatchResponse
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		"compute-batch",
		json.Marshal,
		json.Unmarshal,
		req,
		&resp,
	); err != nil {
		return nil, fmt.Errorf("compute-batch service call failed: %w", err)
	}
	return &resp, nil
}
