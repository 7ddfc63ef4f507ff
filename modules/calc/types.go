package calc

import "context"

// MaxBatchSize bounds the number of items accepted by compute-batch.
const MaxBatchSize = 1000

// ComputeRequest is the request for one computation.
// A nil field is treated the same as an empty one.
type ComputeRequest struct {
	Multiplier *string `json:"multiplier"`
	Base       *string `json:"base"`
	Exponent   *string `json:"exponent"`
	Method     string  `json:"method,omitempty"`
}

// ComputeResponse is the response for one computation.
type ComputeResponse struct {
	ID      string   `json:"id"`
	Method  string   `json:"method"`
	Result  *float64 `json:"result,omitempty"` // nil on failure or when not finite
	Display string   `json:"display"`
	Error   string   `json:"error,omitempty"`
	Code    string   `json:"code,omitempty"`
	Field   string   `json:"field,omitempty"`
}

// Succeeded reports whether the computation produced a value.
func (r *ComputeResponse) Succeeded() bool {
	return r.Error == ""
}

// BatchRequest is the request for several independent computations.
type BatchRequest struct {
	Items []ComputeRequest `json:"items"`
}

// BatchResponse carries one response per request item, in request order.
type BatchResponse struct {
	Results   []ComputeResponse `json:"results"`
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Error     string            `json:"error,omitempty"`
}

// CalcPort is the contract driving adapters use to reach the calc module.
type CalcPort interface {
	Compute(ctx context.Context, req *ComputeRequest) (*ComputeResponse, error)
	ComputeBatch(ctx context.Context, req *BatchRequest) (*BatchResponse, error)
}

// Text returns a pointer to s, for building requests.
func Text(s string) *string {
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
