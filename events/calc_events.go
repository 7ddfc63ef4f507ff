package events

import (
	"time"

	"github.com/go-monolith/mono/pkg/helper"
)

// ComputationCompletedEvent is emitted after every computation, successful or not.
type ComputationCompletedEvent struct {
	ID          string    `json:"id"`
	Method      string    `json:"method"`
	Succeeded   bool      `json:"succeeded"`
	Code        string    `json:"code,omitempty"`
	Field       string    `json:"field,omitempty"`
	Finite      bool      `json:"finite"`
	CompletedAt time.Time `json:"completed_at"`
}

// ComputationCompletedV1 is the typed event definition for completed computations.
// Subject: events.calc.v1.computation-completed
var ComputationCompletedV1 = helper.EventDefinition[ComputationCompletedEvent](
	"calc", "ComputationCompleted", "v1",
)
