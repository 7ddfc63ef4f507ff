package calc

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/example/power-calculator/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventBus records published messages and can fail every publish.
type fakeEventBus struct {
	mu         sync.Mutex
	msgs       []*types.Msg
	publishErr error
}

func (b *fakeEventBus) Publish(subject string, data []byte) error {
	return b.PublishMsg(&types.Msg{Subject: subject, Data: data})
}

func (b *fakeEventBus) PublishMsg(msg *types.Msg) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.publishErr != nil {
		return b.publishErr
	}
	b.msgs = append(b.msgs, msg)
	return nil
}

func (b *fakeEventBus) Request(_ string, _ []byte, _ time.Duration) (*types.Msg, error) {
	return nil, nil
}

func (b *fakeEventBus) RequestWithContext(_ context.Context, _ string, _ []byte) (*types.Msg, error) {
	return nil, nil
}

func (b *fakeEventBus) RequestMsgWithContext(_ context.Context, _ *types.Msg) (*types.Msg, error) {
	return nil, nil
}

func (b *fakeEventBus) Subscribe(_ string, _ types.MsgHandler) (types.Subscription, error) {
	return nil, nil
}

func (b *fakeEventBus) SubscribeSync(_ string) (types.Subscription, error) {
	return nil, nil
}

func (b *fakeEventBus) QueueSubscribe(_ string, _ string, _ types.MsgHandler) (types.Subscription, error) {
	return nil, nil
}

func (b *fakeEventBus) QueueSubscribeSync(_ string, _ string) (types.Subscription, error) {
	return nil, nil
}

func (b *fakeEventBus) ChanSubscribe(_ string, _ chan *types.Msg) (types.Subscription, error) {
	return nil, nil
}

func (b *fakeEventBus) EventStream() (types.EventStream, error) { return nil, nil }

func (b *fakeEventBus) SetRuntimeContext(_ context.Context) {}

var _ mono.EventBus = (*fakeEventBus)(nil)

// events decodes every recorded message as a ComputationCompletedEvent.
func (b *fakeEventBus) events(t *testing.T) []events.ComputationCompletedEvent {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]events.ComputationCompletedEvent, 0, len(b.msgs))
	for _, msg := range b.msgs {
		assert.Equal(t, "events.calc.v1.computation-completed", msg.Subject)
		var ev events.ComputationCompletedEvent
		require.NoError(t, json.Unmarshal(msg.Data, &ev))
		out = append(out, ev)
	}
	return out
}

// warnLogger implements types.Logger and counts warnings.
type warnLogger struct {
	mockLogger
	mu    sync.Mutex
	warns int
}

func (l *warnLogger) Warn(msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns++
}

func TestCompute_PublishesCompletionEvent(t *testing.T) {
	tests := []struct {
		name      string
		req       ComputeRequest
		wantEvent events.ComputationCompletedEvent
	}{
		{
			name: "success",
			req:  ComputeRequest{Multiplier: Text("2"), Base: Text("3"), Exponent: Text("4")},
			wantEvent: events.ComputationCompletedEvent{
				Method: "native", Succeeded: true, Finite: true,
			},
		},
		{
			name: "validation failure",
			req:  ComputeRequest{Multiplier: Text("2"), Base: Text("abc"), Exponent: Text("4")},
			wantEvent: events.ComputationCompletedEvent{
				Method: "native", Code: "invalid_format", Field: "base",
			},
		},
		{
			name: "non-positive base",
			req:  ComputeRequest{Multiplier: Text("2"), Base: Text("0"), Exponent: Text("4"), Method: "series"},
			wantEvent: events.ComputationCompletedEvent{
				Method: "series", Code: "non_positive_base",
			},
		},
		{
			name: "overflow",
			req:  ComputeRequest{Multiplier: Text("1"), Base: Text("10"), Exponent: Text("400")},
			wantEvent: events.ComputationCompletedEvent{
				Method: "native", Succeeded: true, Finite: false,
			},
		},
		{
			name: "unknown method",
			req:  ComputeRequest{Multiplier: Text("1"), Base: Text("2"), Exponent: Text("3"), Method: "cubic"},
			wantEvent: events.ComputationCompletedEvent{
				Method: "cubic", Code: "unknown_method",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := &fakeEventBus{}
			m := NewModule(&mockLogger{})
			m.SetEventBus(bus)

			resp, err := m.compute(context.Background(), tt.req, nil)
			require.NoError(t, err)

			got := bus.events(t)
			require.Len(t, got, 1)
			ev := got[0]

			assert.Equal(t, resp.ID, ev.ID)
			assert.False(t, ev.CompletedAt.IsZero())
			assert.Equal(t, tt.wantEvent.Method, ev.Method)
			assert.Equal(t, tt.wantEvent.Succeeded, ev.Succeeded)
			assert.Equal(t, tt.wantEvent.Code, ev.Code)
			assert.Equal(t, tt.wantEvent.Field, ev.Field)
			assert.Equal(t, tt.wantEvent.Finite, ev.Finite)
		})
	}
}

func TestCompute_PublishFailureIsLoggedNotReturned(t *testing.T) {
	bus := &fakeEventBus{publishErr: errors.New("nats: connection closed")}
	logger := &warnLogger{}
	m := NewModule(logger)
	m.SetEventBus(bus)

	resp, err := m.compute(context.Background(), ComputeRequest{
		Multiplier: Text("2"), Base: Text("3"), Exponent: Text("4"),
	}, nil)
	require.NoError(t, err)

	assert.True(t, resp.Succeeded())
	require.NotNil(t, resp.Result)
	assert.Equal(t, 162.0, *resp.Result)
	assert.Equal(t, "Result: 162.0", resp.Display)
	assert.Equal(t, 1, logger.warns)
}

func TestComputeBatch_PublishesOneEventPerItem(t *testing.T) {
	bus := &fakeEventBus{}
	m := NewModule(&mockLogger{}, WithBatchWorkers(2))
	m.SetEventBus(bus)

	resp, err := m.computeBatch(context.Background(), BatchRequest{Items: []ComputeRequest{
		{Multiplier: Text("1"), Base: Text("2"), Exponent: Text("3")},
		{Multiplier: Text("1"), Base: Text("-2"), Exponent: Text("3")},
		{Multiplier: Text(""), Base: Text("2"), Exponent: Text("3")},
	}}, nil)
	require.NoError(t, err)
	require.Len(t, resp.Results, 3)

	got := bus.events(t)
	require.Len(t, got, 3)

	byID := make(map[string]events.ComputationCompletedEvent, len(got))
	for _, ev := range got {
		byID[ev.ID] = ev
	}
	for _, r := range resp.Results {
		ev, ok := byID[r.ID]
		require.True(t, ok, "no event for %s", r.ID)
		assert.Equal(t, r.Succeeded(), ev.Succeeded)
		assert.Equal(t, r.Code, ev.Code)
	}
}

func TestModule_EmitEvents(t *testing.T) {
	m := NewModule(&mockLogger{})
	defs := m.EmitEvents()
	require.Len(t, defs, 1)
	assert.Equal(t, "events.calc.v1.computation-completed", defs[0].Subject)
}
