package stats

import (
	"maps"
	"sync"

	"github.com/example/power-calculator/events"
)

// Store aggregates ComputationCompleted events in memory.
type Store struct {
	mu      sync.RWMutex
	summary Summary
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		summary: Summary{
			ByCode:   make(map[string]int64),
			ByMethod: make(map[string]int64),
			ByField:  make(map[string]int64),
		},
	}
}

// Record adds one completed computation.
func (s *Store) Record(event events.ComputationCompletedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.summary.Total++
	if event.Method != "" {
		s.summary.ByMethod[event.Method]++
	}
	if event.Succeeded {
		s.summary.Succeeded++
		if !event.Finite {
			s.summary.NonFinite++
		}
	} else {
		s.summary.Failed++
		s.summary.ByCode[event.Code]++
		if event.Field != "" {
			s.summary.ByField[event.Field]++
		}
	}
	if last := s.summary.LastUpdated; last == nil || event.CompletedAt.After(*last) {
		completed := event.CompletedAt
		s.summary.LastUpdated = &completed
	}
}

// Summary returns a copy of the current counters.
func (s *Store) Summary() Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.summary
	out.ByCode = maps.Clone(s.summary.ByCode)
	out.ByMethod = maps.Clone(s.summary.ByMethod)
	out.ByField = maps.Clone(s.summary.ByField)
	if s.summary.LastUpdated != nil {
		last := *s.summary.LastUpdated
		out.LastUpdated = &last
	}
	return out
}
