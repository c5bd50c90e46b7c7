package checkout

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sessions keeps in-flight flows keyed by order number, for the life of
// the process only. A flow serves a single browser tab, so the map is
// the only shared structure that needs guarding. Completed flows are
// deleted on payment success; abandoned ones are swept once they
// outlive the TTL, so the map cannot grow without bound.
type Sessions struct {
	mu    sync.Mutex
	ttl   time.Duration
	flows map[string]sessionEntry
}

type sessionEntry struct {
	flow      *Flow
	createdAt time.Time
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ttl:   ttl,
		flows: make(map[string]sessionEntry),
	}
}

func (s *Sessions) Put(orderNumber string, f *Flow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flows[orderNumber] = sessionEntry{flow: f, createdAt: time.Now()}
}

// Get returns the flow if it exists and has not outlived the TTL.
func (s *Sessions) Get(orderNumber string) (*Flow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.flows[orderNumber]
	if !ok {
		return nil, false
	}
	if time.Since(e.createdAt) > s.ttl {
		delete(s.flows, orderNumber)
		return nil, false
	}
	return e.flow, true
}

func (s *Sessions) Delete(orderNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.flows, orderNumber)
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.flows)
}

// Prune removes every flow older than the TTL and reports how many
// were dropped.
func (s *Sessions) Prune() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for orderNumber, e := range s.flows {
		if time.Since(e.createdAt) > s.ttl {
			delete(s.flows, orderNumber)
			pruned++
		}
	}
	return pruned
}

// Run sweeps abandoned flows until the context is cancelled.
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if pruned := s.Prune(); pruned > 0 {
				log.Printf("pruned %d abandoned checkout sessions", pruned)
			}
		}
	}
}
