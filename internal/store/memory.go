// internal/store/memory.go
//
// In-memory implementation of the Gateway interface.
// Used for tests and as the degraded fallback when durable storage is
// unavailable: gameplay continues, state simply does not survive a restart.
//
// Characteristics:
//   - Records keyed by owner in plain maps.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - ErrNotFound for missing owners.

package store

import (
	"context"
	"sync"

	"github.com/ItzRainUwU/RimuWordle/internal/stats"
)

type memory struct {
	mu     sync.RWMutex
	rounds map[string]RoundRecord
	stats  map[string]stats.Lifetime
}

// NewMemory constructs a new in-memory Gateway.
func NewMemory() Gateway {
	return &memory{
		rounds: make(map[string]RoundRecord),
		stats:  make(map[string]stats.Lifetime),
	}
}

func (m *memory) LoadRound(ctx context.Context, owner string) (*RoundRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rec, ok := m.rounds[owner]; ok {
		cp := rec
		cp.History = append([]string(nil), rec.History...)
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *memory) SaveRound(ctx context.Context, owner string, rec RoundRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec.History = append([]string(nil), rec.History...)
	m.rounds[owner] = rec
	return nil
}

func (m *memory) LoadStats(ctx context.Context, owner string) (*stats.Lifetime, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.stats[owner]; ok {
		cp := s
		return &cp, nil
	}
	return nil, ErrNotFound
}

func (m *memory) SaveStats(ctx context.Context, owner string, s stats.Lifetime) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stats[owner] = s
	return nil
}
