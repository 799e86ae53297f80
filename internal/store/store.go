// internal/store/store.go
//
// Persistence gateway for round state and lifetime statistics.
// Two logical records per owner, key-value style:
//   - round record:  { secret, history, terminal }
//   - stats record:  lifetime counters
//
// Absence of either record is a valid state (no active round / zeroed
// stats) and is reported as ErrNotFound, never invented. Malformed stored
// data is likewise reported as ErrNotFound so callers treat it as absent
// rather than failing.

package store

import (
	"context"
	"errors"

	"github.com/ItzRainUwU/RimuWordle/internal/stats"
)

// ErrNotFound signals that a record is absent (or unreadable, which is
// treated the same way).
var ErrNotFound = errors.New("store: not found")

// RoundRecord is the persisted shape of an in-progress or finished round.
type RoundRecord struct {
	Secret   string   `json:"secret"`
	History  []string `json:"history"`
	Terminal bool     `json:"terminal"`
}

// Gateway defines the persistence interface for game state.
// Implementations may be backed by memory (this package), SQLite, etc.
type Gateway interface {
	// LoadRound retrieves the owner's round record, ErrNotFound if absent.
	LoadRound(ctx context.Context, owner string) (*RoundRecord, error)
	// SaveRound persists or replaces the owner's round record.
	SaveRound(ctx context.Context, owner string, rec RoundRecord) error
	// LoadStats retrieves the owner's lifetime stats, ErrNotFound if absent.
	LoadStats(ctx context.Context, owner string) (*stats.Lifetime, error)
	// SaveStats persists or replaces the owner's lifetime stats.
	SaveStats(ctx context.Context, owner string, s stats.Lifetime) error
}
