// internal/leaderboard/store.go
//
// SQLite-backed score store for the leaderboard service side. Ranked by
// fewest guesses, earliest submission breaking ties.

package leaderboard

import (
	"context"
	"database/sql"
	"time"
)

// DefaultLimit bounds the ranked list returned to clients.
const DefaultLimit = 8

// Store persists submitted scores.
type Store struct{ db *sql.DB }

// NewStore constructs a Store over an open database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Insert records one completed-game score.
func (s *Store) Insert(ctx context.Context, username string, guesses int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (username, guesses, created_at) VALUES (?,?,?)`,
		username, guesses, time.Now().UTC().Format(time.RFC3339))
	return err
}

// Top returns the best scores, fewest guesses first, oldest first on ties.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT username, guesses
        FROM scores
        ORDER BY guesses ASC, created_at ASC
        LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Username, &e.Guesses); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
