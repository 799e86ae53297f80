// internal/store/sqlite.go
//
// SQLite-backed implementation of the Gateway interface. Records are stored
// as JSON blobs in key-value tables (round_state, lifetime_stats) so the
// schema stays out of the engine's way. Rows that fail to unmarshal are
// reported as ErrNotFound: a corrupt record means "start fresh", not a
// broken server.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ItzRainUwU/RimuWordle/internal/stats"
)

type sqliteGateway struct {
	db *sql.DB
}

// NewSQLite constructs a Gateway over an open SQLite handle. The
// round_state and lifetime_stats tables are created by the migrations in
// the sql directory.
func NewSQLite(db *sql.DB) Gateway {
	return &sqliteGateway{db: db}
}

func (g *sqliteGateway) LoadRound(ctx context.Context, owner string) (*RoundRecord, error) {
	var raw string
	err := g.db.QueryRowContext(ctx,
		`SELECT data FROM round_state WHERE owner=?`, owner).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec RoundRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("malformed round record, treating as absent")
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (g *sqliteGateway) SaveRound(ctx context.Context, owner string, rec RoundRecord) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = g.db.ExecContext(ctx, `
        INSERT INTO round_state (owner, data, updated_at) VALUES (?,?,?)
        ON CONFLICT(owner) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`,
		owner, string(raw), now())
	return err
}

func (g *sqliteGateway) LoadStats(ctx context.Context, owner string) (*stats.Lifetime, error) {
	var raw string
	err := g.db.QueryRowContext(ctx,
		`SELECT data FROM lifetime_stats WHERE owner=?`, owner).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var s stats.Lifetime
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		log.Warn().Err(err).Str("owner", owner).Msg("malformed stats record, treating as absent")
		return nil, ErrNotFound
	}
	return &s, nil
}

func (g *sqliteGateway) SaveStats(ctx context.Context, owner string, s stats.Lifetime) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	_, err = g.db.ExecContext(ctx, `
        INSERT INTO lifetime_stats (owner, data, updated_at) VALUES (?,?,?)
        ON CONFLICT(owner) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`,
		owner, string(raw), now())
	return err
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }
