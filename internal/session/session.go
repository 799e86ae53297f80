// internal/session/session.go
//
// Presentation-facing game facade. A Session owns one player's active
// Round, the hard-mode flag, and their lifetime stats, and talks to the
// persistence gateway on every state-affecting operation.
//
// Responsibilities:
//   - NewRound / Resume lifecycle, including the resume policy: only a
//     non-terminal persisted round is adopted; a finished round always
//     starts fresh.
//   - SubmitGuess: full validation chain, scoring, persistence, terminal
//     detection, stats aggregation, completion notifications.
//   - Storage degradation: if the gateway fails, the session keeps playing
//     in memory and logs the failure; gameplay is never aborted.
//
// Completion subscribers are a decoupled observer hook: the leaderboard
// submission registers here, so the core has zero dependency on network
// success or failure.

package session

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ItzRainUwU/RimuWordle/internal/game"
	"github.com/ItzRainUwU/RimuWordle/internal/stats"
	"github.com/ItzRainUwU/RimuWordle/internal/store"
)

// Result describes a completed round, handed to completion subscribers.
type Result struct {
	Won         bool
	GuessesUsed int
	Secret      string
}

// Subscriber receives round-completed notifications. Subscribers must not
// block; anything slow (network submission) belongs in a goroutine on the
// subscriber's side.
type Subscriber func(Result)

// State is the snapshot handed to the presentation layer. The secret is
// only disclosed once the round is terminal.
type State struct {
	RoundID  string         `json:"roundId"`
	History  []string       `json:"history"`
	Verdicts []game.Verdict `json:"verdicts"`
	Terminal bool           `json:"terminal"`
	Won      bool           `json:"won"`
	Secret   string         `json:"secret,omitempty"`
	HardMode bool           `json:"hardMode"`
}

// Session is one player's engine instance. Safe for concurrent use; all
// operations run to completion under the lock, so a turn is atomic.
type Session struct {
	mu    sync.Mutex
	owner string
	gw    store.Gateway

	round    *game.Round
	hardMode bool
	life     stats.Lifetime
	subs     []Subscriber
	degraded bool // a gateway call has failed; state may not survive reload
}

// New constructs a Session for owner over the given gateway. Call Resume
// (or NewRound) before submitting guesses.
func New(owner string, gw store.Gateway) *Session {
	return &Session{owner: owner, gw: gw}
}

// OnRoundComplete registers a completion subscriber.
func (s *Session) OnRoundComplete(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Resume loads persisted state. A non-terminal round record is adopted
// as-is (same secret, same history, no new random draw); anything else
// (absent, malformed, or already finished) starts a fresh round. Lifetime
// stats are loaded regardless, defaulting to zeroes when absent.
func (s *Session) Resume(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ls, err := s.gw.LoadStats(ctx, s.owner); err == nil {
		s.life = *ls
	} else if !errors.Is(err, store.ErrNotFound) {
		s.noteDegraded("load stats", err)
	}

	rec, err := s.gw.LoadRound(ctx, s.owner)
	if err == nil && recordResumable(rec) {
		r := game.NewRound(rec.Secret)
		r.History = append([]string(nil), rec.History...)
		s.round = r
		return
	}
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		s.noteDegraded("load round", err)
	}
	s.startRoundLocked(ctx)
}

// NewRound starts a fresh round when forced or when none is held, drawing
// a uniformly random secret and persisting immediately.
func (s *Session) NewRound(ctx context.Context, forceNew bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if forceNew || s.round == nil {
		s.startRoundLocked(ctx)
	}
}

func (s *Session) startRoundLocked(ctx context.Context) {
	s.round = game.NewRound("")
	s.persistRoundLocked(ctx)
}

// SubmitGuess runs one turn: validate, score, persist, and on a terminal
// transition fold the result into lifetime stats and notify subscribers,
// all before returning. Validation failures reject the guess with no state
// change; the error is the user-facing reason.
func (s *Session) SubmitGuess(ctx context.Context, raw string) (game.Verdict, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.round == nil {
		s.startRoundLocked(ctx)
	}
	v, err := s.round.Submit(raw, s.hardMode)
	if err != nil {
		return nil, s.round.State(), err
	}
	s.persistRoundLocked(ctx)

	if s.round.Terminal {
		s.life.Record(s.round.Won, len(s.round.History))
		if err := s.gw.SaveStats(ctx, s.owner, s.life); err != nil {
			s.noteDegraded("save stats", err)
		}
		res := Result{Won: s.round.Won, GuessesUsed: len(s.round.History), Secret: s.round.Secret}
		for _, fn := range s.subs {
			fn(res)
		}
	}
	return v, s.round.State(), nil
}

// SetHardMode toggles hard mode. Enabling is only legal before the first
// guess of the current round; a mid-round attempt is rejected and the
// toggle left unchanged. Disabling is always allowed.
func (s *Session) SetHardMode(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if enabled && s.round != nil && !s.round.Terminal && len(s.round.History) > 0 {
		return &game.HardModeViolation{
			Kind: game.ViolationEnableMidRound,
			Msg:  "Hard mode can only be enabled at the start of a round",
		}
	}
	s.hardMode = enabled
	return nil
}

// HardMode reports the current toggle.
func (s *Session) HardMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hardMode
}

// CurrentState snapshots the active round for rendering.
func (s *Session) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{HardMode: s.hardMode}
	if s.round == nil {
		return st
	}
	st.RoundID = s.round.ID
	st.History = append([]string(nil), s.round.History...)
	st.Verdicts = s.round.Verdicts()
	st.Terminal = s.round.Terminal
	st.Won = s.round.Won
	if s.round.Terminal {
		st.Secret = s.round.Secret
	}
	return st
}

// Stats returns a copy of the lifetime counters.
func (s *Session) Stats() stats.Lifetime {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.life
}

// Degraded reports whether a gateway call has failed this session.
func (s *Session) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

func (s *Session) persistRoundLocked(ctx context.Context) {
	rec := store.RoundRecord{
		Secret:   s.round.Secret,
		History:  append([]string(nil), s.round.History...),
		Terminal: s.round.Terminal,
	}
	if err := s.gw.SaveRound(ctx, s.owner, rec); err != nil {
		s.noteDegraded("save round", err)
	}
}

// noteDegraded records a storage failure. Deliberately non-fatal: the
// session keeps its in-memory state and retries on the next write.
func (s *Session) noteDegraded(op string, err error) {
	if !s.degraded {
		log.Warn().Err(err).Str("owner", s.owner).Str("op", op).
			Msg("storage unavailable, continuing in memory")
	}
	s.degraded = true
}

// recordResumable decides whether a loaded round record can be adopted:
// it must be non-terminal and structurally sane. Anything else starts a
// fresh round.
func recordResumable(rec *store.RoundRecord) bool {
	if rec == nil || rec.Terminal {
		return false
	}
	if len(rec.Secret) != game.WordLen {
		return false
	}
	if len(rec.History) >= game.MaxGuesses {
		return false
	}
	for _, g := range rec.History {
		if len(g) != game.WordLen {
			return false
		}
		if g == rec.Secret {
			// A history containing the secret contradicts terminal=false.
			return false
		}
	}
	return true
}
