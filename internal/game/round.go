// internal/game/round.go
//
// Round lifecycle and turn progression.
// Responsibilities:
//   - Create new rounds (random answer unless one is supplied).
//   - Validate and apply guesses (terminal gate, length, allowed list,
//     hard-mode constraints), scoring via the two-pass engine.
//   - Track state transitions: playing → won/lost. A terminal round never
//     mutates again; starting a new Round is the only way forward.

package game

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/ItzRainUwU/RimuWordle/internal/words"
)

// NewRound constructs a fresh round.
// If withAnswer is empty, a random answer is chosen from the words package.
func NewRound(withAnswer string) *Round {
	ans := withAnswer
	if ans == "" {
		ans = words.RandomAnswer()
	}
	return &Round{
		ID:      randomID(),
		Secret:  strings.ToLower(ans),
		History: []string{},
	}
}

// Submit validates and scores a guess, mutating the round on acceptance.
// hardMode applies the previous guess's constraints per CheckHardMode.
//
// Rejections (round state untouched):
//   - ErrRoundOver if the round is already terminal.
//   - ErrMalformed if the input is not exactly WordLen letters a–z.
//   - ErrUnknownWord if the word is not in the allowed list.
//   - *HardModeViolation if hard mode is on and a constraint is broken.
//
// On acceptance the guess is appended to History and the verdict returned.
// The round becomes Won the instant the guess equals the secret, Lost when
// the guess limit is reached without a win.
func (r *Round) Submit(raw string, hardMode bool) (Verdict, error) {
	if r.Terminal {
		return nil, ErrRoundOver
	}
	guess := strings.ToLower(strings.TrimSpace(raw))
	if len(guess) != WordLen || !isAlpha(guess) {
		return nil, ErrMalformed
	}
	if !words.IsAllowed(guess) {
		return nil, ErrUnknownWord
	}
	if hardMode && len(r.History) > 0 {
		prev := r.History[len(r.History)-1]
		if err := CheckHardMode(guess, prev, Score(prev, r.Secret)); err != nil {
			return nil, err
		}
	}

	v := Score(guess, r.Secret)
	r.History = append(r.History, guess)

	if v.AllCorrect() {
		r.Terminal, r.Won = true, true
	} else if len(r.History) >= MaxGuesses {
		r.Terminal = true
	}
	return v, nil
}

// State reports a coarse string representation of the current round state.
func (r *Round) State() string {
	if r.Terminal {
		if r.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Verdicts rescores the recorded history. Scoring is deterministic, so a
// resumed round reproduces the exact feedback shown before the reload
// without persisting verdicts alongside guesses.
func (r *Round) Verdicts() []Verdict {
	out := make([]Verdict, len(r.History))
	for i, g := range r.History {
		out[i] = Score(g, r.Secret)
	}
	return out
}

// randomID returns a compact 16-hex-char identifier.
// Collisions are extremely unlikely given crypto/rand entropy.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
