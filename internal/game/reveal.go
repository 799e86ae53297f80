// internal/game/reveal.go
//
// Staged tile-reveal schedule. The verdict itself is authoritative and
// computed instantly by Score; a RevealStep sequence is a cosmetic replay
// of that already-decided verdict for presentation layers that animate
// tiles one by one. Nothing here feeds back into round state.

package game

import "time"

// RevealStep describes one tile flip: which position, what tag, and when
// to flip relative to the start of the reveal (milliseconds, so the value
// survives JSON untouched).
type RevealStep struct {
	Index   int   `json:"index"`
	Tag     Tag   `json:"tag"`
	DelayMs int64 `json:"delayMs"`
}

// DefaultRevealInterval matches the classic staggered flip cadence.
const DefaultRevealInterval = 200 * time.Millisecond

// RevealPlan expands a verdict into an ordered per-tile schedule, one step
// per position, each delayed interval longer than the previous. A zero or
// negative interval falls back to DefaultRevealInterval.
func RevealPlan(v Verdict, interval time.Duration) []RevealStep {
	if interval <= 0 {
		interval = DefaultRevealInterval
	}
	steps := make([]RevealStep, len(v))
	for i, t := range v {
		steps[i] = RevealStep{Index: i, Tag: t, DelayMs: (time.Duration(i) * interval).Milliseconds()}
	}
	return steps
}
