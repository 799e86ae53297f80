// internal/game/types.go
//
// Core type definitions for the guess-evaluation engine.
// Defines:
//   - Tag: per-letter result of a guess (correct/present/absent).
//   - Verdict: ordered per-position tags for one scored guess.
//   - Round: state for a single in-progress or finished round.

package game

// Tag represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at this exact position.
//   - "present": letter exists in the answer but in a different position.
//   - "absent":  letter does not exist in the answer (or all copies used).
type Tag string

const (
	TagCorrect Tag = "correct"
	TagPresent Tag = "present"
	TagAbsent  Tag = "absent"
)

// Verdict is the per-position tag sequence for one guess, aligned
// index-for-index with the guess it was scored from. Immutable once
// produced by Score.
type Verdict []Tag

// AllCorrect reports whether every position was tagged correct.
func (v Verdict) AllCorrect() bool {
	for _, t := range v {
		if t != TagCorrect {
			return false
		}
	}
	return len(v) > 0
}

const (
	// WordLen is the fixed word length for both secrets and guesses.
	WordLen = 5
	// MaxGuesses is the guess limit before a round is lost.
	MaxGuesses = 6
)

// Round holds the state of one playthrough. The secret is chosen once at
// creation and never changes; History is append-only while the round is
// active and frozen once Terminal is set.
type Round struct {
	ID       string   // Compact identifier for correlating server state.
	Secret   string   // The answer word (always lowercase).
	History  []string // Guesses submitted so far, in submission order.
	Terminal bool     // True once the round is over (won or lost).
	Won      bool     // True if the round finished with a win.
}
