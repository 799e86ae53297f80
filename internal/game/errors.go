// internal/game/errors.go
//
// Error taxonomy for guess submission. All of these reject a submission
// without mutating round state; none are fatal.

package game

import "errors"

var (
	// ErrRoundOver is returned when a guess is submitted to a finished round.
	ErrRoundOver = errors.New("round finished")
	// ErrMalformed is returned when the raw input is not exactly WordLen letters.
	ErrMalformed = errors.New("not enough letters")
	// ErrUnknownWord is returned when the guess is not in the allowed list.
	ErrUnknownWord = errors.New("not in word list")
)

// ViolationKind distinguishes the hard-mode failure modes.
type ViolationKind string

const (
	ViolationWrongFixedLetter      ViolationKind = "wrong-fixed-letter"
	ViolationMissingRequiredLetter ViolationKind = "missing-required-letter"
	ViolationEnableMidRound        ViolationKind = "enable-mid-round"
)

// HardModeViolation carries the user-facing reason a guess (or a toggle
// attempt) failed the hard-mode rules.
type HardModeViolation struct {
	Kind ViolationKind
	Msg  string
}

func (e *HardModeViolation) Error() string { return e.Msg }

// IsViolation reports whether err is a hard-mode violation and returns it.
func IsViolation(err error) (*HardModeViolation, bool) {
	var hv *HardModeViolation
	if errors.As(err, &hv) {
		return hv, true
	}
	return nil, false
}
