// internal/game/hardmode.go
//
// Hard-mode constraint checking. Each new guess must reuse every confirmed
// letter from the previous guess: greens stay pinned to their position,
// yellows must appear somewhere. Greens are checked first, left to right,
// and the first failure wins; yellows only run once every green passes.

package game

import (
	"fmt"
	"strings"
)

// CheckHardMode validates newGuess against the constraints implied by the
// previous guess and its verdict. Returns nil when satisfied, or a
// *HardModeViolation naming the first broken constraint. Inputs are
// lowercase; violation messages show letters uppercased for display.
func CheckHardMode(newGuess, prevGuess string, prevVerdict Verdict) error {
	for i, t := range prevVerdict {
		if t == TagCorrect && newGuess[i] != prevGuess[i] {
			return &HardModeViolation{
				Kind: ViolationWrongFixedLetter,
				Msg: fmt.Sprintf("%d%s letter must be %s",
					i+1, ordinal(i+1), strings.ToUpper(string(prevGuess[i]))),
			}
		}
	}
	for i, t := range prevVerdict {
		if t == TagPresent && !strings.ContainsRune(newGuess, rune(prevGuess[i])) {
			return &HardModeViolation{
				Kind: ViolationMissingRequiredLetter,
				Msg:  fmt.Sprintf("Guess must contain %s", strings.ToUpper(string(prevGuess[i]))),
			}
		}
	}
	return nil
}

// ordinal returns the English ordinal suffix for 1..9.
func ordinal(n int) string {
	switch n {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
