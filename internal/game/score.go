// internal/game/score.go
//
// Two-pass Wordle scoring.
// Pure function: no state, no I/O, deterministic, total over any pair of
// equal-length lowercase strings (not restricted to dictionary words).

package game

// Score evaluates guess against target and returns the per-letter verdict.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count remaining (non-correct) target letters by letter index.
//
// Pass 2:
//   - For each non-correct guess letter: if there is remaining count for that
//     letter, mark present and decrement the count; otherwise mark absent.
//
// The consume-on-match accounting is what keeps repeated letters honest:
// guess "speed" vs target "erase" yields exactly one present 'e', the
// second 'e' falls through to absent.
func Score(guess, target string) Verdict {
	n := len(guess)
	v := make(Verdict, n)
	guessRunes := []rune(guess)
	targetRunes := []rune(target)

	// Letter frequency for the non-correct positions (a–z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guessRunes[i] == targetRunes[i] {
			v[i] = TagCorrect
		} else if j := idx(targetRunes[i]); j >= 0 && j < 26 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if v[i] == TagCorrect {
			continue
		}
		j := idx(guessRunes[i])
		if j >= 0 && j < 26 && counts[j] > 0 {
			v[i] = TagPresent
			counts[j]--
		} else {
			v[i] = TagAbsent
		}
	}
	return v
}

// idx maps a lowercase ASCII letter rune to 0..25.
// Assumes inputs are validated to a–z elsewhere.
func idx(r rune) int { return int(r - 'a') }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
