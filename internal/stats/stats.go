// internal/stats/stats.go
//
// Lifetime statistics aggregation. Updated exactly once per round, at the
// moment the round turns terminal. Persistence is the caller's concern;
// this package only maintains the counters.

package stats

// Lifetime holds the cross-round counters persisted between sessions.
type Lifetime struct {
	Played        int    `json:"played"`
	Wins          int    `json:"wins"`
	CurrentStreak int    `json:"currentStreak"`
	MaxStreak     int    `json:"maxStreak"`
	Distribution  [6]int `json:"distribution"` // wins indexed by guesses used - 1
}

// Record folds one completed round into the counters. guessesUsed is the
// number of guesses the round took; it only matters on a win, where it
// selects the distribution bucket. A loss zeroes the current streak and
// leaves the max streak alone.
func (l *Lifetime) Record(won bool, guessesUsed int) {
	l.Played++
	if !won {
		l.CurrentStreak = 0
		return
	}
	l.Wins++
	l.CurrentStreak++
	if l.CurrentStreak > l.MaxStreak {
		l.MaxStreak = l.CurrentStreak
	}
	if guessesUsed >= 1 && guessesUsed <= len(l.Distribution) {
		l.Distribution[guessesUsed-1]++
	}
}

// WinRate returns wins/played as a 0-100 percentage, 0 when nothing played.
func (l *Lifetime) WinRate() int {
	if l.Played == 0 {
		return 0
	}
	return int(float64(l.Wins)/float64(l.Played)*100 + 0.5)
}
