// Package progression tracks a user's level, experience, and streaks, and
// owns every level transition.
package progression

// Progress is the per-user progression record. The store owns the persisted
// copy; the tracker computes updated values and the caller writes them back
// in a single atomic update.
type Progress struct {
	Level          int
	XP             int
	TotalAttempted int
	TotalCorrect   int
	CurrentStreak  int
	BestStreak     int
}

// NewProgress returns a fresh level-1 record.
func NewProgress() Progress {
	return Progress{Level: 1}
}

// Accuracy returns the correct-answer percentage, 0 when nothing was
// attempted yet.
func (p Progress) Accuracy() float64 {
	if p.TotalAttempted == 0 {
		return 0
	}
	return float64(p.TotalCorrect) / float64(p.TotalAttempted) * 100
}

// ApplyResult folds one graded submission into the record and returns the
// updated copy. All counters move together; the caller persists the result
// as one write so a partial update can never be observed.
func ApplyResult(p Progress, passed bool, xpEarned int) Progress {
	p.TotalAttempted++
	p.XP += xpEarned
	if passed {
		p.TotalCorrect++
		p.CurrentStreak++
		if p.CurrentStreak > p.BestStreak {
			p.BestStreak = p.CurrentStreak
		}
	} else {
		p.CurrentStreak = 0
	}
	return p
}
