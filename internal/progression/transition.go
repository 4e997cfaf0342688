package progression

import "fmt"

// Trigger names the two independent ways a level can change. Both funnel
// through ApplyLevelTransition so the invariants (monotonic level, no level
// skipping, no promotion past the table) live in exactly one place.
type Trigger string

const (
	// ContinuousPromotion fires when cumulative XP, accuracy, and attempt
	// count all clear the next level's thresholds.
	ContinuousPromotion Trigger = "continuous"

	// ExamPromotion fires when a promotion exam's pass ratio clears the bar;
	// it sets the level to the exam's target directly.
	ExamPromotion Trigger = "exam"
)

// ApplyLevelTransition moves p to target under the given trigger, returning
// the updated copy. It rejects demotions, level skipping, and targets off
// the table. ContinuousPromotion additionally re-checks the threshold row,
// so a caller can never talk a record past requirements it doesn't meet.
func ApplyLevelTransition(p Progress, trigger Trigger, target int) (Progress, error) {
	if target <= p.Level {
		return p, fmt.Errorf("progression: cannot move level %d -> %d (levels are monotonic)", p.Level, target)
	}
	if target != p.Level+1 {
		return p, fmt.Errorf("progression: cannot skip from level %d to %d", p.Level, target)
	}
	if _, ok := LevelRequirement(target); !ok {
		return p, fmt.Errorf("progression: level %d is not on the table", target)
	}

	switch trigger {
	case ContinuousPromotion:
		got, ok := EligibleForPromotion(p)
		if !ok || got != target {
			return p, fmt.Errorf("progression: thresholds for level %d not met", target)
		}
	case ExamPromotion:
		// The exam result is the authority; thresholds were checked when the
		// exam was offered.
	default:
		return p, fmt.Errorf("progression: unknown transition trigger %q", trigger)
	}

	p.Level = target
	return p, nil
}
