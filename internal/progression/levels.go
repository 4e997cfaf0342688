package progression

import "fmt"

// Requirement is one row of the level table: what it takes to hold a level.
type Requirement struct {
	Level       int
	RequiredXP  int
	MinAccuracy float64 // percent
	MinAttempts int
	Name        string
	Icon        string
}

// levelTable is the promotion ladder. Thresholds are monotonically
// non-decreasing; the top row has no successor, so no promotion past it.
var levelTable = []Requirement{
	{Level: 1, RequiredXP: 0, MinAccuracy: 60, MinAttempts: 10, Name: "AI Beginner", Icon: "🌱"},
	{Level: 2, RequiredXP: 500, MinAccuracy: 70, MinAttempts: 25, Name: "AI Explorer", Icon: "🔍"},
	{Level: 3, RequiredXP: 1500, MinAccuracy: 75, MinAttempts: 50, Name: "AI Practitioner", Icon: "⚙️"},
	{Level: 4, RequiredXP: 3000, MinAccuracy: 80, MinAttempts: 100, Name: "AI Expert", Icon: "🎯"},
	{Level: 5, RequiredXP: 5000, MinAccuracy: 85, MinAttempts: 200, Name: "AI Master", Icon: "🏆"},
}

// MaxLevel is the top of the ladder.
const MaxLevel = 5

// LevelRequirement returns the table row for a level, or false when the
// level is off the table.
func LevelRequirement(level int) (Requirement, bool) {
	for _, r := range levelTable {
		if r.Level == level {
			return r, true
		}
	}
	return Requirement{}, false
}

// ValidateLevelTable checks the ladder is well formed. Called once at
// startup; a broken table is fatal, not a per-request condition.
func ValidateLevelTable() error {
	if len(levelTable) == 0 {
		return fmt.Errorf("progression: level table is empty")
	}
	prev := Requirement{Level: 0, RequiredXP: -1, MinAttempts: -1}
	for _, r := range levelTable {
		if r.Level != prev.Level+1 {
			return fmt.Errorf("progression: level table skips from %d to %d", prev.Level, r.Level)
		}
		if r.RequiredXP < prev.RequiredXP || r.MinAttempts < prev.MinAttempts {
			return fmt.Errorf("progression: thresholds decrease at level %d", r.Level)
		}
		prev = r
	}
	return nil
}

// EligibleForPromotion reports whether p satisfies the next level's
// thresholds and, when it does, the target level. The top of the table
// means no further promotion is possible.
func EligibleForPromotion(p Progress) (int, bool) {
	req, ok := LevelRequirement(p.Level + 1)
	if !ok {
		return 0, false
	}
	if p.XP >= req.RequiredXP && p.Accuracy() >= req.MinAccuracy && p.TotalAttempted >= req.MinAttempts {
		return req.Level, true
	}
	return 0, false
}
