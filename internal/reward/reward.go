// Package reward computes experience-point awards for graded submissions.
package reward

import (
	"fmt"
	"time"

	"github.com/haneul/aiquest/internal/quiz"
)

// Config holds every tunable of the XP formula as named tables so no award
// ever comes from an inline magic number.
type Config struct {
	// BasePassXP and BaseFailXP are the awards before multipliers. A failing
	// submission still earns a token amount — a deliberate participation
	// award, not a bug.
	BasePassXP int
	BaseFailXP int

	// Multipliers scales the base award by difficulty. The canonical mapping
	// pays more for harder questions.
	Multipliers map[quiz.Difficulty]float64

	// SpeedBonus is added once when the answer came in under FastThreshold.
	SpeedBonus    int
	FastThreshold time.Duration

	// EfficiencyBonus is added once when fewer than TokenThreshold resource
	// units (LLM tokens) were spent.
	EfficiencyBonus int
	TokenThreshold  int

	// PerfectionBonus is added once when the judge score meets PerfectScore.
	PerfectionBonus int
	PerfectScore    float64

	// LevelUpBonus is granted by the progression tracker on a level change.
	LevelUpBonus int
}

// DefaultConfig returns the standard reward table.
func DefaultConfig() Config {
	return Config{
		BasePassXP: 50,
		BaseFailXP: 10,
		Multipliers: map[quiz.Difficulty]float64{
			quiz.DifficultyVeryEasy: 0.8,
			quiz.DifficultyEasy:     1.0,
			quiz.DifficultyNormal:   1.2,
			quiz.DifficultyHard:     1.5,
			quiz.DifficultyVeryHard: 2.0,
		},
		SpeedBonus:      30,
		FastThreshold:   60 * time.Second,
		EfficiencyBonus: 20,
		TokenThreshold:  500,
		PerfectionBonus: 100,
		PerfectScore:    90,
		LevelUpBonus:    500,
	}
}

// Validate checks the table is complete. A missing entry is a startup
// configuration error, not something to discover per-request.
func (c Config) Validate() error {
	if c.BasePassXP <= 0 {
		return fmt.Errorf("reward: BasePassXP must be positive, got %d", c.BasePassXP)
	}
	if c.BaseFailXP < 0 {
		return fmt.Errorf("reward: BaseFailXP must be non-negative, got %d", c.BaseFailXP)
	}
	for _, d := range quiz.Difficulties() {
		m, ok := c.Multipliers[d]
		if !ok {
			return fmt.Errorf("reward: no multiplier for difficulty %q", d)
		}
		if m <= 0 {
			return fmt.Errorf("reward: multiplier for %q must be positive, got %v", d, m)
		}
	}
	return nil
}

// Input carries everything the XP formula looks at. Score is the judge's
// 0-100 score when one is available; nil skips the perfection bonus.
type Input struct {
	Passed        bool
	TimeTaken     time.Duration
	ResourceUnits int
	Difficulty    quiz.Difficulty
	Score         *float64
}

// ComputeXP returns the experience award for a graded submission.
//
// Base award times the difficulty multiplier (truncated), plus each bonus at
// most once. Out-of-range numeric inputs are clamped, never rejected. The
// result is floored at 1 for a pass; a bonus-free fail may legitimately
// return its (smaller) base amount, or 0 if the table says so.
func (c Config) ComputeXP(in Input) int {
	base := c.BaseFailXP
	if in.Passed {
		base = c.BasePassXP
	}

	mult, ok := c.Multipliers[in.Difficulty]
	if !ok {
		mult = 1.0
	}
	xp := int(float64(base) * mult)

	timeTaken := in.TimeTaken
	if timeTaken < 0 {
		timeTaken = 0
	}
	if timeTaken < c.FastThreshold {
		xp += c.SpeedBonus
	}

	units := in.ResourceUnits
	if units < 0 {
		units = 0
	}
	if units < c.TokenThreshold {
		xp += c.EfficiencyBonus
	}

	if in.Score != nil {
		score := clampScore(*in.Score)
		if score >= c.PerfectScore {
			xp += c.PerfectionBonus
		}
	}

	if in.Passed && xp < 1 {
		xp = 1
	}
	if xp < 0 {
		xp = 0
	}
	return xp
}

func clampScore(s float64) float64 {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}
