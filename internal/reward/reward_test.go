package reward

import (
	"testing"
	"time"

	"github.com/haneul/aiquest/internal/quiz"
)

func score(s float64) *float64 { return &s }

func TestComputeXP_Table(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name string
		in   Input
		want int
	}{
		{
			name: "pass normal with speed and efficiency",
			in:   Input{Passed: true, TimeTaken: 10 * time.Second, ResourceUnits: 50, Difficulty: quiz.DifficultyNormal},
			want: 60 + 30 + 20, // 50*1.2 + speed + efficiency
		},
		{
			name: "fail normal with speed and efficiency",
			in:   Input{Passed: false, TimeTaken: 10 * time.Second, ResourceUnits: 50, Difficulty: quiz.DifficultyNormal},
			want: 12 + 30 + 20,
		},
		{
			name: "slow and expensive pass",
			in:   Input{Passed: true, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.DifficultyEasy},
			want: 50,
		},
		{
			name: "very hard doubles base",
			in:   Input{Passed: true, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.DifficultyVeryHard},
			want: 100,
		},
		{
			name: "perfection bonus",
			in:   Input{Passed: true, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.DifficultyEasy, Score: score(95)},
			want: 150,
		},
		{
			name: "score below perfect threshold",
			in:   Input{Passed: true, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.DifficultyEasy, Score: score(89.9)},
			want: 50,
		},
		{
			name: "slow expensive fail earns participation award",
			in:   Input{Passed: false, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.DifficultyEasy},
			want: 10,
		},
		{
			name: "unknown difficulty falls back to 1.0",
			in:   Input{Passed: true, TimeTaken: 5 * time.Minute, ResourceUnits: 2000, Difficulty: quiz.Difficulty("bogus")},
			want: 50,
		},
		{
			name: "negative inputs clamp to bonuses",
			in:   Input{Passed: true, TimeTaken: -3 * time.Second, ResourceUnits: -1, Difficulty: quiz.DifficultyEasy},
			want: 50 + 30 + 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cfg.ComputeXP(tt.in)
			if got != tt.want {
				t.Errorf("ComputeXP = %d, want %d", got, tt.want)
			}
		})
	}
}

// Passing never awards less than failing, all else equal.
func TestComputeXP_PassDominatesFail(t *testing.T) {
	cfg := DefaultConfig()
	for _, d := range quiz.Difficulties() {
		pass := cfg.ComputeXP(Input{Passed: true, TimeTaken: 10 * time.Second, ResourceUnits: 50, Difficulty: d})
		fail := cfg.ComputeXP(Input{Passed: false, TimeTaken: 10 * time.Second, ResourceUnits: 50, Difficulty: d})
		if pass < fail {
			t.Errorf("difficulty %s: pass %d < fail %d", d, pass, fail)
		}
	}
}

func TestComputeXP_PassFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BasePassXP = 1
	cfg.Multipliers[quiz.DifficultyVeryEasy] = 0.1
	got := cfg.ComputeXP(Input{Passed: true, TimeTaken: time.Hour, ResourceUnits: 10000, Difficulty: quiz.DifficultyVeryEasy})
	if got < 1 {
		t.Errorf("ComputeXP = %d, want >= 1 on pass", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	delete(cfg.Multipliers, quiz.DifficultyHard)
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for missing multiplier entry")
	}
}
