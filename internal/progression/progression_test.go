package progression

import "testing"

func TestApplyResult_StreakLaw(t *testing.T) {
	p := NewProgress()

	const n = 7
	for range n {
		p = ApplyResult(p, true, 50)
	}
	if p.CurrentStreak != n || p.BestStreak != n {
		t.Fatalf("after %d passes: current=%d best=%d, want %d/%d", n, p.CurrentStreak, p.BestStreak, n, n)
	}
	if p.TotalAttempted != n || p.TotalCorrect != n {
		t.Errorf("attempted=%d correct=%d, want %d/%d", p.TotalAttempted, p.TotalCorrect, n, n)
	}
	if p.XP != n*50 {
		t.Errorf("XP = %d, want %d", p.XP, n*50)
	}

	p = ApplyResult(p, false, 10)
	if p.CurrentStreak != 0 {
		t.Errorf("CurrentStreak = %d after fail, want 0", p.CurrentStreak)
	}
	if p.BestStreak != n {
		t.Errorf("BestStreak = %d after fail, want %d", p.BestStreak, n)
	}
	if p.XP != n*50+10 {
		t.Errorf("XP = %d, want %d (fails still earn)", p.XP, n*50+10)
	}
}

func TestAccuracy_ZeroAttempts(t *testing.T) {
	if got := NewProgress().Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
}

func TestEligibleForPromotion(t *testing.T) {
	tests := []struct {
		name       string
		p          Progress
		wantTarget int
		wantOK     bool
	}{
		{
			name:       "meets all level 2 thresholds",
			p:          Progress{Level: 1, XP: 500, TotalAttempted: 30, TotalCorrect: 22}, // 73.3%
			wantTarget: 2,
			wantOK:     true,
		},
		{
			name:   "accuracy too low",
			p:      Progress{Level: 1, XP: 500, TotalAttempted: 30, TotalCorrect: 18}, // 60%
			wantOK: false,
		},
		{
			name:   "xp too low",
			p:      Progress{Level: 1, XP: 499, TotalAttempted: 30, TotalCorrect: 22},
			wantOK: false,
		},
		{
			name:   "too few attempts",
			p:      Progress{Level: 1, XP: 500, TotalAttempted: 24, TotalCorrect: 24},
			wantOK: false,
		},
		{
			name:   "top of the table",
			p:      Progress{Level: MaxLevel, XP: 99999, TotalAttempted: 1000, TotalCorrect: 1000},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := EligibleForPromotion(tt.p)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && target != tt.wantTarget {
				t.Errorf("target = %d, want %d", target, tt.wantTarget)
			}
		})
	}
}

func TestApplyLevelTransition(t *testing.T) {
	eligible := Progress{Level: 1, XP: 600, TotalAttempted: 30, TotalCorrect: 25}

	t.Run("continuous promotion", func(t *testing.T) {
		got, err := ApplyLevelTransition(eligible, ContinuousPromotion, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Level != 2 {
			t.Errorf("Level = %d, want 2", got.Level)
		}
	})

	t.Run("continuous promotion below thresholds", func(t *testing.T) {
		p := Progress{Level: 1, XP: 100, TotalAttempted: 5, TotalCorrect: 5}
		if _, err := ApplyLevelTransition(p, ContinuousPromotion, 2); err == nil {
			t.Error("expected threshold error")
		}
	})

	t.Run("exam promotion skips threshold check", func(t *testing.T) {
		p := Progress{Level: 2, XP: 100, TotalAttempted: 5, TotalCorrect: 2}
		got, err := ApplyLevelTransition(p, ExamPromotion, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Level != 3 {
			t.Errorf("Level = %d, want 3", got.Level)
		}
	})

	t.Run("demotion rejected", func(t *testing.T) {
		p := Progress{Level: 3}
		if _, err := ApplyLevelTransition(p, ExamPromotion, 2); err == nil {
			t.Error("expected monotonicity error")
		}
	})

	t.Run("skipping rejected", func(t *testing.T) {
		if _, err := ApplyLevelTransition(eligible, ExamPromotion, 3); err == nil {
			t.Error("expected skip error")
		}
	})

	t.Run("off-table target rejected", func(t *testing.T) {
		p := Progress{Level: MaxLevel}
		if _, err := ApplyLevelTransition(p, ExamPromotion, MaxLevel+1); err == nil {
			t.Error("expected off-table error")
		}
	})
}

func TestValidateLevelTable(t *testing.T) {
	if err := ValidateLevelTable(); err != nil {
		t.Fatalf("level table invalid: %v", err)
	}
}

func TestExamBlueprint(t *testing.T) {
	tests := []struct {
		target      int
		wantTotal   int
		wantReviews int
	}{
		{2, 5, 0},
		{3, 6, 0},
		{4, 9, 3},
		{5, 10, 4},
		{99, 5, 0}, // unknown target falls back to a basic exam
	}

	for _, tt := range tests {
		slots := ExamBlueprint(tt.target)
		if len(slots) != tt.wantTotal {
			t.Errorf("target %d: %d slots, want %d", tt.target, len(slots), tt.wantTotal)
		}
		reviews := 0
		for _, s := range slots {
			if s.Review {
				reviews++
			}
		}
		if reviews != tt.wantReviews {
			t.Errorf("target %d: %d review slots, want %d", tt.target, reviews, tt.wantReviews)
		}
	}
}

func TestExamResult(t *testing.T) {
	res := ExamResult{TargetLevel: 2}
	for i := range 5 {
		res.Results = append(res.Results, ExamQuestionResult{QuestionID: "q", Passed: i != 0})
	}
	// 4/5 = 0.8 meets the ratio exactly.
	if !res.Passed() {
		t.Errorf("PassRatio %v should pass", res.PassRatio())
	}

	res.Results[1].Passed = false
	if res.Passed() {
		t.Errorf("PassRatio %v should fail", res.PassRatio())
	}

	if (ExamResult{}).Passed() {
		t.Error("empty exam must not pass")
	}
}
