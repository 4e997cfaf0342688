package quiz

import "testing"

func twoStepQuestion() *Question {
	return &Question{
		ID:         "Q1",
		Difficulty: DifficultyNormal,
		Type:       TypePractice,
		Scenario:   "You are asked to summarize a report with an AI assistant.",
		Steps: []Step{
			{
				Title: "Pick the prompt",
				Text:  "Which prompt gives the most reliable summary?",
				Options: []Option{
					{ID: "A", Text: "Summarize this in three bullet points.", Weight: 1.0, Feedback: "Clear and scoped."},
					{ID: "B", Text: "Tell me about this.", Weight: 0.3, Feedback: "Too vague."},
					{ID: "C", Text: "Do your best.", Weight: 0.0},
					{ID: "D", Text: "Make it long.", Weight: 0.0},
				},
			},
			{
				Title: "Verify the output",
				Text:  "What should you do before forwarding the summary?",
				Options: []Option{
					{ID: "A", Text: "Send it immediately.", Weight: 0.0},
					{ID: "B", Text: "Ask the model if it is sure.", Weight: 0.4},
					{ID: "C", Text: "Check key claims against the source.", Weight: 1.0, Feedback: "Always verify."},
					{ID: "D", Text: "Shorten it.", Weight: 0.1},
				},
			},
		},
	}
}

func TestEvaluate_AllCorrect(t *testing.T) {
	q := twoStepQuestion()
	out := Evaluate(q, Submission{"A", "C"})
	if !out.Passed {
		t.Fatalf("Passed = false, want true (reason %s)", out.Reason)
	}
	if out.CorrectCount() != 2 {
		t.Errorf("CorrectCount = %d, want 2", out.CorrectCount())
	}
}

func TestEvaluate_OneWrong(t *testing.T) {
	q := twoStepQuestion()
	out := Evaluate(q, Submission{"A", "B"})
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Reason != ReasonWrongAnswer {
		t.Errorf("Reason = %s, want %s", out.Reason, ReasonWrongAnswer)
	}
	if !out.Steps[0].Matched || out.Steps[1].Matched {
		t.Errorf("step matches = %v/%v, want true/false", out.Steps[0].Matched, out.Steps[1].Matched)
	}
}

func TestEvaluate_ShortSubmission(t *testing.T) {
	q := twoStepQuestion()
	out := Evaluate(q, Submission{"A"})
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Reason != ReasonLengthMismatch {
		t.Errorf("Reason = %s, want %s", out.Reason, ReasonLengthMismatch)
	}
}

func TestEvaluate_UnknownOption(t *testing.T) {
	q := twoStepQuestion()
	out := Evaluate(q, Submission{"E", "C"})
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Steps[0].Reason != ReasonUnknownOption {
		t.Errorf("step reason = %s, want %s", out.Steps[0].Reason, ReasonUnknownOption)
	}
}

func TestEvaluate_MissingAnswerKey(t *testing.T) {
	q := twoStepQuestion()
	// Strip the weight-1.0 marker from step 2.
	for i := range q.Steps[1].Options {
		if q.Steps[1].Options[i].Weight == 1.0 {
			q.Steps[1].Options[i].Weight = 0.9
		}
	}
	out := Evaluate(q, Submission{"A", "C"})
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Steps[1].Reason != ReasonNoAnswerKey {
		t.Errorf("step reason = %s, want %s", out.Steps[1].Reason, ReasonNoAnswerKey)
	}
}

func TestEvaluate_AnswerKeyOutsideAlphabet(t *testing.T) {
	q := twoStepQuestion()
	q.Steps[0].Options = append(q.Steps[0].Options, Option{ID: "E", Text: "extra", Weight: 1.0})
	q.Steps[0].Options[0].Weight = 0.5
	out := Evaluate(q, Submission{"E", "C"})
	if out.Passed {
		t.Fatal("Passed = true, want false")
	}
	if out.Steps[0].Reason != ReasonBadAnswerKey {
		t.Errorf("step reason = %s, want %s", out.Steps[0].Reason, ReasonBadAnswerKey)
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	q := twoStepQuestion()
	sub := Submission{"A", "B"}
	first := Evaluate(q, sub)
	second := Evaluate(q, sub)
	if first.Passed != second.Passed || first.Reason != second.Reason {
		t.Errorf("outcomes differ: %+v vs %+v", first, second)
	}
}

func TestWeightedScore(t *testing.T) {
	q := twoStepQuestion()
	tests := []struct {
		name string
		sub  Submission
		want float64
	}{
		{"all correct", Submission{"A", "C"}, 100},
		{"partial credit", Submission{"B", "B"}, 35},
		{"zero weight picks", Submission{"C", "A"}, 0},
		{"short submission", Submission{"A"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedScore(q, tt.sub)
			if got != tt.want {
				t.Errorf("WeightedScore = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDifficultyRank(t *testing.T) {
	if DifficultyVeryEasy.Rank() != 0 || DifficultyVeryHard.Rank() != 4 {
		t.Errorf("rank order broken: %d %d", DifficultyVeryEasy.Rank(), DifficultyVeryHard.Rank())
	}
	if Difficulty("bogus").Rank() != -1 {
		t.Error("unknown difficulty should rank -1")
	}
}

func TestQuestionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Question)
		wantErr bool
	}{
		{"valid", func(q *Question) {}, false},
		{"missing ID", func(q *Question) { q.ID = "" }, true},
		{"bad difficulty", func(q *Question) { q.Difficulty = "impossible" }, true},
		{"bad type", func(q *Question) { q.Type = "survey" }, true},
		{"empty scenario", func(q *Question) { q.Scenario = "" }, true},
		{"no steps", func(q *Question) { q.Steps = nil }, true},
		{"single option", func(q *Question) {
			q.Steps[0].Options = q.Steps[0].Options[:1]
		}, true},
		{"option ID outside alphabet", func(q *Question) {
			q.Steps[1].Options[0].ID = "E"
		}, true},
		{"no correct option", func(q *Question) {
			q.Steps[0].Options[0].Weight = 0.5
		}, true},
		{"two correct options", func(q *Question) {
			q.Steps[0].Options[1].Weight = 1.0
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := twoStepQuestion()
			tt.mutate(q)
			err := q.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}
