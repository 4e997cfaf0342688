package judge

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/haneul/aiquest/internal/llm"
	"github.com/haneul/aiquest/internal/quiz"
)

func scenarioQuestion() *quiz.Question {
	return &quiz.Question{
		ID:         "q-prompt-1",
		Difficulty: quiz.DifficultyNormal,
		Type:       quiz.TypePractice,
		Scenario:   "A colleague pastes customer records into a public chatbot.",
		Steps: []quiz.Step{
			{
				Text: "What is the immediate risk?",
				Options: []quiz.Option{
					{ID: "A", Text: "Data leaves the company's control", Weight: 1.0, Feedback: "Right, the data is now outside your boundary."},
					{ID: "B", Text: "The chatbot may answer slowly", Weight: 0.0, Feedback: "Latency is not the concern here."},
				},
			},
			{
				Text: "What should you do?",
				Options: []quiz.Option{
					{ID: "A", Text: "Nothing, it is already sent", Weight: 0.0, Feedback: "Incidents still need reporting."},
					{ID: "B", Text: "Report it per the data policy", Weight: 1.0, Feedback: "Reporting limits the damage."},
				},
			},
		},
	}
}

func requestFor(t *testing.T, sub quiz.Submission) Request {
	t.Helper()
	q := scenarioQuestion()
	return Request{
		Question:      q,
		Submission:    sub,
		Outcome:       quiz.Evaluate(q, sub),
		WeightedScore: quiz.WeightedScore(q, sub),
	}
}

func TestLLMJudgeMapsResponse(t *testing.T) {
	raw := `{
		"total_score": 85,
		"criteria_scores": {"accuracy": 90, "judgment": 85, "safety": 80},
		"strengths": ["recognized the exposure"],
		"improvements": ["mention escalation timelines"],
		"feedback": "Strong awareness of data boundaries."
	}`
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(raw),
		Usage:   llm.Usage{InputTokens: 200, OutputTokens: 90, TotalTokens: 290},
	})
	j := NewLLMJudge(mock, DefaultLLMJudgeConfig())

	v, err := j.Judge(context.Background(), requestFor(t, quiz.Submission{"A", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}

	if !v.Passed {
		t.Error("expected Passed from the answer-key outcome")
	}
	if v.Score != 85 {
		t.Errorf("Score = %v, want 85", v.Score)
	}
	if v.Simulated {
		t.Error("LLM verdict must not be marked simulated")
	}
	if v.TokensUsed != 290 {
		t.Errorf("TokensUsed = %d, want 290", v.TokensUsed)
	}
	if v.Quantitative == nil || v.Quantitative.Criteria["safety"] != 80 {
		t.Errorf("criteria = %+v, want safety 80", v.Quantitative)
	}
	if v.Feedback != "Strong awareness of data boundaries." {
		t.Errorf("Feedback = %q", v.Feedback)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != VerdictSchema {
		t.Error("expected the verdict schema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "PASS") {
		t.Errorf("prompt missing answer-key result:\n%s", req.Messages[0].Content)
	}
}

func TestLLMJudgeKeepsFailVerdict(t *testing.T) {
	// A generous LLM score cannot overturn the answer key: the verdict stays
	// failed and the scores are capped so no perfection bonus can follow.
	raw := `{"total_score": 95, "criteria_scores": {"accuracy": 90, "judgment": 92, "safety": 88}, "strengths": [], "improvements": [], "feedback": "Close."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(raw)})
	j := NewLLMJudge(mock, DefaultLLMJudgeConfig())

	v, err := j.Judge(context.Background(), requestFor(t, quiz.Submission{"B", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}
	if v.Passed {
		t.Error("failing submission must stay failed")
	}
	if v.Score != failScoreCap {
		t.Errorf("Score = %v, want %v on a failed submission", v.Score, float64(failScoreCap))
	}
	if v.Quantitative.Aggregate != failScoreCap {
		t.Errorf("Aggregate = %v, want %v on a failed submission", v.Quantitative.Aggregate, float64(failScoreCap))
	}
	if v.Total() != failScoreCap {
		t.Errorf("Total() = %v, want %v", v.Total(), float64(failScoreCap))
	}
}

func TestLLMJudgeBadJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	j := NewLLMJudge(mock, DefaultLLMJudgeConfig())

	if _, err := j.Judge(context.Background(), requestFor(t, quiz.Submission{"A", "B"})); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestHeuristicJudgePass(t *testing.T) {
	j := NewHeuristicJudge()

	v, err := j.Judge(context.Background(), requestFor(t, quiz.Submission{"A", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}
	if !v.Passed || !v.Simulated {
		t.Errorf("Passed = %v, Simulated = %v, want both true", v.Passed, v.Simulated)
	}
	if v.Score != 100 {
		t.Errorf("Score = %v, want 100 for a perfect submission", v.Score)
	}
	if v.TokensUsed != 0 {
		t.Errorf("TokensUsed = %d, want 0", v.TokensUsed)
	}
	// Strengths carry the authored option feedback.
	if len(v.Strengths) != 2 || v.Strengths[0] != "Right, the data is now outside your boundary." {
		t.Errorf("Strengths = %v", v.Strengths)
	}
	if len(v.Improvements) != 0 {
		t.Errorf("Improvements = %v, want none", v.Improvements)
	}
}

func TestHeuristicJudgeFail(t *testing.T) {
	j := NewHeuristicJudge()

	v, err := j.Judge(context.Background(), requestFor(t, quiz.Submission{"B", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}
	if v.Passed {
		t.Error("expected fail verdict")
	}
	if len(v.Improvements) != 1 || v.Improvements[0] != "Latency is not the concern here." {
		t.Errorf("Improvements = %v", v.Improvements)
	}
	if v.Quantitative.Criteria["accuracy"] != 50 {
		t.Errorf("accuracy = %v, want 50", v.Quantitative.Criteria["accuracy"])
	}
}

func TestGraderFallsBack(t *testing.T) {
	// Empty mock queue makes every Generate fail.
	failing := NewLLMJudge(llm.NewMockProvider(), DefaultLLMJudgeConfig())
	g := NewGrader(failing, NewHeuristicJudge())

	v, err := g.Judge(context.Background(), requestFor(t, quiz.Submission{"A", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}
	if !v.Simulated {
		t.Error("degraded verdict must be marked simulated")
	}
	if !v.Passed {
		t.Error("fallback keeps the answer-key outcome")
	}
}

func TestGraderWithoutPrimary(t *testing.T) {
	g := NewGrader(nil, NewHeuristicJudge())

	v, err := g.Judge(context.Background(), requestFor(t, quiz.Submission{"A", "B"}))
	if err != nil {
		t.Fatalf("Judge() error = %v", err)
	}
	if !v.Simulated {
		t.Error("expected the heuristic verdict")
	}
}

func TestVerdictTotal(t *testing.T) {
	tests := []struct {
		name    string
		verdict Verdict
		want    float64
	}{
		{"reported score wins", Verdict{Score: 72, Quantitative: &Quantitative{Aggregate: 10}}, 72},
		{"derived from sub-scores", Verdict{Quantitative: &Quantitative{Aggregate: 55}, Qualitative: &Qualitative{Overall: 25}}, 80},
		{"quantitative only", Verdict{Quantitative: &Quantitative{Aggregate: 40}}, 40},
		{"clamped", Verdict{Quantitative: &Quantitative{Aggregate: 80}, Qualitative: &Qualitative{Overall: 45}}, 100},
		{"empty", Verdict{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.verdict.Total(); got != tt.want {
				t.Errorf("Total() = %v, want %v", got, tt.want)
			}
		})
	}
}
