package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"
	"time"

	"github.com/haneul/aiquest/internal/llm"
	"github.com/haneul/aiquest/internal/quiz"
)

// LLMJudgeConfig holds configuration for the LLM judge.
type LLMJudgeConfig struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds a single judging call, independent of the provider's
	// own request timeout.
	Timeout time.Duration
}

// DefaultLLMJudgeConfig returns sensible defaults.
func DefaultLLMJudgeConfig() LLMJudgeConfig {
	return LLMJudgeConfig{
		MaxTokens:   512,
		Temperature: 0.3,
		Timeout:     30 * time.Second,
	}
}

// LLMJudge scores submissions with an LLM provider.
type LLMJudge struct {
	provider llm.Provider
	cfg      LLMJudgeConfig
}

// NewLLMJudge creates an LLM-backed judge.
func NewLLMJudge(provider llm.Provider, cfg LLMJudgeConfig) *LLMJudge {
	return &LLMJudge{provider: provider, cfg: cfg}
}

// failScoreCap bounds the score of a failing submission. The system prompt
// asks the model to stay under it, but the cap holds even when the model
// does not comply.
const failScoreCap = 60

// verdictOutput is the raw LLM response.
type verdictOutput struct {
	TotalScore     float64            `json:"total_score"`
	CriteriaScores map[string]float64 `json:"criteria_scores"`
	Strengths      []string           `json:"strengths"`
	Improvements   []string           `json:"improvements"`
	Feedback       string             `json:"feedback"`
}

// Judge sends the submission to the LLM and maps the response to a Verdict.
// The answer-key outcome decides Passed regardless of the LLM's score, and a
// failing submission's scores are capped at failScoreCap.
func (j *LLMJudge) Judge(ctx context.Context, req Request) (*Verdict, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeJudge)
	if j.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.cfg.Timeout)
		defer cancel()
	}

	userMsg, err := buildJudgeMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build judge prompt: %w", err)
	}

	llmReq := llm.Request{
		System: judgeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      VerdictSchema,
		MaxTokens:   j.cfg.MaxTokens,
		Temperature: j.cfg.Temperature,
	}

	resp, err := j.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM judging failed: %w", err)
	}

	var raw verdictOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse judge response: %w", err)
	}

	var aggregate float64
	for _, s := range raw.CriteriaScores {
		aggregate += s
	}
	if n := len(raw.CriteriaScores); n > 0 {
		aggregate /= float64(n)
	}

	score := clampScore(raw.TotalScore)
	aggregate = clampScore(aggregate)
	if !req.Outcome.Passed {
		score = min(score, failScoreCap)
		aggregate = min(aggregate, failScoreCap)
	}

	return &Verdict{
		Passed: req.Outcome.Passed,
		Score:  score,
		Quantitative: &Quantitative{
			Aggregate: aggregate,
			Criteria:  raw.CriteriaScores,
		},
		Strengths:    raw.Strengths,
		Improvements: raw.Improvements,
		Feedback:     raw.Feedback,
		TokensUsed:   resp.Usage.TotalTokens,
	}, nil
}

const judgeSystemPrompt = `You are an AI-literacy tutor grading a learner's answers to a scenario-based quiz. The learner walked through a scenario and picked one option at each decision step. An answer key has already decided pass or fail; your job is to score the submission and explain it.

Instructions:
- Score the whole submission 0-100 as total_score.
- Break the score into criteria_scores with keys "accuracy", "judgment", and "safety".
- List 1-3 strengths and 1-3 improvements as short phrases.
- Write feedback as one encouraging paragraph addressed to the learner.
- Be consistent with the answer key: a submission with wrong selections cannot score above 60.`

var judgeUserTemplate = template.Must(template.New("judge").Parse(`Scenario: {{.Scenario}}
Difficulty: {{.Difficulty}}
Answer key result: {{if .Passed}}PASS{{else}}FAIL{{end}} ({{.Correct}}/{{.Total}} steps correct, weighted score {{printf "%.0f" .WeightedScore}})

Steps and selections:
{{range .Steps}}Step {{.Number}}: {{.Text}}
{{range .Options}}  {{.ID}}. {{.Text}}
{{end}}  Selected: {{.Selected}}, correct: {{.Correct}}
{{end}}`))

type judgeStepView struct {
	Number   int
	Text     string
	Options  []quiz.Option
	Selected string
	Correct  string
}

type judgeView struct {
	Scenario      string
	Difficulty    quiz.Difficulty
	Passed        bool
	Correct       int
	Total         int
	WeightedScore float64
	Steps         []judgeStepView
}

func buildJudgeMessage(req Request) (string, error) {
	view := judgeView{
		Scenario:      req.Question.Scenario,
		Difficulty:    req.Question.Difficulty,
		Passed:        req.Outcome.Passed,
		Correct:       req.Outcome.CorrectCount(),
		Total:         len(req.Question.Steps),
		WeightedScore: req.WeightedScore,
	}
	for i, step := range req.Question.Steps {
		sv := judgeStepView{
			Number:  i + 1,
			Text:    step.Text,
			Options: step.Options,
		}
		if i < len(req.Submission) {
			sv.Selected = req.Submission[i]
		}
		if key, ok := step.CorrectOption(); ok {
			sv.Correct = key.ID
		}
		view.Steps = append(view.Steps, sv)
	}

	var buf bytes.Buffer
	if err := judgeUserTemplate.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
