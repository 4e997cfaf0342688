package judge

import (
	"context"
	"fmt"

	"github.com/haneul/aiquest/internal/quiz"
)

// HeuristicJudge grades locally from the answer-key evaluation. It needs no
// network and is fully deterministic; verdicts are always Simulated.
type HeuristicJudge struct{}

// NewHeuristicJudge creates the offline judge.
func NewHeuristicJudge() *HeuristicJudge {
	return &HeuristicJudge{}
}

// Judge derives a verdict from the evaluator report and the per-option
// feedback authored into the question.
func (h *HeuristicJudge) Judge(_ context.Context, req Request) (*Verdict, error) {
	correct := req.Outcome.CorrectCount()
	total := len(req.Question.Steps)

	var accuracy float64
	if total > 0 {
		accuracy = float64(correct) / float64(total) * 100
	}

	var strengths, improvements []string
	for i, sr := range req.Outcome.Steps {
		note := stepNote(req.Question, i, sr)
		if sr.Matched {
			strengths = append(strengths, note)
		} else {
			improvements = append(improvements, note)
		}
	}

	return &Verdict{
		Passed: req.Outcome.Passed,
		Score:  clampScore(req.WeightedScore),
		Quantitative: &Quantitative{
			Aggregate: clampScore(req.WeightedScore),
			Criteria: map[string]float64{
				"accuracy": accuracy,
			},
		},
		Strengths:    strengths,
		Improvements: improvements,
		Feedback:     summaryFeedback(req.Outcome, correct, total),
		Simulated:    true,
	}, nil
}

// stepNote prefers the feedback authored on the selected option, falling
// back to a generic note naming the step.
func stepNote(q *quiz.Question, i int, sr quiz.StepResult) string {
	if i < len(q.Steps) {
		if opt, ok := q.Steps[i].Option(sr.Selected); ok && opt.Feedback != "" {
			return opt.Feedback
		}
	}
	if sr.Matched {
		return fmt.Sprintf("Step %d answered correctly", i+1)
	}
	return fmt.Sprintf("Revisit step %d", i+1)
}

func summaryFeedback(out quiz.Outcome, correct, total int) string {
	if out.Passed {
		return fmt.Sprintf("You got all %d steps right. Solid judgment throughout the scenario.", total)
	}
	if out.Reason == quiz.ReasonLengthMismatch {
		return "Your submission did not cover every step of the scenario. Answer each step and try again."
	}
	return fmt.Sprintf("You got %d of %d steps right. Review the steps flagged below and try a similar scenario.", correct, total)
}
