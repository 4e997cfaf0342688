// Package judge turns an evaluated submission into a scored verdict with
// learner-facing feedback. The answer-key evaluation decides pass or fail;
// the judge supplies scores and commentary on top of it.
package judge

import (
	"context"

	"github.com/haneul/aiquest/internal/quiz"
)

// Judge produces a Verdict for an evaluated submission.
type Judge interface {
	Judge(ctx context.Context, req Request) (*Verdict, error)
}

// Request carries everything the judge needs: the question, what the
// learner selected, and the answer-key evaluation of that selection.
type Request struct {
	Question   *quiz.Question
	Submission quiz.Submission
	Outcome    quiz.Outcome

	// WeightedScore is the answer-key score (0-100) from quiz.WeightedScore.
	WeightedScore float64
}

// Quantitative holds per-criterion scores and their aggregate.
type Quantitative struct {
	// Aggregate is the combined criteria score.
	Aggregate float64

	// Criteria maps criterion name to its score.
	Criteria map[string]float64
}

// Qualitative holds the judge's holistic assessment.
type Qualitative struct {
	// Overall is the holistic score component.
	Overall float64

	// Commentary is the judge's narrative assessment.
	Commentary string
}

// Verdict is the judge's result. Passed mirrors the answer-key outcome;
// the judge never overturns it.
type Verdict struct {
	Passed bool

	// Score is the total score, 0-100. When the judge does not report a
	// total directly it is derived from the sub-scores; see Total.
	Score float64

	Quantitative *Quantitative
	Qualitative  *Qualitative

	Strengths    []string
	Improvements []string

	// Feedback is the one-paragraph summary shown to the learner.
	Feedback string

	// Simulated marks verdicts produced without an LLM.
	Simulated bool

	// TokensUsed is the LLM token count attributed to this verdict.
	// Zero for simulated verdicts.
	TokensUsed int
}

// Total returns the verdict's effective score. A reported Score wins;
// otherwise the quantitative aggregate and qualitative overall are summed.
func (v *Verdict) Total() float64 {
	if v.Score > 0 {
		return v.Score
	}
	var total float64
	if v.Quantitative != nil {
		total += v.Quantitative.Aggregate
	}
	if v.Qualitative != nil {
		total += v.Qualitative.Overall
	}
	return clampScore(total)
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
