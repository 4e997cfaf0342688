package quiz

// FailReason explains why a step (or the whole submission) failed.
type FailReason string

const (
	ReasonNone           FailReason = ""
	ReasonLengthMismatch FailReason = "length_mismatch"
	ReasonUnknownOption  FailReason = "unknown_option"
	ReasonNoAnswerKey    FailReason = "no_answer_key"
	ReasonBadAnswerKey   FailReason = "bad_answer_key"
	ReasonWrongAnswer    FailReason = "wrong_answer"
)

// StepResult reports the evaluation of a single step.
type StepResult struct {
	Selected string
	Correct  string
	Matched  bool
	Reason   FailReason
	Feedback string
}

// Outcome is the result of evaluating a submission against a question.
// A false Passed is a normal business outcome, never an error.
type Outcome struct {
	Passed bool
	Steps  []StepResult
	Reason FailReason
}

// CorrectCount returns how many steps matched their answer key.
func (o Outcome) CorrectCount() int {
	n := 0
	for _, s := range o.Steps {
		if s.Matched {
			n++
		}
	}
	return n
}

// Evaluate grades a submission against a question's answer key.
//
// The submission must contain exactly one selected option ID per step, and
// each step must carry exactly one option with weight 1.0 whose ID is in the
// closed {A,B,C,D} alphabet. Any violation fails the whole submission. The
// function is pure; all steps are validated so callers can render per-step
// feedback even after the first mismatch.
func Evaluate(q *Question, sub Submission) Outcome {
	if len(sub) != len(q.Steps) {
		return Outcome{Passed: false, Reason: ReasonLengthMismatch}
	}

	out := Outcome{Passed: true, Steps: make([]StepResult, len(q.Steps))}
	for i, step := range q.Steps {
		sr := evaluateStep(step, sub[i])
		out.Steps[i] = sr
		if !sr.Matched {
			out.Passed = false
			if out.Reason == ReasonNone {
				out.Reason = sr.Reason
			}
		}
	}
	return out
}

func evaluateStep(step Step, selected string) StepResult {
	sr := StepResult{Selected: selected}

	correct, ok := step.CorrectOption()
	if !ok {
		sr.Reason = ReasonNoAnswerKey
		return sr
	}
	sr.Correct = correct.ID

	if !validOptionID(correct.ID) {
		sr.Reason = ReasonBadAnswerKey
		return sr
	}

	chosen, ok := step.Option(selected)
	if !ok {
		sr.Reason = ReasonUnknownOption
		return sr
	}
	sr.Feedback = chosen.Feedback

	if chosen.ID != correct.ID {
		sr.Reason = ReasonWrongAnswer
		return sr
	}

	sr.Matched = true
	return sr
}

func validOptionID(id string) bool {
	for _, v := range OptionIDs {
		if id == v {
			return true
		}
	}
	return false
}

// WeightedScore computes the secondary 0-100 score from per-option weights:
// the mean of the selected options' weights. It never affects the binary
// pass/fail outcome. Selections that don't resolve to an option score 0 for
// that step; a submission of the wrong length scores 0 overall.
func WeightedScore(q *Question, sub Submission) float64 {
	if len(sub) != len(q.Steps) || len(q.Steps) == 0 {
		return 0
	}
	var total float64
	for i, step := range q.Steps {
		if o, ok := step.Option(sub[i]); ok {
			total += o.Weight
		}
	}
	return total / float64(len(q.Steps)) * 100
}
