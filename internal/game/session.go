package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/haneul/aiquest/internal/quiz"
)

// SessionContext carries one question attempt from serve to submit. It is
// plain data so surfaces (TUI, tests) can hold and copy it freely; nothing
// in the engine keeps per-session state.
type SessionContext struct {
	SessionID string
	User      string
	Question  *quiz.Question

	// StepIndex is the next unanswered step.
	StepIndex int

	// Answers holds the option IDs selected so far, one per step.
	Answers quiz.Submission

	StartedAt time.Time
}

// NewSessionContext starts an attempt at q for the named user.
func NewSessionContext(user string, q *quiz.Question) *SessionContext {
	return &SessionContext{
		SessionID: uuid.NewString(),
		User:      user,
		Question:  q,
		StartedAt: time.Now(),
	}
}

// Answer records the selection for the current step and advances the cursor.
func (sc *SessionContext) Answer(optionID string) {
	sc.Answers = append(sc.Answers, optionID)
	sc.StepIndex++
}

// Complete reports whether every step has an answer.
func (sc *SessionContext) Complete() bool {
	return sc.StepIndex >= len(sc.Question.Steps)
}

// CurrentStep returns the step awaiting an answer. ok is false when the
// session is complete.
func (sc *SessionContext) CurrentStep() (quiz.Step, bool) {
	if sc.Complete() {
		return quiz.Step{}, false
	}
	return sc.Question.Steps[sc.StepIndex], true
}
