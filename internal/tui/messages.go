package tui

import (
	"github.com/haneul/aiquest/internal/game"
	"github.com/haneul/aiquest/internal/quiz"
)

// questionReadyMsg is sent when the next practice question has been drawn.
type questionReadyMsg struct {
	Question *quiz.Question
	Err      error
}

// gradedMsg is sent when a submitted practice question has been graded.
type gradedMsg struct {
	Outcome *game.GradeOutcome
	Err     error
}

// examReadyMsg is sent when the promotion exam has been assembled.
type examReadyMsg struct {
	Exam *game.Exam
	Err  error
}

// examGradedMsg is sent when a submitted exam has been graded.
type examGradedMsg struct {
	Outcome *game.ExamOutcome
	Err     error
}
