package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/haneul/aiquest/internal/game"
	"github.com/haneul/aiquest/internal/judge"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestion() *quiz.Question {
	return &quiz.Question{
		ID:         "q1",
		Difficulty: quiz.DifficultyEasy,
		Type:       quiz.TypePractice,
		Scenario:   "An AI assistant cites a statute that does not exist.",
		Steps: []quiz.Step{
			{
				Text: "What happened?",
				Options: []quiz.Option{
					{ID: "A", Text: "A hallucination", Weight: 1.0},
					{ID: "B", Text: "A database error", Weight: 0.0},
				},
			},
		},
	}
}

func testModel() Model {
	m := newModel(nil, "sam", ModePractice, "", progression.Progress{Level: 1, XP: 120})
	m.width = 100
	m.height = 30
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got
}

func TestWindowSize(t *testing.T) {
	m := testModel()
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}

func TestQuestionReadyEntersStepPhase(t *testing.T) {
	m := testModel()
	m = update(t, m, questionReadyMsg{Question: testQuestion()})
	if m.phase != phaseStep {
		t.Fatalf("phase = %d, want phaseStep", m.phase)
	}
	if m.lastID != "q1" {
		t.Errorf("lastID = %q, want q1", m.lastID)
	}
	if m.sc == nil || m.sc.Question.ID != "q1" {
		t.Error("session context not started for q1")
	}
}

func TestDrainedPool(t *testing.T) {
	m := testModel()
	m = update(t, m, questionReadyMsg{Err: game.ErrNoQuestions})
	if m.phase != phaseDrained {
		t.Errorf("phase = %d, want phaseDrained", m.phase)
	}
}

func TestLoadErrorEntersErrorPhase(t *testing.T) {
	m := testModel()
	m = update(t, m, questionReadyMsg{Err: errFake})
	if m.phase != phaseError {
		t.Errorf("phase = %d, want phaseError", m.phase)
	}
	if m.content() == "" {
		t.Error("error view should not be empty")
	}
}

func TestAnswerStepShowsFeedback(t *testing.T) {
	m := testModel()
	m = update(t, m, questionReadyMsg{Question: testQuestion()})

	m = update(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseStepFeedback {
		t.Fatalf("phase = %d, want phaseStepFeedback", m.phase)
	}
	if len(m.sc.Answers) != 1 || m.sc.Answers[0] != "A" {
		t.Errorf("answers = %v, want [A]", m.sc.Answers)
	}
}

func TestGradedShowsSummaryAndUpdatesHeader(t *testing.T) {
	m := testModel()
	m = update(t, m, questionReadyMsg{Question: testQuestion()})
	m = update(t, m, specialKey(tea.KeyEnter))

	out := &game.GradeOutcome{
		Outcome:  quiz.Outcome{Passed: true},
		Verdict:  &judge.Verdict{Passed: true, Score: 92, Feedback: "Sharp eye."},
		XPEarned: 80,
		Progress: progression.Progress{Level: 1, XP: 200, CurrentStreak: 3},
	}
	m = update(t, m, gradedMsg{Outcome: out})
	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want phaseSummary", m.phase)
	}
	if m.progress.XP != 200 {
		t.Errorf("header XP = %d, want 200", m.progress.XP)
	}
	if m.content() == "" {
		t.Error("summary view should not be empty")
	}
}

func TestSummaryQuitKey(t *testing.T) {
	m := testModel()
	m.phase = phaseSummary
	m.outcome = &game.GradeOutcome{
		Verdict:  &judge.Verdict{},
		Progress: progression.Progress{Level: 1},
	}
	_, cmd := m.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("q on summary should quit")
	}
}

func TestExamFlowCollectsSubmissions(t *testing.T) {
	m := newModel(nil, "sam", ModeExam, "", progression.Progress{Level: 2, XP: 600})
	m.width = 100
	m.height = 30

	q1, q2 := testQuestion(), testQuestion()
	q2.ID = "q2"
	exam := &game.Exam{ID: "x1", User: "sam", TargetLevel: 3, Questions: []*quiz.Question{q1, q2}}

	m = update(t, m, examReadyMsg{Exam: exam})
	if m.phase != phaseStep {
		t.Fatalf("phase = %d, want phaseStep", m.phase)
	}

	// Answer question 1, dismiss feedback.
	m = update(t, m, specialKey(tea.KeyEnter))
	m = update(t, m, specialKey(tea.KeyEnter))
	if m.examIndex != 1 {
		t.Fatalf("examIndex = %d, want 1", m.examIndex)
	}
	if len(m.examSubs) != 1 {
		t.Fatalf("examSubs = %d, want 1", len(m.examSubs))
	}
	if m.phase != phaseStep {
		t.Fatalf("phase = %d, want phaseStep for question 2", m.phase)
	}

	out := &game.ExamOutcome{
		Result:   progression.ExamResult{TargetLevel: 3},
		Progress: progression.Progress{Level: 3, XP: 1600},
		Promoted: true,
	}
	m = update(t, m, examGradedMsg{Outcome: out})
	if m.phase != phaseExamSummary {
		t.Fatalf("phase = %d, want phaseExamSummary", m.phase)
	}
	if m.progress.Level != 3 {
		t.Errorf("header level = %d, want 3", m.progress.Level)
	}
}

func TestContentPerPhase(t *testing.T) {
	m := testModel()
	for _, p := range []phase{phaseLoading, phaseJudging, phaseDrained} {
		m.phase = p
		if m.content() == "" {
			t.Errorf("phase %d: empty content", p)
		}
	}
}

type fakeErr struct{}

func (fakeErr) Error() string { return "boom" }

var errFake = fakeErr{}
