// Package tui is the Bubble Tea front end: a step-by-step question walker
// for practice sessions and promotion exams.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/haneul/aiquest/internal/game"
	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/ui/components"
	"github.com/haneul/aiquest/internal/ui/theme"
)

// Mode selects what the model runs.
type Mode int

const (
	ModePractice Mode = iota
	ModeExam
)

type phase int

const (
	phaseLoading phase = iota
	phaseStep
	phaseStepFeedback
	phaseJudging
	phaseSummary
	phaseExamSummary
	phaseDrained
	phaseError
)

// Model is the root Bubble Tea model for both modes.
type Model struct {
	engine *game.Engine
	user   string
	mode   Mode

	// difficulty filters practice questions; empty means "by level".
	difficulty quiz.Difficulty

	width  int
	height int
	phase  phase
	spin   spinner.Model

	// practice state
	sc      *game.SessionContext
	choice  components.MultiChoice
	outcome *game.GradeOutcome
	lastID  string

	// exam state
	exam        *game.Exam
	examSubs    []quiz.Submission
	examIndex   int
	examOutcome *game.ExamOutcome

	// progress mirrors the persisted state for the header.
	progress progression.Progress

	err error
}

func newModel(engine *game.Engine, user string, mode Mode, difficulty quiz.Difficulty, start progression.Progress) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = sp.Style.Foreground(theme.Primary)

	return Model{
		engine:     engine,
		user:       user,
		mode:       mode,
		difficulty: difficulty,
		phase:      phaseLoading,
		spin:       sp,
		progress:   start,
	}
}

func (m Model) Init() tea.Cmd {
	if m.mode == ModeExam {
		return tea.Batch(m.spin.Tick, m.buildExam())
	}
	return tea.Batch(m.spin.Tick, m.loadQuestion())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase == phaseLoading || m.phase == phaseJudging {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case gradedMsg:
		return m.handleGraded(msg)

	case examReadyMsg:
		return m.handleExamReady(msg)

	case examGradedMsg:
		return m.handleExamGraded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseStep:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			m.sc.Answer(m.choice.ChosenID)
			m.phase = phaseStepFeedback
		}
		return m, cmd

	case phaseStepFeedback:
		return m.advanceStep()

	case phaseSummary:
		switch msg.String() {
		case "enter", "n":
			m.phase = phaseLoading
			return m, tea.Batch(m.spin.Tick, m.loadQuestion())
		case "q", "esc":
			return m, tea.Quit
		}
		return m, nil

	case phaseExamSummary, phaseDrained, phaseError:
		switch msg.String() {
		case "enter", "q", "esc":
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// advanceStep moves past a revealed step: on to the next step, or to
// judging when the question is complete.
func (m Model) advanceStep() (tea.Model, tea.Cmd) {
	if !m.sc.Complete() {
		step, _ := m.sc.CurrentStep()
		m.choice = components.NewMultiChoice(step)
		m.phase = phaseStep
		return m, nil
	}

	m.phase = phaseJudging
	if m.mode == ModeExam {
		m.examSubs = append(m.examSubs, m.sc.Answers)
		if m.examIndex+1 < len(m.exam.Questions) {
			// More exam questions before grading.
			m.examIndex++
			m.startExamQuestion()
			return m, nil
		}
		return m, tea.Batch(m.spin.Tick, m.submitExam())
	}
	return m, tea.Batch(m.spin.Tick, m.submitAnswer())
}

func (m *Model) startExamQuestion() {
	q := m.exam.Questions[m.examIndex]
	m.sc = game.NewSessionContext(m.user, q)
	step, _ := m.sc.CurrentStep()
	m.choice = components.NewMultiChoice(step)
	m.phase = phaseStep
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		if errors.Is(msg.Err, game.ErrNoQuestions) {
			m.phase = phaseDrained
			return m, nil
		}
		m.err = msg.Err
		m.phase = phaseError
		return m, nil
	}

	m.sc = game.NewSessionContext(m.user, msg.Question)
	m.lastID = msg.Question.ID
	step, _ := m.sc.CurrentStep()
	m.choice = components.NewMultiChoice(step)
	m.phase = phaseStep
	return m, nil
}

func (m Model) handleGraded(msg gradedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.phase = phaseError
		return m, nil
	}
	m.outcome = msg.Outcome
	m.progress = msg.Outcome.Progress
	m.phase = phaseSummary
	return m, nil
}

func (m Model) handleExamReady(msg examReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.phase = phaseError
		return m, nil
	}
	m.exam = msg.Exam
	m.examIndex = 0
	m.examSubs = nil
	m.startExamQuestion()
	return m, nil
}

func (m Model) handleExamGraded(msg examGradedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.phase = phaseError
		return m, nil
	}
	m.examOutcome = msg.Outcome
	m.progress = msg.Outcome.Progress
	m.phase = phaseExamSummary
	return m, nil
}

func (m Model) loadQuestion() tea.Cmd {
	engine, user, difficulty, lastID := m.engine, m.user, m.difficulty, m.lastID
	return func() tea.Msg {
		q, err := engine.NextQuestion(context.Background(), user, difficulty, lastID)
		return questionReadyMsg{Question: q, Err: err}
	}
}

func (m Model) submitAnswer() tea.Cmd {
	engine, sc := m.engine, m.sc
	return func() tea.Msg {
		out, err := engine.SubmitAnswer(context.Background(), sc)
		return gradedMsg{Outcome: out, Err: err}
	}
}

func (m Model) buildExam() tea.Cmd {
	engine, user := m.engine, m.user
	return func() tea.Msg {
		exam, err := engine.BuildExam(context.Background(), user)
		return examReadyMsg{Exam: exam, Err: err}
	}
}

func (m Model) submitExam() tea.Cmd {
	engine, exam, subs := m.engine, m.exam, m.examSubs
	return func() tea.Msg {
		out, err := engine.SubmitExam(context.Background(), exam, subs)
		return examGradedMsg{Outcome: out, Err: err}
	}
}

// RunPractice starts the practice TUI for the given user.
func RunPractice(engine *game.Engine, user string, difficulty quiz.Difficulty, start progression.Progress) error {
	return run(newModel(engine, user, ModePractice, difficulty, start))
}

// RunExam starts the promotion exam TUI for the given user.
func RunExam(engine *game.Engine, user string, start progression.Progress) error {
	return run(newModel(engine, user, ModeExam, "", start))
}

func run(m Model) error {
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
