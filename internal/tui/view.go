package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/haneul/aiquest/internal/progression"
	"github.com/haneul/aiquest/internal/ui/components"
	"github.com/haneul/aiquest/internal/ui/layout"
	"github.com/haneul/aiquest/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	rank := ""
	if req, ok := progression.LevelRequirement(m.progress.Level); ok {
		rank = req.Icon + " " + req.Name
	}

	header := layout.RenderHeader(m.title(), rank, m.progress.XP, m.progress.CurrentStreak, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)
	frame := layout.RenderFrame(header, m.content(), footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) title() string {
	if m.mode == ModeExam {
		if m.exam != nil {
			return fmt.Sprintf("Promotion Exam → Level %d", m.exam.TargetLevel)
		}
		return "Promotion Exam"
	}
	return "Practice"
}

func (m Model) keyHints() []layout.KeyHint {
	quit := layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}
	switch m.phase {
	case phaseStep:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			quit,
		}
	case phaseStepFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}, quit}
	case phaseSummary:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Q", Description: "Stop"},
		}
	case phaseExamSummary, phaseDrained, phaseError:
		return []layout.KeyHint{{Key: "Enter", Description: "Exit"}}
	default:
		return []layout.KeyHint{quit}
	}
}

func (m Model) content() string {
	switch m.phase {
	case phaseLoading:
		return m.centered(m.spin.View() + "  Drawing a question...")
	case phaseStep, phaseStepFeedback:
		return m.questionView()
	case phaseJudging:
		return m.centered(m.spin.View() + "  Judging your answers...")
	case phaseSummary:
		return m.summaryView()
	case phaseExamSummary:
		return m.examSummaryView()
	case phaseDrained:
		return m.centered("You have cleared every question in this tier. 🎉\n\nSeed more questions or raise the difficulty.")
	case phaseError:
		return m.centered(theme.Incorrect.Render("Something went wrong:") + "\n\n" + m.err.Error())
	}
	return ""
}

func (m Model) centered(s string) string {
	return lipgloss.NewStyle().
		Width(m.width).
		Height(layout.ContentHeight(m.height)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(s)
}

func (m Model) questionView() string {
	var b strings.Builder

	scenario := theme.Card.Width(m.width - 8).Render(
		theme.Subtitle.Align(lipgloss.Left).Render(m.scenarioLabel()) + "\n" +
			theme.Body.Render(m.sc.Question.Scenario),
	)
	b.WriteString(scenario)
	b.WriteString("\n\n")

	total := len(m.sc.Question.Steps)
	// StepIndex has already advanced past the step on screen once answered.
	idx := m.sc.StepIndex
	if m.phase == phaseStepFeedback && idx > 0 {
		idx--
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Step %d/%d", idx+1, total),
		float64(idx)/float64(total),
		false,
		m.width/2,
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(m.choice.View())

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (m Model) scenarioLabel() string {
	label := fmt.Sprintf("Scenario · %s", m.sc.Question.Difficulty.Label())
	if m.mode == ModeExam {
		label = fmt.Sprintf("Exam question %d/%d · %s",
			m.examIndex+1, len(m.exam.Questions), m.sc.Question.Difficulty.Label())
	}
	return label
}

func (m Model) summaryView() string {
	out := m.outcome
	var b strings.Builder

	if out.Outcome.Passed {
		b.WriteString(theme.Correct.Render("✔ PASSED"))
	} else {
		b.WriteString(theme.Incorrect.Render("✘ FAILED"))
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf("   score %.0f   +%d XP", out.Verdict.Total(), out.XPEarned)))
	if out.BonusXP > 0 {
		b.WriteString(theme.Body.Render(fmt.Sprintf("   +%d bonus", out.BonusXP)))
	}
	if out.Verdict.Simulated {
		b.WriteString(theme.Hint.Render("   (offline judge)"))
	}
	b.WriteString("\n\n")

	if out.Verdict.Feedback != "" {
		b.WriteString(theme.Body.Render(out.Verdict.Feedback))
		b.WriteString("\n\n")
	}
	for _, s := range out.Verdict.Strengths {
		b.WriteString(theme.Correct.Render("  + ") + theme.Body.Render(s) + "\n")
	}
	for _, s := range out.Verdict.Improvements {
		b.WriteString(theme.Incorrect.Render("  - ") + theme.Body.Render(s) + "\n")
	}
	b.WriteString("\n")

	for _, a := range out.Unlocked {
		b.WriteString(theme.Selected.Render(fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Name)) + "\n")
	}
	if out.LeveledUp {
		if req, ok := progression.LevelRequirement(out.Progress.Level); ok {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("⬆ Level up! You are now %s %s", req.Icon, req.Name)) + "\n")
		}
	}
	if out.ExamAvailable {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("A promotion exam for level %d is available: run `aiquest exam`", out.ExamTarget)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.xpBar())

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

func (m Model) examSummaryView() string {
	out := m.examOutcome
	var b strings.Builder

	if out.Result.Passed() {
		b.WriteString(theme.Correct.Render("✔ EXAM PASSED"))
	} else {
		b.WriteString(theme.Incorrect.Render("✘ EXAM FAILED"))
	}
	passed := 0
	for _, g := range out.Grades {
		if g.Outcome.Passed {
			passed++
		}
	}
	b.WriteString(theme.Body.Render(fmt.Sprintf(
		"   %d/%d questions   +%d XP",
		passed, len(out.Grades), out.XPEarned,
	)))
	b.WriteString("\n\n")

	for i, g := range out.Grades {
		mark := theme.Correct.Render("✔")
		if !g.Outcome.Passed {
			mark = theme.Incorrect.Render("✘")
		}
		b.WriteString(fmt.Sprintf("  %s  Q%d · %s\n", mark, i+1, g.Question.Difficulty.Label()))
	}
	b.WriteString("\n")

	if out.Promoted {
		if req, ok := progression.LevelRequirement(out.Progress.Level); ok {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("⬆ Promoted! You are now %s %s", req.Icon, req.Name)) + "\n")
		}
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf(
			"You need %.0f%% to pass. Keep practicing and try again.", progression.ExamPassRatio*100)) + "\n")
	}
	for _, a := range out.Unlocked {
		b.WriteString(theme.Selected.Render(fmt.Sprintf("%s Achievement unlocked: %s", a.Icon, a.Name)) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.xpBar())

	return lipgloss.NewStyle().Padding(1, 4).Render(b.String())
}

// xpBar renders progress toward the next level's XP threshold.
func (m Model) xpBar() string {
	next, ok := progression.LevelRequirement(m.progress.Level + 1)
	if !ok {
		return theme.Hint.Render("Top of the ladder.")
	}
	percent := float64(m.progress.XP) / float64(next.RequiredXP)
	if percent > 1 {
		percent = 1
	}
	bar := components.NewProgressBar(
		fmt.Sprintf("Level %d at %d XP", next.Level, next.RequiredXP),
		percent,
		true,
		m.width/2,
	)
	return bar.View()
}
