package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/haneul/aiquest/internal/quiz"
	"github.com/haneul/aiquest/internal/ui/theme"
)

// MultiChoice renders one quiz step's options and handles selection. After
// submission it reveals the answer key and the feedback authored on the
// chosen option.
type MultiChoice struct {
	Prompt    string
	Options   []quiz.Option
	Selected  int
	Submitted bool
	ChosenID  string
}

// NewMultiChoice creates a selector for one step.
func NewMultiChoice(step quiz.Step) MultiChoice {
	prompt := step.Text
	if step.Title != "" {
		prompt = step.Title + "\n" + step.Text
	}
	return MultiChoice{
		Prompt:  prompt,
		Options: step.Options,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
	case "enter":
		m.Submitted = true
		m.ChosenID = m.Options[m.Selected].ID
	}

	return m, nil
}

// View renders the step prompt and its options.
func (m MultiChoice) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Prompt) + "\n\n"

	correctID := ""
	if key, ok := (quiz.Step{Options: m.Options}).CorrectOption(); ok {
		correctID = key.ID
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, opt.ID, opt.Text)

		switch {
		case m.Submitted && opt.ID == correctID:
			s += theme.Correct.Render(line) + "\n"
		case m.Submitted && opt.ID == m.ChosenID:
			s += theme.Incorrect.Render(line) + "\n"
		case m.Submitted:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == m.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	if m.Submitted {
		if note := m.chosenFeedback(); note != "" {
			s += "\n" + theme.Hint.Render(note) + "\n"
		}
	}

	return s
}

// chosenFeedback returns the feedback text of the selected option.
func (m MultiChoice) chosenFeedback() string {
	for _, opt := range m.Options {
		if opt.ID == m.ChosenID {
			return opt.Feedback
		}
	}
	return ""
}

// IsCorrect reports whether the chosen option carries full answer weight.
func (m MultiChoice) IsCorrect() bool {
	if !m.Submitted {
		return false
	}
	for _, opt := range m.Options {
		if opt.ID == m.ChosenID {
			return opt.Weight == 1.0
		}
	}
	return false
}
