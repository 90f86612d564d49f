package result

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	"github.com/automatistsw/quiz-reminder-popup/internal/ui/theme"
)

// AgainMsg asks the root model to dispatch the reconfigure intent.
type AgainMsg struct{}

type Model struct {
	result domain.Result
}

func New() Model {
	return Model{}
}

func (m *Model) SetResult(r domain.Result) {
	m.result = r
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
		return m, func() tea.Msg { return AgainMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	verdict := theme.Miss.Render("✗ no match")
	if m.result.Match {
		verdict = theme.Match.Render("✓ match")
	}
	rows := []string{
		theme.Title.Render("Result"),
		"",
		"Your answer:    " + m.result.UserAnswer,
		"Correct answer: " + m.result.CorrectAnswer,
		"",
		verdict,
		"",
		theme.Muted.Render("enter:configure again"),
	}
	return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
