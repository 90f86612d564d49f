package quiz

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automatistsw/quiz-reminder-popup/internal/ui/theme"
)

// SubmitMsg carries the typed answer up to the root model.
type SubmitMsg struct {
	Answer string
}

type Model struct {
	question string
	answer   textinput.Model
	width    int
}

func New() Model {
	an := textinput.New()
	an.Placeholder = "your answer"
	an.CharLimit = 256
	return Model{answer: an}
}

// SetQuestion arms the prompt for a new quiz and focuses the answer field.
func (m *Model) SetQuestion(question string) tea.Cmd {
	m.question = question
	m.answer.SetValue("")
	return m.answer.Focus()
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			answer := m.answer.Value()
			return m, func() tea.Msg { return SubmitMsg{Answer: answer} }
		}
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	question := m.question
	if question == "" {
		question = theme.Muted.Render("(no question was configured)")
	}
	rows := []string{
		theme.Title.Render("Quiz"),
		"",
		question,
		"",
		m.answer.View(),
		"",
		theme.Muted.Render("enter:submit"),
	}
	return theme.PaneActive.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
