package configure

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	quizdto "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/dto"
	"github.com/automatistsw/quiz-reminder-popup/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────

// StartMsg carries the form contents up to the root model, which parses the
// seconds field and dispatches the start intent.
type StartMsg struct {
	Question   string
	Answer     string
	SecondsRaw string
}

// ─── focus order ─────────────────────────────────────────────────────────────

const (
	focusQuestion = iota
	focusAnswer
	focusSeconds
	focusCount
)

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	question textarea.Model
	answer   textinput.Model
	seconds  textinput.Model
	focus    int
	width    int
}

func New() Model {
	qa := textarea.New()
	qa.Placeholder = "What do you want to be asked?"
	qa.SetHeight(4)
	qa.Focus()

	an := textinput.New()
	an.Placeholder = "expected answer"
	an.CharLimit = 256

	sec := textinput.New()
	sec.Placeholder = fmt.Sprintf("%d", domain.DefaultTimerSeconds)
	sec.CharLimit = 4
	sec.SetValue(fmt.Sprintf("%d", domain.DefaultTimerSeconds))

	return Model{question: qa, answer: an, seconds: sec}
}

// Prefill loads the stored settings into the form.
func (m *Model) Prefill(s quizdto.SettingsOutput) {
	m.question.SetValue(s.Question)
	m.answer.SetValue(s.Answer)
	m.seconds.SetValue(fmt.Sprintf("%d", s.Seconds))
}

// Reset clears the form back to its initial state.
func (m *Model) Reset() {
	m.question.SetValue("")
	m.answer.SetValue("")
	m.seconds.SetValue(fmt.Sprintf("%d", domain.DefaultTimerSeconds))
	m.setFocus(focusQuestion)
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := m.width - 10
		if w < 20 {
			w = 20
		}
		m.question.SetWidth(min(w, 60))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.setFocus((m.focus + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focus + focusCount - 1) % focusCount)
			return m, nil
		case "ctrl+r":
			m.Reset()
			return m, nil
		case "enter":
			// Enter inside the question textarea inserts a newline; from
			// the other fields it submits the form.
			if m.focus != focusQuestion {
				return m, m.startCmd()
			}
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusQuestion:
		m.question, cmd = m.question.Update(msg)
	case focusAnswer:
		m.answer, cmd = m.answer.Update(msg)
	case focusSeconds:
		m.seconds, cmd = m.seconds.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	rows := []string{
		theme.Title.Render("Quiz Reminder Settings"),
		"",
		m.field("Question", m.question.View(), m.focus == focusQuestion),
		m.field("Answer", m.answer.View(), m.focus == focusAnswer),
		m.field("Timer (s)", m.seconds.View(), m.focus == focusSeconds),
		"",
		theme.Muted.Render("enter:start  ctrl+r:reset  tab:next field"),
	}
	return theme.Pane.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Submit emits the form contents as a StartMsg, used by the root model's
// start/stop toggle so it behaves exactly like pressing enter in the form.
func (m Model) Submit() tea.Cmd {
	return m.startCmd()
}

func (m Model) startCmd() tea.Cmd {
	msg := StartMsg{
		Question:   m.question.Value(),
		Answer:     m.answer.Value(),
		SecondsRaw: m.seconds.Value(),
	}
	return func() tea.Msg { return msg }
}

func (m Model) field(label, body string, active bool) string {
	style := theme.Muted
	if active {
		style = theme.Title
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(label), body)
}

func (m *Model) setFocus(f int) {
	m.focus = f
	m.question.Blur()
	m.answer.Blur()
	m.seconds.Blur()
	switch f {
	case focusQuestion:
		m.question.Focus()
	case focusAnswer:
		m.answer.Focus()
	case focusSeconds:
		m.seconds.Focus()
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
