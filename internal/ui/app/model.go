package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	quizdto "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/dto"
	"github.com/automatistsw/quiz-reminder-popup/internal/ui/theme"
	configureview "github.com/automatistsw/quiz-reminder-popup/internal/ui/views/configure"
	quizview "github.com/automatistsw/quiz-reminder-popup/internal/ui/views/quiz"
	resultview "github.com/automatistsw/quiz-reminder-popup/internal/ui/views/result"
)

// ─── port ────────────────────────────────────────────────────────────────────
// The minimal intent surface this orchestration layer dispatches into.

type quizPort interface {
	Start(ctx context.Context, question, answer string, seconds int) (quizdto.StartOutput, error)
	Stop(ctx context.Context) error
	Submit(ctx context.Context, answer string) (quizdto.ResultOutput, error)
	Reconfigure(ctx context.Context) (quizdto.SettingsOutput, error)
	Settings(ctx context.Context) (quizdto.SettingsOutput, error)
}

// ─── async messages ──────────────────────────────────────────────────────────

type settingsLoadedMsg struct {
	settings quizdto.SettingsOutput
	err      error
}

type intentDoneMsg struct {
	err error
}

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Toggle key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "start/stop timer")),
		Help:   key.NewBinding(key.WithKeys("ctrl+h"), key.WithHelp("ctrl+h", "help")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Toggle}, {k.Help, k.Quit}}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It routes keystrokes to the view that
// matches the session's current mode and reacts to the presenter's
// view-update messages; it never mutates quiz state itself. The status bar
// doubles as the tray from the desktop build: run state on the left, the
// toggle and quit hints on the right.
type Model struct {
	quiz quizPort

	configView configureview.Model
	quizView   quizview.Model
	resultView resultview.Model

	mode         domain.Mode
	timerSeconds int
	spinner      spinner.Model
	keys         keyMap
	help         help.Model
	showHelp     bool
	status       string
	notice       string
	width        int
	height       int
}

func NewModel(quiz quizPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{
		quiz:        quiz,
		configView:  configureview.New(),
		quizView:    quizview.New(),
		resultView:  resultview.New(),
		mode:        domain.ModeIdle,
		spinner:     sp,
		keys:        defaultKeys(),
		help:        help.New(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.configView.Init(), m.loadSettingsCmd())
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = m.width
		return m.propagate(msg)

	case settingsLoadedMsg:
		if msg.err != nil {
			m.notice = "settings: " + msg.err.Error()
			return m, nil
		}
		m.configView.Prefill(msg.settings)
		return m, nil

	// ── view-update requests from the session ──

	case TimerRunningMsg:
		m.mode = domain.ModeTiming
		m.timerSeconds = msg.Seconds
		m.status = fmt.Sprintf("timer running (%ds)", msg.Seconds)
		return m, m.spinner.Tick

	case TimerStoppedMsg:
		m.mode = domain.ModeIdle
		m.status = "timer stopped"
		return m, nil

	case ShowQuizMsg:
		m.mode = domain.ModeQuizzing
		m.status = "quiz in progress"
		return m, tea.Batch(m.quizView.SetQuestion(msg.Question), m.quizView.Init())

	case ShowResultMsg:
		m.mode = domain.ModeShowingResult
		m.resultView.SetResult(msg.Result)
		m.status = "result"
		return m, nil

	case ShowConfigMsg:
		m.mode = domain.ModeIdle
		m.configView.Prefill(quizdto.SettingsOutput{
			Question: msg.Prefill.Question,
			Answer:   msg.Prefill.Answer,
			Seconds:  msg.Prefill.TimerSeconds,
		})
		m.status = "ready"
		return m, nil

	case NoticeMsg:
		m.notice = msg.Text
		return m, nil

	// ── intents bubbling up from views ──

	case configureview.StartMsg:
		seconds, err := strconv.Atoi(strings.TrimSpace(msg.SecondsRaw))
		if err != nil || seconds < domain.MinTimerSeconds || seconds > domain.MaxTimerSeconds {
			m.status = fmt.Sprintf("timer must be %d-%d seconds", domain.MinTimerSeconds, domain.MaxTimerSeconds)
			return m, nil
		}
		return m, m.startCmd(msg.Question, msg.Answer, seconds)

	case quizview.SubmitMsg:
		return m, m.submitCmd(msg.Answer)

	case resultview.AgainMsg:
		return m, m.reconfigureCmd()

	case intentDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		}
		return m, nil

	case spinner.TickMsg:
		if m.mode != domain.ModeTiming {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			return m, m.toggleCmd()
		}
	}

	return m.routeToActiveView(msg)
}

// toggleCmd is the tray toggle: start from Idle with the current form
// contents, stop from Timing, nothing otherwise.
func (m Model) toggleCmd() tea.Cmd {
	switch m.mode {
	case domain.ModeIdle:
		return m.configView.Submit()
	case domain.ModeTiming:
		return func() tea.Msg {
			return intentDoneMsg{err: m.quiz.Stop(context.Background())}
		}
	}
	return nil
}

func (m Model) routeToActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case domain.ModeIdle:
		m.configView, cmd = m.configView.Update(msg)
	case domain.ModeQuizzing:
		m.quizView, cmd = m.quizView.Update(msg)
	case domain.ModeShowingResult:
		m.resultView, cmd = m.resultView.Update(msg)
	}
	return m, cmd
}

func (m Model) propagate(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.configView, cmd = m.configView.Update(msg)
	cmds = append(cmds, cmd)
	m.quizView, cmd = m.quizView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	statusBar := m.renderStatusBar()

	contentH := m.height - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = m.help.View(m.keys)
	case m.mode == domain.ModeTiming:
		content = m.renderTiming()
	case m.mode == domain.ModeQuizzing:
		content = m.quizView.View()
	case m.mode == domain.ModeShowingResult:
		content = m.resultView.View()
	default:
		content = m.configView.View()
	}

	if m.width > 0 {
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, content)
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) renderTiming() string {
	rows := []string{
		theme.Title.Render("Timer running"),
		"",
		m.spinner.View() + fmt.Sprintf(" quiz in up to %ds", m.timerSeconds),
		"",
		theme.Muted.Render("ctrl+t:stop"),
	}
	return theme.PaneActive.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.notice != "" {
		left += "  " + theme.Notice.Render(m.notice)
	}
	right := theme.Muted.Render("ctrl+t:toggle  ctrl+h:help  ctrl+c:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().Background(theme.Field).Width(m.width).Render(bar)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.quiz.Settings(context.Background())
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m Model) startCmd(question, answer string, seconds int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.quiz.Start(context.Background(), question, answer, seconds)
		return intentDoneMsg{err: err}
	}
}

func (m Model) submitCmd(answer string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.quiz.Submit(context.Background(), answer)
		return intentDoneMsg{err: err}
	}
}

func (m Model) reconfigureCmd() tea.Cmd {
	return func() tea.Msg {
		_, err := m.quiz.Reconfigure(context.Background())
		return intentDoneMsg{err: err}
	}
}
