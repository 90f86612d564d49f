package bootstrap

import (
	tea "github.com/charmbracelet/bubbletea"

	quizinadapter "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/adapter/in"
	quizoutadapter "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/adapter/out"
	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
	quizservice "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/service"
	quizusecase "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/usecase"
	"github.com/automatistsw/quiz-reminder-popup/internal/platform/clock"
	"github.com/automatistsw/quiz-reminder-popup/internal/platform/config"
	uiapp "github.com/automatistsw/quiz-reminder-popup/internal/ui/app"
)

type App struct {
	Quiz quizinadapter.CLIHandler
}

// New wires the quiz module. The presenter is injected so the same wiring
// serves both the TUI and the headless commands; the notifier's fallback
// channel is the presenter's notice line, standing in for the tray balloon.
func New(cfg config.Config, presenter quizout.Presenter) *App {
	clk := clock.SystemClock{}
	store := quizoutadapter.NewFileSettingsStore(cfg.SettingsPath)
	notifier := quizoutadapter.NewDesktopNotifier(func(message string) {
		presenter.ShowNotice(message)
	})
	svc := quizservice.NewSession(clk, store, notifier, presenter)
	return &App{
		Quiz: quizinadapter.NewCLIHandler(quizusecase.NewInteractor(svc, store)),
	}
}

func RunTUI(cfg config.Config) error {
	presenter := uiapp.NewProgramPresenter()
	app := New(cfg, presenter)
	model := uiapp.NewModel(app.Quiz)
	program := tea.NewProgram(model, tea.WithAltScreen())
	presenter.Attach(program)
	_, err := program.Run()
	return err
}
