package main

import (
	"fmt"
	"os"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
)

// consolePresenter renders view-update requests as plain lines for the
// headless run command. The quiz prompt is handed over on a channel so the
// command can block until the countdown fires.
type consolePresenter struct {
	quizPrompt chan string
}

func newConsolePresenter() *consolePresenter {
	return &consolePresenter{quizPrompt: make(chan string, 1)}
}

func (p *consolePresenter) ShowConfig(domain.QuizConfig) {}

func (p *consolePresenter) ShowTimerRunning(seconds int) {
	fmt.Printf("Timer started (%ds)\n", seconds)
}

func (p *consolePresenter) ShowTimerStopped() {
	fmt.Println("Timer stopped")
}

func (p *consolePresenter) ShowQuiz(question string) {
	select {
	case p.quizPrompt <- question:
	default:
	}
}

func (p *consolePresenter) ShowResult(domain.Result) {}

func (p *consolePresenter) ShowNotice(message string) {
	_, _ = fmt.Fprintln(os.Stderr, message)
}
