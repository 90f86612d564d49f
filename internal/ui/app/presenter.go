package app

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
)

// ProgramPresenter converts the session's view-update requests into Bubble
// Tea messages. It is attached to the program after construction; requests
// posted before Attach are dropped, which only happens before the first
// frame. Safe to call from the timer goroutine.
type ProgramPresenter struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewProgramPresenter() *ProgramPresenter {
	return &ProgramPresenter{}
}

func (p *ProgramPresenter) Attach(program *tea.Program) {
	p.mu.Lock()
	p.send = program.Send
	p.mu.Unlock()
}

func (p *ProgramPresenter) ShowConfig(prefill domain.QuizConfig) {
	p.post(ShowConfigMsg{Prefill: prefill})
}

func (p *ProgramPresenter) ShowTimerRunning(seconds int) {
	p.post(TimerRunningMsg{Seconds: seconds})
}

func (p *ProgramPresenter) ShowTimerStopped() {
	p.post(TimerStoppedMsg{})
}

func (p *ProgramPresenter) ShowQuiz(question string) {
	p.post(ShowQuizMsg{Question: question})
}

func (p *ProgramPresenter) ShowResult(result domain.Result) {
	p.post(ShowResultMsg{Result: result})
}

func (p *ProgramPresenter) ShowNotice(message string) {
	p.post(NoticeMsg{Text: message})
}

func (p *ProgramPresenter) post(msg tea.Msg) {
	p.mu.Lock()
	send := p.send
	p.mu.Unlock()
	if send == nil {
		return
	}
	send(msg)
}
