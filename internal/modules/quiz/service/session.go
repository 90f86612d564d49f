package service

import (
	"context"
	"sync"
	"time"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
	"github.com/automatistsw/quiz-reminder-popup/internal/platform/clock"
	apperrors "github.com/automatistsw/quiz-reminder-popup/internal/platform/errors"
)

const notifyTitle = "Quiz Reminder"

// Session is the quiz-reminder state machine. It owns the current mode, the
// active config, and the one countdown, and it is the only writer of any of
// them. Every intent and the timer callback serialize through one mutex, so
// handlers run to completion one event at a time.
type Session struct {
	clk       clock.Clock
	store     quizout.SettingsStore
	notifier  quizout.Notifier
	presenter quizout.Presenter

	mu         sync.Mutex
	countdown  *Countdown
	mode       domain.Mode
	active     domain.QuizConfig
	hasActive  bool
	lastAnswer string
}

func NewSession(clk clock.Clock, store quizout.SettingsStore, notifier quizout.Notifier, presenter quizout.Presenter) *Session {
	return &Session{
		clk:       clk,
		store:     store,
		notifier:  notifier,
		presenter: presenter,
		countdown: NewCountdown(clk),
		mode:      domain.ModeIdle,
	}
}

// Start moves Idle -> Timing: persists the config, arms the countdown, and
// asks the presentation to show the running timer. A failed save is reported
// through the presenter but never blocks the countdown. While not Idle the
// intent is rejected with no side effects at all.
func (s *Session) Start(ctx context.Context, cfg domain.QuizConfig) (saved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeIdle {
		return false, apperrors.ErrNotIdle
	}
	if err := cfg.Validate(); err != nil {
		return false, apperrors.ErrInvalidDuration
	}

	saved = true
	if err := s.store.Save(ctx, cfg); err != nil {
		saved = false
		s.presenter.ShowNotice("settings not saved: " + err.Error())
	}

	s.mode = domain.ModeTiming
	s.active = cfg
	s.hasActive = true
	s.countdown.Start(time.Duration(cfg.TimerSeconds)*time.Second, s.timerFired)
	s.presenter.ShowTimerRunning(cfg.TimerSeconds)
	return saved, nil
}

// Stop moves Timing -> Idle and cancels the countdown. After Stop returns the
// canceled run can never fire: the countdown generation is retired under its
// own lock, and a callback already past that check still finds the mode
// changed here.
func (s *Session) Stop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeTiming {
		return apperrors.ErrNotTiming
	}
	s.countdown.Cancel()
	s.mode = domain.ModeIdle
	s.presenter.ShowTimerStopped()
	return nil
}

// timerFired is the countdown callback: Timing -> Quizzing, one notification
// attempt, quiz prompt. Outside Timing it is a no-op; the single-shot
// countdown should make that unreachable, but a stray fire must not corrupt
// the cycle.
func (s *Session) timerFired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeTiming {
		return
	}
	s.mode = domain.ModeQuizzing
	s.notifier.Notify(notifyTitle, "Time is up!")
	s.presenter.ShowQuiz(s.active.Question)
}

// Submit moves Quizzing -> ShowingResult. The submitted answer is compared to
// the stored one exactly as typed and both are handed to the result view.
func (s *Session) Submit(_ context.Context, answer string) (domain.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeQuizzing {
		return domain.Result{}, apperrors.ErrNotQuizzing
	}
	s.lastAnswer = answer
	s.mode = domain.ModeShowingResult
	result := domain.NewResult(answer, s.active.Answer)
	s.presenter.ShowResult(result)
	return result, nil
}

// Reconfigure moves ShowingResult -> Idle, discards the finished cycle, and
// asks the presentation to show the config view pre-filled from the store.
func (s *Session) Reconfigure(ctx context.Context) (domain.QuizConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != domain.ModeShowingResult {
		return domain.QuizConfig{}, apperrors.ErrNotShowingResult
	}
	s.lastAnswer = ""
	s.active = domain.QuizConfig{}
	s.hasActive = false
	s.mode = domain.ModeIdle
	prefill := s.store.Load(ctx)
	s.presenter.ShowConfig(prefill)
	return prefill, nil
}

func (s *Session) Mode() domain.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// Snapshot reports the current mode and, while a cycle is live, its config.
func (s *Session) Snapshot() (domain.Mode, domain.QuizConfig, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode, s.active, s.hasActive
}

func (s *Session) TimerActive() bool {
	return s.countdown.Active()
}
