package out

import (
	"context"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"
)

// SettingsStore persists the last-used quiz configuration.
//
// Load fails soft: a missing, unreadable, or malformed record yields the
// default config, never an error. Save may fail; callers decide whether a
// failed save blocks anything (it never blocks the countdown).
type SettingsStore interface {
	Load(ctx context.Context) domain.QuizConfig
	Save(ctx context.Context, cfg domain.QuizConfig) error
}

// Notifier delivers a short message to the user, best-effort. Implementations
// must not return errors and must not block: a failed primary channel falls
// back to an in-app indicator, and a failed fallback is dropped.
type Notifier interface {
	Notify(title, message string)
}

// Presenter receives view-update requests from the session. Implementations
// must be safe to call from the timer goroutine and must not block the
// session (fire a message, don't render in place).
type Presenter interface {
	ShowConfig(prefill domain.QuizConfig)
	ShowTimerRunning(seconds int)
	ShowTimerStopped()
	ShowQuiz(question string)
	ShowResult(result domain.Result)
	// ShowNotice surfaces a degraded-path message (failed save, notifier
	// fallback) without interrupting the current view.
	ShowNotice(message string)
}
