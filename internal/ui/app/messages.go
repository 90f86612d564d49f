package app

import "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/domain"

// View-update requests posted by the session through the ProgramPresenter.
// These, not the intent results, drive which view is on screen.

type ShowConfigMsg struct{ Prefill domain.QuizConfig }

type TimerRunningMsg struct{ Seconds int }

type TimerStoppedMsg struct{}

type ShowQuizMsg struct{ Question string }

type ShowResultMsg struct{ Result domain.Result }

type NoticeMsg struct{ Text string }
