package out_test

import (
	"errors"
	"testing"

	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/adapter/out"
)

func TestNotifyUsesPrimaryChannel(t *testing.T) {
	t.Parallel()
	var delivered []string
	var fallbacks []string
	n := quizout.NewNotifier(func(title, message string) error {
		delivered = append(delivered, title+"/"+message)
		return nil
	}, func(message string) {
		fallbacks = append(fallbacks, message)
	})

	n.Notify("Quiz Reminder", "Time is up!")
	if len(delivered) != 1 || delivered[0] != "Quiz Reminder/Time is up!" {
		t.Fatalf("primary channel not used: %v", delivered)
	}
	if len(fallbacks) != 0 {
		t.Fatalf("fallback must not run when primary succeeds: %v", fallbacks)
	}
}

func TestNotifyFallsBackOnError(t *testing.T) {
	t.Parallel()
	var fallbacks []string
	n := quizout.NewNotifier(func(string, string) error {
		return errors.New("no notification daemon")
	}, func(message string) {
		fallbacks = append(fallbacks, message)
	})

	n.Notify("Quiz Reminder", "Time is up!")
	if len(fallbacks) != 1 || fallbacks[0] != "Quiz Reminder: Time is up!" {
		t.Fatalf("failed primary should reach the fallback: %v", fallbacks)
	}
}

func TestNotifyFallsBackOnPanic(t *testing.T) {
	t.Parallel()
	var fallbacks []string
	n := quizout.NewNotifier(func(string, string) error {
		panic("backend exploded")
	}, func(message string) {
		fallbacks = append(fallbacks, message)
	})

	n.Notify("Quiz Reminder", "Time is up!")
	if len(fallbacks) != 1 {
		t.Fatalf("panicking primary should reach the fallback: %v", fallbacks)
	}
}

func TestNotifyNeverPropagatesFailure(t *testing.T) {
	t.Parallel()
	// No fallback configured at all: delivery failure is simply dropped.
	n := quizout.NewNotifier(func(string, string) error {
		return errors.New("unavailable")
	}, nil)
	n.Notify("t", "m")
}
