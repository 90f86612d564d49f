package out

import (
	"fmt"

	"github.com/gen2brain/beeep"

	quizout "github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/port/out"
)

// DesktopNotifier delivers through the platform notification channel and
// falls back to an in-app sink when that fails. It never reports failure to
// the caller; the worst case is a degraded notification, not a broken cycle.
type DesktopNotifier struct {
	deliver  func(title, message string) error
	fallback func(message string)
}

// NewDesktopNotifier builds a notifier backed by beeep. fallback receives the
// message when the platform channel is unavailable; a nil fallback drops it.
func NewDesktopNotifier(fallback func(message string)) quizout.Notifier {
	return NewNotifier(func(title, message string) error {
		return beeep.Notify(title, message, "")
	}, fallback)
}

// NewNotifier builds a notifier around an arbitrary primary channel.
func NewNotifier(deliver func(title, message string) error, fallback func(message string)) quizout.Notifier {
	return &DesktopNotifier{deliver: deliver, fallback: fallback}
}

func (n *DesktopNotifier) Notify(title, message string) {
	defer func() {
		// Some platform backends panic instead of returning an error; a
		// notification must never take the session down with it.
		if r := recover(); r != nil {
			n.dropTo(title, message)
		}
	}()
	if err := n.deliver(title, message); err != nil {
		n.dropTo(title, message)
	}
}

func (n *DesktopNotifier) dropTo(title, message string) {
	if n.fallback == nil {
		return
	}
	n.fallback(fmt.Sprintf("%s: %s", title, message))
}
