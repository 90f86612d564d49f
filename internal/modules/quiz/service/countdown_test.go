package service_test

import (
	"testing"
	"time"

	"github.com/automatistsw/quiz-reminder-popup/internal/modules/quiz/service"
	"github.com/automatistsw/quiz-reminder-popup/internal/platform/clock"
)

// fakeClock hands out manually fireable timers so countdown behavior is
// deterministic. Fire simulates natural expiry of the most recent timer.
type fakeClock struct {
	now     time.Time
	armed   int
	lastDur time.Duration
	pending func()
	timers  []*fakeTimer
}

type fakeTimer struct {
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	already := t.stopped
	t.stopped = true
	return !already
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.armed++
	c.lastDur = d
	c.pending = f
	timer := &fakeTimer{}
	c.timers = append(c.timers, timer)
	return timer
}

func (c *fakeClock) fire() {
	if c.pending != nil {
		c.pending()
	}
}

func TestCountdownFiresOnce(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{}
	cd := service.NewCountdown(clk)

	fired := 0
	cd.Start(5*time.Second, func() { fired++ })
	if !cd.Active() {
		t.Fatalf("countdown should be active after start")
	}
	if clk.lastDur != 5*time.Second {
		t.Fatalf("expected 5s delay, got %v", clk.lastDur)
	}

	clk.fire()
	if fired != 1 {
		t.Fatalf("expected one fire, got %d", fired)
	}
	if cd.Active() {
		t.Fatalf("countdown should be inactive after expiry")
	}

	// A stray second delivery from the same timer must be dropped.
	clk.fire()
	if fired != 1 {
		t.Fatalf("duplicate delivery reached the callback: %d fires", fired)
	}
}

func TestCountdownCancelSuppressesLateFire(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{}
	cd := service.NewCountdown(clk)

	fired := 0
	cd.Start(time.Second, func() { fired++ })
	cd.Cancel()
	if cd.Active() {
		t.Fatalf("countdown should be inactive after cancel")
	}
	if !clk.timers[0].stopped {
		t.Fatalf("cancel should stop the underlying timer")
	}

	// Even if the platform timer already left the runnable in flight,
	// the retired generation must swallow it.
	clk.fire()
	if fired != 0 {
		t.Fatalf("canceled countdown fired anyway")
	}
}

func TestCountdownCancelIsIdempotent(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{}
	cd := service.NewCountdown(clk)

	cd.Cancel()
	cd.Cancel()
	if cd.Active() {
		t.Fatalf("never-started countdown should be inactive")
	}

	cd.Start(time.Second, func() {})
	cd.Cancel()
	cd.Cancel()
	if cd.Active() {
		t.Fatalf("countdown should stay inactive after repeated cancel")
	}
}

func TestCountdownRestartAfterCancel(t *testing.T) {
	t.Parallel()
	clk := &fakeClock{}
	cd := service.NewCountdown(clk)

	firstFired := false
	cd.Start(time.Second, func() { firstFired = true })
	cd.Cancel()

	secondFired := false
	cd.Start(2*time.Second, func() { secondFired = true })
	clk.fire()
	if firstFired {
		t.Fatalf("canceled run's callback must never run")
	}
	if !secondFired {
		t.Fatalf("restarted countdown should fire")
	}
}
