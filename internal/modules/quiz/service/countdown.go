package service

import (
	"sync"
	"time"

	"github.com/automatistsw/quiz-reminder-popup/internal/platform/clock"
)

// Countdown is a single-shot, cancelable delay. It fires its callback at most
// once per Start; Cancel is idempotent and safe while not running. The
// generation counter keeps a late fire from a canceled run from ever reaching
// the callback.
type Countdown struct {
	clk clock.Clock

	mu     sync.Mutex
	timer  clock.Timer
	gen    uint64
	active bool
}

func NewCountdown(clk clock.Clock) *Countdown {
	return &Countdown{clk: clk}
}

// Start schedules fn after d. Callers must Cancel a running countdown first;
// Start on a running countdown supersedes it.
func (c *Countdown) Start(d time.Duration, fn func()) {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.active = true
	c.timer = c.clk.AfterFunc(d, func() {
		c.fire(gen, fn)
	})
	c.mu.Unlock()
}

func (c *Countdown) fire(gen uint64, fn func()) {
	c.mu.Lock()
	if !c.active || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.active = false
	c.mu.Unlock()
	fn()
}

func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.active = false
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Countdown) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}
