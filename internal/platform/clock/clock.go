package clock

import "time"

// Timer is a handle to a pending single-shot callback.
type Timer interface {
	// Stop cancels the pending fire. It reports whether the call prevented
	// the callback from running.
	Stop() bool
}

// Clock abstracts time to keep the session deterministic in tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
