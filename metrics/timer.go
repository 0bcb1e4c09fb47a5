package metrics

import "time"

// Timer measures the duration of a single file decode.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() Timer {
	return Timer{start: time.Now()}
}

// Elapsed returns the time since the timer was started.
func (t Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
