package timer

import (
	"fmt"
	"time"
)

type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
	StatePaused  State = "paused"
)

// Timer tracks the elapsed play time of one match.
type Timer struct {
	now func() time.Time

	state       State
	anchor      time.Time
	accumulated time.Duration
}

// New creates a stopped timer. A nil clock means time.Now.
func New(now func() time.Time) *Timer {
	if now == nil {
		now = time.Now
	}

	return &Timer{
		now:   now,
		state: StateStopped,
	}
}

func (that *Timer) State() State {
	return that.state
}

// Start moves a stopped timer to running. It reports whether the state changed.
func (that *Timer) Start() bool {
	if that.state != StateStopped {
		return false
	}

	that.state = StateRunning
	that.anchor = that.now()

	return true
}

// Pause folds the running delta into the accumulated time.
func (that *Timer) Pause() bool {
	if that.state != StateRunning {
		return false
	}

	that.accumulated += that.now().Sub(that.anchor)
	that.state = StatePaused

	return true
}

func (that *Timer) Resume() bool {
	if that.state != StatePaused {
		return false
	}

	that.state = StateRunning
	that.anchor = that.now()

	return true
}

func (that *Timer) Reset() {
	that.state = StateStopped
	that.anchor = time.Time{}
	that.accumulated = 0
}

// Elapsed returns the whole seconds played so far.
func (that *Timer) Elapsed() time.Duration {
	elapsed := that.accumulated
	if that.state == StateRunning {
		elapsed += that.now().Sub(that.anchor)
	}

	return elapsed.Truncate(time.Second)
}

// Restore rewinds the accumulated time, keeping the current state.
func (that *Timer) Restore(elapsed time.Duration) {
	that.accumulated = elapsed
	if that.state == StateRunning {
		that.anchor = that.now()
	}
}

// Display renders the elapsed time as MM:SS.
func (that *Timer) Display() string {
	return FormatTime(that.Elapsed())
}

// FormatTime renders d as zero-padded minutes and seconds. Minutes are not capped at 59.
func FormatTime(d time.Duration) string {
	total := int64(d / time.Second)
	if total < 0 {
		total = 0
	}

	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
