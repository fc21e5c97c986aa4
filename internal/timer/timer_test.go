package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	current time.Time
}

func (that *fakeClock) Now() time.Time {
	return that.current
}

func (that *fakeClock) Advance(d time.Duration) {
	that.current = that.current.Add(d)
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func TestTimer_Lifecycle(t *testing.T) {
	t.Run("Stopped timer reports zero", func(t *testing.T) {
		clock := newFakeClock()
		tm := New(clock.Now)

		clock.Advance(time.Minute)

		assert.Equal(t, StateStopped, tm.State())
		assert.Equal(t, time.Duration(0), tm.Elapsed())
	})

	t.Run("Running timer counts wall clock in whole seconds", func(t *testing.T) {
		clock := newFakeClock()
		tm := New(clock.Now)

		assert.True(t, tm.Start())
		clock.Advance(2500 * time.Millisecond)

		assert.Equal(t, StateRunning, tm.State())
		assert.Equal(t, 2*time.Second, tm.Elapsed())
	})

	t.Run("Paused time does not count", func(t *testing.T) {
		// Given: a timer that ran for 5 seconds
		clock := newFakeClock()
		tm := New(clock.Now)
		tm.Start()
		clock.Advance(5 * time.Second)

		// When: it is paused for a minute and resumed for 3 seconds
		assert.True(t, tm.Pause())
		clock.Advance(time.Minute)
		assert.Equal(t, 5*time.Second, tm.Elapsed())
		assert.True(t, tm.Resume())
		clock.Advance(3 * time.Second)

		// Then: only the running periods are counted
		assert.Equal(t, 8*time.Second, tm.Elapsed())
	})

	t.Run("Invalid transitions are ignored", func(t *testing.T) {
		clock := newFakeClock()
		tm := New(clock.Now)

		assert.False(t, tm.Pause())
		assert.False(t, tm.Resume())

		tm.Start()
		assert.False(t, tm.Start())
		assert.False(t, tm.Resume())
	})

	t.Run("Reset returns to stopped with zero elapsed", func(t *testing.T) {
		clock := newFakeClock()
		tm := New(clock.Now)
		tm.Start()
		clock.Advance(10 * time.Second)

		tm.Reset()

		assert.Equal(t, StateStopped, tm.State())
		assert.Equal(t, time.Duration(0), tm.Elapsed())
		assert.True(t, tm.Start())
	})

	t.Run("Restore rewinds accumulated time", func(t *testing.T) {
		clock := newFakeClock()
		tm := New(clock.Now)
		tm.Start()
		clock.Advance(30 * time.Second)

		tm.Restore(12 * time.Second)

		assert.Equal(t, 12*time.Second, tm.Elapsed())
		clock.Advance(time.Second)
		assert.Equal(t, 13*time.Second, tm.Elapsed())
	})
}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{name: "zero", in: 0, want: "00:00"},
		{name: "seconds", in: 7 * time.Second, want: "00:07"},
		{name: "minutes", in: 125 * time.Second, want: "02:05"},
		{name: "over an hour", in: 61 * time.Minute, want: "61:00"},
		{name: "negative clamps", in: -time.Second, want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTime(tt.in))
		})
	}
}
