package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/timer"
)

func pressKeys(t *testing.T, session *Session, codes ...string) Change {
	t.Helper()

	var last Change
	for _, code := range codes {
		change, err := session.Handle(Intent{Action: ActionKeyPress, Key: code})
		require.NoError(t, err, "key %s", code)
		last = change
	}

	return last
}

func TestMoveFocus(t *testing.T) {
	tests := []struct {
		name  string
		focus int
		code  string
		want  int
	}{
		{name: "up from center", focus: 4, code: KeyArrowUp, want: 1},
		{name: "up from top row stays", focus: 1, code: KeyArrowUp, want: 1},
		{name: "down from center", focus: 4, code: KeyArrowDown, want: 7},
		{name: "down from bottom row stays", focus: 8, code: KeyArrowDown, want: 8},
		{name: "left from left column stays", focus: 3, code: KeyArrowLeft, want: 3},
		{name: "right from center", focus: 4, code: KeyArrowRight, want: 5},
		{name: "right from right column stays", focus: 2, code: KeyArrowRight, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, moveFocus(tt.focus, tt.code))
		})
	}
}

func TestSession_PressKey(t *testing.T) {
	t.Run("Arrows move focus and enter keyboard mode", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)

		change := pressKeys(t, session, KeyArrowUp, KeyArrowUp, KeyArrowLeft)

		assert.Equal(t, EventFocusMoved, change.Event())
		assert.Equal(t, 0, session.Focus)
		assert.True(t, session.KeyboardMode)
	})

	t.Run("Enter places a mark on the focused cell", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)

		change := pressKeys(t, session, KeyArrowDown, KeyEnter)

		assert.Equal(t, EventMoveAccepted, change.Event())
		assert.Equal(t, entity.PlayerX, session.Match.Board[7])
	})

	t.Run("Space on an occupied cell is ignored", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)
		pressKeys(t, session, KeySpace)

		change := pressKeys(t, session, KeySpace)

		assert.Equal(t, EventKeyIgnored, change.Event())
		assert.Equal(t, 1, session.Match.MovesPlayed())
		assert.Equal(t, entity.PlayerO, session.Match.Turn)
	})

	t.Run("Undo key undoes only when history exists", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)

		assert.Equal(t, EventKeyIgnored, pressKeys(t, session, KeyUndo).Event())

		pressKeys(t, session, KeyEnter)
		assert.Equal(t, EventMoveUndone, pressKeys(t, session, KeyUndo).Event())
		assert.Equal(t, 0, session.Match.MovesPlayed())
	})

	t.Run("Only undo, pause and reset are processed outside a match", func(t *testing.T) {
		session, _ := newTestSession(t)

		assert.Equal(t, EventKeyIgnored, pressKeys(t, session, KeyArrowUp).Event())
		assert.Equal(t, EventKeyIgnored, pressKeys(t, session, KeyEnter).Event())
		assert.Equal(t, 4, session.Focus)
		assert.False(t, session.KeyboardMode)

		assert.Equal(t, EventTimerReset, pressKeys(t, session, KeyResetTimer).Event())
	})

	t.Run("Reset key re-centres focus", func(t *testing.T) {
		session, clock := newTestSession(t)
		startMatch(t, session)
		pressKeys(t, session, KeyArrowLeft, KeyEnter)
		clock.Advance(4 * time.Second)

		change := pressKeys(t, session, KeyResetTimer)

		assert.Equal(t, EventTimerReset, change.Event())
		assert.Equal(t, 4, session.Focus)
		assert.Equal(t, timer.StateStopped, session.Match.Timer().State())
	})

	t.Run("Pause key toggles the timer", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)
		pressKeys(t, session, KeyEnter)

		assert.Equal(t, EventTimerPaused, pressKeys(t, session, KeyPause).Event())
		assert.Equal(t, EventTimerResumed, pressKeys(t, session, KeyPause).Event())
	})

	t.Run("Escape leaves keyboard mode", func(t *testing.T) {
		session, _ := newTestSession(t)
		startMatch(t, session)
		pressKeys(t, session, KeyArrowRight)

		pressKeys(t, session, KeyEscape)

		assert.False(t, session.KeyboardMode)
		assert.Equal(t, 5, session.Focus)
	})
}
