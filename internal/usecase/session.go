package usecase

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/tictactoe"
)

const centerCell = 4

// Session is everything one browser plays with: the two player slots, settings,
// the running statistics and the current match.
type Session struct {
	ID         string
	Players    [2]*entity.Player
	Settings   entity.Settings
	Statistics *entity.Statistics
	Match      *tictactoe.Match

	Focus        int
	KeyboardMode bool

	now     func() time.Time
	matchID func() string
}

// NewSession creates a session holding defaults. A nil clock means time.Now.
func NewSession(id string, clock func() time.Time) *Session {
	if clock == nil {
		clock = time.Now
	}

	return &Session{
		ID:         id,
		Players:    entity.DefaultPlayers(),
		Settings:   entity.DefaultSettings(),
		Statistics: entity.NewStatistics(),
		Match:      tictactoe.NewMatch(clock),
		Focus:      centerCell,
		now:        clock,
		matchID:    pkg.GenerateMatchID,
	}
}

// Handle applies one intent. A rejected intent leaves the session unchanged.
func (that *Session) Handle(intent Intent) (Change, error) {
	switch intent.Action {
	case ActionCellClick:
		cell := -1
		if intent.Cell != nil {
			cell = *intent.Cell
		}
		return that.clickCell(cell)
	case ActionNewMatch:
		return that.startNewMatch(intent.PlayerOne, intent.PlayerTwo)
	case ActionUndo:
		return that.undo()
	case ActionPauseTimer:
		return that.togglePause(), nil
	case ActionResetTimer:
		return that.resetTimer(), nil
	case ActionResetScores:
		return that.resetScores(), nil
	case ActionClearData:
		return that.clearAllData(), nil
	case ActionToggleSound:
		that.Settings.ToggleSound()
		return Change{event: EventSettingsChanged, persist: true}, nil
	case ActionToggleAnimations:
		that.Settings.ToggleAnimations()
		return Change{event: EventSettingsChanged, persist: true}, nil
	case ActionToggleTheme:
		that.Settings.ToggleTheme()
		return Change{event: EventSettingsChanged, persist: true}, nil
	case ActionKeyPress:
		return that.pressKey(intent.Key)
	default:
		return Change{}, fmt.Errorf("%w: %q", apperror.ErrUnknownIntent, intent.Action)
	}
}

func (that *Session) clickCell(cell int) (Change, error) {
	result, err := that.Match.MakeTurn(cell)
	if err != nil {
		return Change{}, fmt.Errorf("failed to make turn: %w", err)
	}

	if !result.Ended() {
		return Change{event: EventMoveAccepted, moved: true}, nil
	}

	event := EventMatchTied
	if result.Kind == tictactoe.ResultMatchWon {
		event = EventMatchWon
	}

	outcome, _ := that.Match.Outcome()
	recorded := that.Statistics.RecordOutcome(
		that.Match.ID,
		outcome,
		that.Match.Timer().Elapsed(),
		that.Match.MovesPlayed(),
	)

	return Change{event: event, moved: true, ended: recorded, persist: true}, nil
}

func (that *Session) startNewMatch(nameOne, nameTwo string) (Change, error) {
	nameOne, nameTwo, err := ValidatePlayerNames(nameOne, nameTwo)
	if err != nil {
		return Change{}, err
	}

	that.Players[0].Name = nameOne
	that.Players[1].Name = nameTwo
	that.Match.Start(that.matchID(), that.Players[0], that.Players[1])
	that.Focus = centerCell

	return Change{event: EventMatchStarted, persist: true}, nil
}

func (that *Session) undo() (Change, error) {
	if err := that.Match.Undo(); err != nil {
		return Change{}, fmt.Errorf("failed to undo: %w", err)
	}

	return Change{event: EventMoveUndone, undone: true}, nil
}

// togglePause flips a running timer to paused and back. Outside a match, or
// before the first move, it does nothing.
func (that *Session) togglePause() Change {
	timer := that.Match.Timer()
	if !that.Match.IsInProgress() {
		return Change{event: EventKeyIgnored}
	}

	if timer.Pause() {
		return Change{event: EventTimerPaused}
	}

	if timer.Resume() {
		return Change{event: EventTimerResumed}
	}

	return Change{event: EventKeyIgnored}
}

func (that *Session) resetTimer() Change {
	that.Match.Timer().Reset()
	that.Focus = centerCell

	return Change{event: EventTimerReset}
}

func (that *Session) resetScores() Change {
	for _, player := range that.Players {
		player.Wins = 0
	}
	that.Statistics.Reset()

	return Change{event: EventScoresReset, persist: true}
}

func (that *Session) clearAllData() Change {
	that.Players = entity.DefaultPlayers()
	that.Settings = entity.DefaultSettings()
	that.Statistics.Reset()
	that.Match.Abandon()
	that.Focus = centerCell
	that.KeyboardMode = false

	return Change{event: EventDataCleared, clear: true}
}

// PlayerBySymbol returns the slot playing mark, or nil for an empty mark.
func (that *Session) PlayerBySymbol(mark entity.Mark) *entity.Player {
	for _, player := range that.Players {
		if player.Symbol == mark {
			return player
		}
	}

	return nil
}
