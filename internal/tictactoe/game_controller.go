package tictactoe

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/history"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/timer"
)

const (
	ResultMoveAccepted = "move:accepted"
	ResultMatchWon     = "match:won"
	ResultMatchTied    = "match:tied"
)

// MoveResult describes what an accepted move did to the match.
type MoveResult struct {
	Kind   string
	Cell   int
	Winner *entity.Player
	Line   entity.Line
}

func (that MoveResult) Ended() bool {
	return that.Kind == ResultMatchWon || that.Kind == ResultMatchTied
}

// Match is the turn state machine of a single round. It owns the board, the undo
// history and the match timer.
type Match struct {
	ID          string
	Board       entity.Board
	Status      string
	MoveNumber  int
	Turn        entity.Mark
	Winner      entity.Mark
	WinningLine *entity.Line

	players [2]*entity.Player
	history *history.Stack
	timer   *timer.Timer
}

// NewMatch creates a match that has not started yet. A nil clock means time.Now.
func NewMatch(clock func() time.Time) *Match {
	return &Match{
		Status:  entity.StatusNotStarted,
		Turn:    entity.PlayerX,
		history: history.New(history.DefaultDepth),
		timer:   timer.New(clock),
	}
}

// Start begins a fresh match. playerA holds X and always moves first.
func (that *Match) Start(id string, playerA, playerB *entity.Player) {
	that.ID = id
	that.players = [2]*entity.Player{playerA, playerB}
	that.Board.Reset()
	that.Status = entity.StatusInProgress
	that.MoveNumber = 1
	that.Turn = playerA.Symbol
	that.Winner = entity.EmptyCell
	that.WinningLine = nil
	that.history.Clear()
	that.timer.Reset()
}

// Abandon drops the match back to not started.
func (that *Match) Abandon() {
	that.ID = ""
	that.Board.Reset()
	that.Status = entity.StatusNotStarted
	that.MoveNumber = 0
	that.Turn = entity.PlayerX
	that.Winner = entity.EmptyCell
	that.WinningLine = nil
	that.history.Clear()
	that.timer.Reset()
}

func (that *Match) MakeTurn(cell int) (MoveResult, error) {
	if !that.IsInProgress() {
		return MoveResult{}, apperror.ErrGameNotActive
	}

	snapshot := that.snapshot()

	if err := that.Board.Place(cell, that.Turn); err != nil {
		return MoveResult{}, fmt.Errorf("%w: %w", apperror.ErrIllegalMove, err)
	}

	that.history.Push(snapshot)
	that.timer.Start()

	if line, ok := that.Board.WinningLine(); ok {
		winner := that.ActivePlayer()
		winner.Wins++

		that.Status = entity.StatusWon
		that.Winner = that.Turn
		that.WinningLine = &line
		that.timer.Pause()

		return MoveResult{Kind: ResultMatchWon, Cell: cell, Winner: winner, Line: line}, nil
	}

	if that.Board.IsFull() {
		that.Status = entity.StatusTied
		that.timer.Pause()

		return MoveResult{Kind: ResultMatchTied, Cell: cell}, nil
	}

	that.MoveNumber++
	that.Turn = that.Turn.Opponent()

	return MoveResult{Kind: ResultMoveAccepted, Cell: cell}, nil
}

// Undo restores the state captured before the most recent move. Finished matches
// cannot be undone.
func (that *Match) Undo() error {
	if !that.IsInProgress() {
		return fmt.Errorf("%w: match is not in progress", apperror.ErrNoHistory)
	}

	snapshot, ok := that.history.Pop()
	if !ok {
		return apperror.ErrNoHistory
	}

	that.Board = snapshot.Board
	that.Turn = snapshot.ActivePlayer
	that.MoveNumber = snapshot.MoveNumber
	that.timer.Restore(snapshot.Elapsed)

	return nil
}

func (that *Match) snapshot() entity.Snapshot {
	return entity.Snapshot{
		Board:        that.Board,
		ActivePlayer: that.Turn,
		MoveNumber:   that.MoveNumber,
		Elapsed:      that.timer.Elapsed(),
	}
}

// ActivePlayer returns the player whose mark is to move, or nil before the first start.
func (that *Match) ActivePlayer() *entity.Player {
	for _, player := range that.players {
		if player != nil && player.Symbol == that.Turn {
			return player
		}
	}

	return nil
}

// WinnerPlayer returns the winning player of a won match.
func (that *Match) WinnerPlayer() *entity.Player {
	if that.Status != entity.StatusWon {
		return nil
	}

	for _, player := range that.players {
		if player != nil && player.Symbol == that.Winner {
			return player
		}
	}

	return nil
}

// Outcome reports the terminal result; ok is false while the match is not finished.
func (that *Match) Outcome() (entity.Outcome, bool) {
	switch that.Status {
	case entity.StatusWon:
		return entity.WinOutcome(that.Winner), true
	case entity.StatusTied:
		return entity.TieOutcome(), true
	default:
		return entity.Outcome{}, false
	}
}

func (that *Match) IsInProgress() bool {
	return that.Status == entity.StatusInProgress
}

func (that *Match) IsFinished() bool {
	return that.Status == entity.StatusWon || that.Status == entity.StatusTied
}

func (that *Match) CanUndo() bool {
	return that.IsInProgress() && that.history.Len() > 0
}

func (that *Match) MovesPlayed() int {
	return that.Board.Occupied()
}

func (that *Match) Timer() *timer.Timer {
	return that.timer
}
