package entity

import "time"

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusWon        = "won"
	StatusTied       = "tied"
)

// Snapshot is the match state captured right before a move, used to undo it.
type Snapshot struct {
	Board        Board
	ActivePlayer Mark
	MoveNumber   int
	Elapsed      time.Duration
}
