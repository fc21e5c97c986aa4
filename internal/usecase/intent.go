package usecase

const (
	ActionCellClick        = "cell:click"
	ActionNewMatch         = "match:new"
	ActionUndo             = "move:undo"
	ActionPauseTimer       = "timer:pause"
	ActionResetTimer       = "timer:reset"
	ActionResetScores      = "scores:reset"
	ActionClearData        = "data:clear"
	ActionToggleSound      = "settings:sound"
	ActionToggleAnimations = "settings:animations"
	ActionToggleTheme      = "settings:theme"
	ActionKeyPress         = "key:press"
)

const (
	EventMatchStarted    = "match:started"
	EventMoveAccepted    = "move:accepted"
	EventMatchWon        = "match:won"
	EventMatchTied       = "match:tied"
	EventMoveUndone      = "move:undone"
	EventTimerPaused     = "timer:paused"
	EventTimerResumed    = "timer:resumed"
	EventTimerReset      = "timer:reset"
	EventScoresReset     = "scores:reset"
	EventDataCleared     = "data:cleared"
	EventSettingsChanged = "settings:changed"
	EventFocusMoved      = "focus:moved"
	EventKeyIgnored      = "key:ignored"
)

// Intent is a single user action forwarded by a transport.
type Intent struct {
	Action    string `json:"action"`
	Cell      *int   `json:"cell,omitempty"`
	PlayerOne string `json:"playerOne,omitempty"`
	PlayerTwo string `json:"playerTwo,omitempty"`
	Key       string `json:"key,omitempty"`
}

// Result is what a transport receives after an intent was applied.
type Result struct {
	Event   string `json:"event,omitempty"`
	View    *View  `json:"view"`
	Warning string `json:"warning,omitempty"`
}

// Change describes what an applied intent did to a session and which side
// effects it needs.
type Change struct {
	event   string
	persist bool
	clear   bool
	moved   bool
	undone  bool
	ended   bool
}

func (that Change) Event() string {
	return that.event
}
