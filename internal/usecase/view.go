package usecase

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/timer"
)

const (
	unsetTimePlaceholder = "--"
	noStreakHolder       = "None"
	messageNotStarted    = "Click Start Game"
	messageTie           = "It's a tie!"
)

type PlayerView struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
	Wins   int    `json:"wins"`
}

type StreakView struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

type StatisticsView struct {
	TotalGames          int            `json:"totalGames"`
	WinsByPlayer        map[string]int `json:"winsByPlayer"`
	TieCount            int            `json:"tieCount"`
	CurrentStreak       StreakView     `json:"currentStreak"`
	LongestStreak       StreakView     `json:"longestStreak"`
	TotalMoves          int            `json:"totalMoves"`
	AverageMovesPerGame float64        `json:"averageMovesPerGame"`
	TotalTime           string         `json:"totalTime"`
	AverageGameTime     string         `json:"averageGameTime"`
	BestGameTime        string         `json:"bestGameTime"`
	FastestWinTime      string         `json:"fastestWinTime"`
	GamesThisSession    int            `json:"gamesThisSession"`
}

// View is the rendering-ready projection of a session.
type View struct {
	Cells         [entity.BoardSize]string `json:"cells"`
	WinningLine   []int                    `json:"winningLine,omitempty"`
	ActivePlayer  string                   `json:"activePlayer"`
	Status        string                   `json:"status"`
	Message       string                   `json:"message"`
	MoveNumber    int                      `json:"moveNumber"`
	MovesPlayed   int                      `json:"movesPlayed"`
	Players       [2]PlayerView            `json:"players"`
	Statistics    StatisticsView           `json:"statistics"`
	Timer         string                   `json:"timer"`
	TimerState    string                   `json:"timerState"`
	UndoAvailable bool                     `json:"undoAvailable"`
	Settings      entity.Settings          `json:"settings"`
	Focus         int                      `json:"focus"`
	KeyboardMode  bool                     `json:"keyboardMode"`
}

func (that *Session) View() *View {
	match := that.Match

	view := &View{
		Status:        match.Status,
		Message:       that.message(),
		MoveNumber:    match.MoveNumber,
		MovesPlayed:   match.MovesPlayed(),
		Statistics:    that.statisticsView(),
		Timer:         match.Timer().Display(),
		TimerState:    string(match.Timer().State()),
		UndoAvailable: match.CanUndo(),
		Settings:      that.Settings,
		Focus:         that.Focus,
		KeyboardMode:  that.KeyboardMode,
	}

	for i, cell := range match.Board {
		view.Cells[i] = string(cell)
	}

	if match.WinningLine != nil {
		view.WinningLine = match.WinningLine[:]
	}

	if match.IsInProgress() {
		if active := match.ActivePlayer(); active != nil {
			view.ActivePlayer = active.Name
		}
	}

	for i, player := range that.Players {
		view.Players[i] = PlayerView{Name: player.Name, Symbol: string(player.Symbol), Wins: player.Wins}
	}

	return view
}

func (that *Session) message() string {
	match := that.Match

	switch match.Status {
	case entity.StatusInProgress:
		return fmt.Sprintf("%s's turn", match.ActivePlayer().Name)
	case entity.StatusWon:
		return fmt.Sprintf("%s wins!", match.WinnerPlayer().Name)
	case entity.StatusTied:
		return messageTie
	default:
		return messageNotStarted
	}
}

func (that *Session) statisticsView() StatisticsView {
	stats := that.Statistics

	wins := make(map[string]int, len(stats.WinsByPlayer))
	for mark, count := range stats.WinsByPlayer {
		wins[string(mark)] = count
	}

	return StatisticsView{
		TotalGames:          stats.TotalGames,
		WinsByPlayer:        wins,
		TieCount:            stats.TieCount,
		CurrentStreak:       that.streakView(stats.CurrentStreak),
		LongestStreak:       that.streakView(stats.LongestStreak),
		TotalMoves:          stats.TotalMoves,
		AverageMovesPerGame: stats.AverageMovesPerGame,
		TotalTime:           formatSeconds(stats.TotalElapsedTime),
		AverageGameTime:     formatSeconds(stats.AverageGameTime()),
		BestGameTime:        formatOptionalSeconds(stats.BestGameTime),
		FastestWinTime:      formatOptionalSeconds(stats.FastestWinTime),
		GamesThisSession:    stats.GamesThisSession,
	}
}

func (that *Session) streakView(streak entity.Streak) StreakView {
	holder := that.PlayerBySymbol(streak.Player)
	if holder == nil || streak.Count == 0 {
		return StreakView{Player: noStreakHolder}
	}

	return StreakView{Player: holder.Name, Count: streak.Count}
}

func formatSeconds(seconds int64) string {
	return timer.FormatTime(time.Duration(seconds) * time.Second)
}

func formatOptionalSeconds(seconds *int64) string {
	if seconds == nil {
		return unsetTimePlaceholder
	}

	return formatSeconds(*seconds)
}
