package entity

import (
	"maps"
	"math"
	"time"
)

// Outcome is the terminal result of a match. A zero Winner means a tie.
type Outcome struct {
	Winner Mark
}

func WinOutcome(winner Mark) Outcome {
	return Outcome{Winner: winner}
}

func TieOutcome() Outcome {
	return Outcome{Winner: EmptyCell}
}

func (that Outcome) IsTie() bool {
	return that.Winner == EmptyCell
}

// Streak counts consecutive wins by the same player. Player is empty when no streak is running.
type Streak struct {
	Player Mark `json:"player"`
	Count  int  `json:"count"`
}

// Statistics aggregates every recorded match of a session. Times are whole seconds;
// nil extremes are unset rather than zero.
type Statistics struct {
	TotalGames          int          `json:"totalGames"`
	WinsByPlayer        map[Mark]int `json:"winsByPlayer"`
	TieCount            int          `json:"tieCount"`
	CurrentStreak       Streak       `json:"currentStreak"`
	LongestStreak       Streak       `json:"longestStreak"`
	TotalMoves          int          `json:"totalMoves"`
	TotalElapsedTime    int64        `json:"totalElapsedTime"`
	BestGameTime        *int64       `json:"bestGameTime"`
	FastestWinTime      *int64       `json:"fastestWinTime"`
	AverageMovesPerGame float64      `json:"averageMovesPerGame"`
	LastRecordedMatch   string       `json:"lastRecordedMatch,omitempty"`

	GamesThisSession int `json:"-"`
}

func NewStatistics() *Statistics {
	return &Statistics{
		WinsByPlayer: map[Mark]int{PlayerX: 0, PlayerO: 0},
	}
}

// RecordOutcome folds one finished match into the aggregate. It reports false and
// changes nothing when matchID was already recorded.
func (that *Statistics) RecordOutcome(matchID string, outcome Outcome, elapsed time.Duration, movesPlayed int) bool {
	if matchID != "" && matchID == that.LastRecordedMatch {
		return false
	}

	if that.WinsByPlayer == nil {
		that.WinsByPlayer = make(map[Mark]int)
	}

	seconds := int64(elapsed / time.Second)

	that.TotalGames++
	that.GamesThisSession++

	if outcome.IsTie() {
		that.TieCount++
		that.CurrentStreak = Streak{}
	} else {
		that.WinsByPlayer[outcome.Winner]++

		if that.CurrentStreak.Player == outcome.Winner {
			that.CurrentStreak.Count++
		} else {
			that.CurrentStreak = Streak{Player: outcome.Winner, Count: 1}
		}

		if that.CurrentStreak.Count > that.LongestStreak.Count {
			that.LongestStreak = that.CurrentStreak
		}

		that.FastestWinTime = minSeconds(that.FastestWinTime, seconds)
	}

	that.TotalMoves += movesPlayed
	that.TotalElapsedTime += seconds
	that.BestGameTime = minSeconds(that.BestGameTime, seconds)
	that.AverageMovesPerGame = math.Round(float64(that.TotalMoves)/float64(that.TotalGames)*10) / 10
	that.LastRecordedMatch = matchID

	return true
}

// Clone returns a copy that shares no map or pointer with the receiver.
func (that *Statistics) Clone() Statistics {
	clone := *that
	clone.WinsByPlayer = maps.Clone(that.WinsByPlayer)
	clone.BestGameTime = cloneSeconds(that.BestGameTime)
	clone.FastestWinTime = cloneSeconds(that.FastestWinTime)

	return clone
}

// AverageGameTime returns the mean match length in whole seconds.
func (that *Statistics) AverageGameTime() int64 {
	if that.TotalGames == 0 {
		return 0
	}

	return int64(math.Round(float64(that.TotalElapsedTime) / float64(that.TotalGames)))
}

// Reset zeroes every counter and unsets the time extremes.
func (that *Statistics) Reset() {
	*that = *NewStatistics()
}

func cloneSeconds(seconds *int64) *int64 {
	if seconds == nil {
		return nil
	}

	value := *seconds

	return &value
}

func minSeconds(current *int64, candidate int64) *int64 {
	if current == nil || candidate < *current {
		return &candidate
	}

	return current
}
