package usecase

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

func TestSession_Record(t *testing.T) {
	t.Run("Stored record restores players, settings and statistics", func(t *testing.T) {
		// Given: a session with one recorded win and a dark theme
		session, clock := newTestSession(t)
		startMatch(t, session)
		play(t, session, clock, 2*time.Second, 0, 3, 1, 4, 2)
		_, err := session.Handle(Intent{Action: ActionToggleTheme})
		require.NoError(t, err)

		blob, err := session.MarshalRecord()
		require.NoError(t, err)

		// When: a fresh session applies the record
		restored, _ := newTestSession(t)
		require.NoError(t, restored.ApplyRecord(blob))

		// Then: durable state is carried over and the match is not
		assert.Equal(t, session.Players, restored.Players)
		assert.Equal(t, entity.ThemeDark, restored.Settings.Theme)
		assert.Equal(t, 1, restored.Statistics.TotalGames)
		assert.Equal(t, "match-1", restored.Statistics.LastRecordedMatch)
		assert.Equal(t, session.Statistics.FastestWinTime, restored.Statistics.FastestWinTime)
		assert.Equal(t, 0, restored.Statistics.GamesThisSession)
		assert.Equal(t, entity.StatusNotStarted, restored.Match.Status)
	})

	t.Run("Record carries a timestamp", func(t *testing.T) {
		session, clock := newTestSession(t)

		blob, err := session.MarshalRecord()
		require.NoError(t, err)

		var record Record
		require.NoError(t, json.Unmarshal(blob, &record))
		assert.True(t, clock.Now().Equal(record.Timestamp))
	})

	t.Run("Broken fields fall back to defaults one by one", func(t *testing.T) {
		session, _ := newTestSession(t)
		blob := []byte(`{
			"players": [{"name": "Ann", "symbol": "O", "wins": "three"}],
			"settings": {"soundEnabled": false, "theme": "neon"},
			"statistics": {"totalGames": "many", "tieCount": 2, "winsByPlayer": null}
		}`)

		err := session.ApplyRecord(blob)

		require.Error(t, err)
		assert.Equal(t, "Ann", session.Players[0].Name)
		assert.Equal(t, entity.PlayerX, session.Players[0].Symbol)
		assert.Equal(t, 0, session.Players[0].Wins)
		assert.Equal(t, entity.DefaultPlayerTwoName, session.Players[1].Name)
		assert.Equal(t, entity.PlayerO, session.Players[1].Symbol)
		assert.False(t, session.Settings.SoundEnabled)
		assert.True(t, session.Settings.AnimationsEnabled)
		assert.Equal(t, entity.ThemeLight, session.Settings.Theme)
		assert.Equal(t, 0, session.Statistics.TotalGames)
		assert.Equal(t, 2, session.Statistics.TieCount)
		assert.NotNil(t, session.Statistics.WinsByPlayer)
	})

	t.Run("Unparsable record keeps every default", func(t *testing.T) {
		session, _ := newTestSession(t)

		err := session.ApplyRecord([]byte(`not json`))

		require.Error(t, err)
		assert.Equal(t, entity.DefaultPlayers(), session.Players)
		assert.Equal(t, entity.DefaultSettings(), session.Settings)
		assert.Equal(t, entity.NewStatistics(), session.Statistics)
	})
}

func TestSession_View(t *testing.T) {
	t.Run("Not started", func(t *testing.T) {
		session, _ := newTestSession(t)

		view := session.View()

		assert.Equal(t, entity.StatusNotStarted, view.Status)
		assert.Equal(t, "Click Start Game", view.Message)
		assert.Equal(t, "00:00", view.Timer)
		assert.Equal(t, "--", view.Statistics.BestGameTime)
		assert.Equal(t, "--", view.Statistics.FastestWinTime)
		assert.Equal(t, StreakView{Player: "None"}, view.Statistics.CurrentStreak)
		assert.False(t, view.UndoAvailable)
		assert.Equal(t, 4, view.Focus)
	})

	t.Run("In progress", func(t *testing.T) {
		session, clock := newTestSession(t)
		startMatch(t, session)
		play(t, session, clock, 65*time.Second, 4)

		view := session.View()

		assert.Equal(t, "Bob's turn", view.Message)
		assert.Equal(t, "Bob", view.ActivePlayer)
		assert.Equal(t, "X", view.Cells[4])
		assert.Equal(t, "01:05", view.Timer)
		assert.Equal(t, "running", view.TimerState)
		assert.True(t, view.UndoAvailable)
		assert.Equal(t, 2, view.MoveNumber)
		assert.Equal(t, 1, view.MovesPlayed)
	})

	t.Run("Won", func(t *testing.T) {
		session, clock := newTestSession(t)
		startMatch(t, session)
		play(t, session, clock, 3*time.Second, 0, 3, 1, 4, 2)

		view := session.View()

		assert.Equal(t, "Alice wins!", view.Message)
		assert.Equal(t, []int{0, 1, 2}, view.WinningLine)
		assert.Empty(t, view.ActivePlayer)
		assert.False(t, view.UndoAvailable)
		assert.Equal(t, 1, view.Players[0].Wins)
		assert.Equal(t, StreakView{Player: "Alice", Count: 1}, view.Statistics.CurrentStreak)
		assert.Equal(t, "00:12", view.Statistics.FastestWinTime)
		assert.Equal(t, "00:12", view.Statistics.AverageGameTime)
		assert.Equal(t, 1, view.Statistics.WinsByPlayer["X"])
		assert.Equal(t, 1, view.Statistics.GamesThisSession)
	})

	t.Run("Tied", func(t *testing.T) {
		session, clock := newTestSession(t)
		startMatch(t, session)
		play(t, session, clock, time.Second, 0, 1, 2, 4, 3, 5, 7, 6, 8)

		view := session.View()

		assert.Equal(t, "It's a tie!", view.Message)
		assert.Nil(t, view.WinningLine)
	})
}

func TestSession_Export(t *testing.T) {
	session, clock := newTestSession(t)
	startMatch(t, session)
	play(t, session, clock, time.Second, 0, 3, 1, 4, 2)

	export := session.Export()

	assert.Equal(t, ExportVersion, export.Version)
	assert.True(t, clock.Now().Equal(export.ExportDate))
	assert.Equal(t, "Alice", export.Players[0].Name)
	assert.Equal(t, 1, export.Statistics.TotalGames)

	blob, err := json.Marshal(export)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &fields))
	assert.Contains(t, fields, "players")
	assert.Contains(t, fields, "statistics")
	assert.Contains(t, fields, "exportDate")
	assert.JSONEq(t, `"2.0"`, string(fields["version"]))
}

func TestExportFileName(t *testing.T) {
	date := time.Date(2026, 3, 7, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "tic-tac-toe-stats-2026-03-07.json", ExportFileName(date))
}
