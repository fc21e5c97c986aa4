package usecase

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

// Record is the persisted shape of a session. The current match is never stored.
type Record struct {
	Players    [2]*entity.Player  `json:"players"`
	Settings   entity.Settings    `json:"settings"`
	Statistics *entity.Statistics `json:"statistics"`
	Timestamp  time.Time          `json:"timestamp"`
}

// MarshalRecord serializes the durable part of the session.
func (that *Session) MarshalRecord() ([]byte, error) {
	blob, err := json.Marshal(Record{
		Players:    that.Players,
		Settings:   that.Settings,
		Statistics: that.Statistics,
		Timestamp:  that.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session record: %w", err)
	}

	return blob, nil
}

// ApplyRecord merges a stored record over the session defaults field by field.
// Sections or fields that are missing or cannot be parsed keep their defaults;
// the returned error lists what was skipped and is informational only.
func (that *Session) ApplyRecord(blob []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(blob, &sections); err != nil {
		return fmt.Errorf("failed to unmarshal session record: %w", err)
	}

	var errs []error

	if raw, ok := sections["players"]; ok {
		errs = append(errs, that.applyPlayers(raw))
	}

	if raw, ok := sections["settings"]; ok {
		errs = append(errs, that.applySettings(raw))
	}

	if raw, ok := sections["statistics"]; ok {
		errs = append(errs, that.applyStatistics(raw))
	}

	return errors.Join(errs...)
}

func (that *Session) applyPlayers(raw json.RawMessage) error {
	var slots []json.RawMessage
	if err := json.Unmarshal(raw, &slots); err != nil {
		return fmt.Errorf("players: %w", err)
	}

	players := entity.DefaultPlayers()

	var errs []error
	for i := 0; i < len(slots) && i < len(players); i++ {
		if err := json.Unmarshal(slots[i], players[i]); err != nil {
			errs = append(errs, fmt.Errorf("players[%d]: %w", i, err))
		}
	}

	defaults := entity.DefaultPlayers()
	for i, player := range players {
		player.Symbol = defaults[i].Symbol
		if player.Name == "" {
			player.Name = defaults[i].Name
		}
		if player.Wins < 0 {
			player.Wins = 0
		}
	}

	that.Players = players

	return errors.Join(errs...)
}

func (that *Session) applySettings(raw json.RawMessage) error {
	settings := entity.DefaultSettings()
	err := json.Unmarshal(raw, &settings)

	if settings.Theme != entity.ThemeLight && settings.Theme != entity.ThemeDark {
		settings.Theme = entity.DefaultSettings().Theme
	}

	that.Settings = settings

	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	return nil
}

func (that *Session) applyStatistics(raw json.RawMessage) error {
	statistics := entity.NewStatistics()
	err := json.Unmarshal(raw, statistics)

	if statistics.WinsByPlayer == nil {
		statistics.WinsByPlayer = entity.NewStatistics().WinsByPlayer
	}
	statistics.GamesThisSession = 0

	that.Statistics = statistics

	if err != nil {
		return fmt.Errorf("statistics: %w", err)
	}

	return nil
}
