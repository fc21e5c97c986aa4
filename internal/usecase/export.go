package usecase

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const ExportVersion = "2.0"

// Export is the downloadable statistics snapshot. It is never read back and owns
// its data, so it can be encoded after the session lock is released.
type Export struct {
	Players    [2]entity.Player  `json:"players"`
	Statistics entity.Statistics `json:"statistics"`
	ExportDate time.Time         `json:"exportDate"`
	Version    string            `json:"version"`
}

func (that *Session) Export() *Export {
	export := &Export{
		Statistics: that.Statistics.Clone(),
		ExportDate: that.now().UTC(),
		Version:    ExportVersion,
	}

	for i, player := range that.Players {
		export.Players[i] = *player
	}

	return export
}

// ExportFileName names the download after the export date.
func ExportFileName(date time.Time) string {
	return fmt.Sprintf("tic-tac-toe-stats-%s.json", date.Format(time.DateOnly))
}
