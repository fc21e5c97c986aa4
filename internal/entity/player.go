package entity

const (
	DefaultPlayerOneName = "Player 1"
	DefaultPlayerTwoName = "Player 2"
)

type Player struct {
	Name   string `json:"name"`
	Symbol Mark   `json:"symbol"`
	Wins   int    `json:"wins"`
}

// DefaultPlayers returns the two player slots; slot 0 always holds X and opens every match.
func DefaultPlayers() [2]*Player {
	return [2]*Player{
		{Name: DefaultPlayerOneName, Symbol: PlayerX},
		{Name: DefaultPlayerTwoName, Symbol: PlayerO},
	}
}
