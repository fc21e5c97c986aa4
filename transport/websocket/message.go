package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const (
	actionConnect   = "connect"
	actionTimerTick = "timer:tick"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Result     *usecase.Result `json:"result,omitempty"`
	Timer      string          `json:"timer,omitempty"`
	Error      string          `json:"error,omitempty"`
	Violations []string        `json:"violations,omitempty"`
}

func decodeMessage(data []byte) (*Message, error) {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return &message, nil
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	message, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response: %w", err)
	}

	return message, nil
}
