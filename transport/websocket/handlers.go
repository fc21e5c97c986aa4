package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

// handleConnect replies with the current view of the session bound to the cookie.
func (that *Server) handleConnect(ctx context.Context, conn *connection, msg *Message) error {
	result := that.sessions.View(ctx, conn.sessionID)

	if err := conn.send(msg.Action, ResponsePayload{Result: result}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// handleIntent forwards the message as an intent named by its action.
func (that *Server) handleIntent(ctx context.Context, conn *connection, msg *Message) error {
	var intent usecase.Intent
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &intent); err != nil {
			that.sendError(conn, msg.Action, fmt.Errorf("malformed payload: %w", err), nil)
			return nil
		}
	}
	intent.Action = msg.Action

	result, err := that.sessions.Dispatch(ctx, conn.sessionID, intent)
	if err != nil {
		that.sendError(conn, msg.Action, err, result)
		return nil
	}

	if err = conn.send(msg.Action, ResponsePayload{Result: result}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

// sendError reports a rejected message. The connection stays usable.
func (that *Server) sendError(conn *connection, action string, cause error, result *usecase.Result) {
	payload := ResponsePayload{Error: cause.Error(), Result: result}

	var namesErr *apperror.InvalidNamesError
	if errors.As(cause, &namesErr) {
		payload.Violations = namesErr.Violations
	}

	if err := conn.send(action, payload); err != nil {
		that.logger.Error("failed to send error response", "action", action, "error", err)
	}
}
