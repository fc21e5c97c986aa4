package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const maxIntentBytes = 4 << 10

type sessionUseCase interface {
	Dispatch(ctx context.Context, sessionID string, intent usecase.Intent) (*usecase.Result, error)
	View(ctx context.Context, sessionID string) *usecase.Result
	Export(ctx context.Context, sessionID string) *usecase.Export
}

type SessionHandler struct {
	logger   *slog.Logger
	sessions sessionUseCase
	cookies  pkg.SessionCookie
}

type errorResponse struct {
	Error      string          `json:"error"`
	Violations []string        `json:"violations,omitempty"`
	Result     *usecase.Result `json:"result,omitempty"`
}

func NewSessionHandler(logger *slog.Logger, sessions sessionUseCase, cookies pkg.SessionCookie) *SessionHandler {
	return &SessionHandler{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
		cookies:  cookies,
	}
}

func (that *SessionHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/session", func(r chi.Router) {
		r.Get("/", that.handleView)
		r.Post("/intents", that.handleIntent)
		r.Get("/export", that.handleExport)
	})
}

func (that *SessionHandler) handleView(w http.ResponseWriter, r *http.Request) {
	sessionID := that.cookies.Resolve(w, r)

	that.writeJSON(w, http.StatusOK, that.sessions.View(r.Context(), sessionID))
}

func (that *SessionHandler) handleIntent(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "handleIntent")

	sessionID := that.cookies.Resolve(w, r)

	var intent usecase.Intent
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxIntentBytes)).Decode(&intent); err != nil {
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("malformed intent: %v", err)})
		return
	}

	result, err := that.sessions.Dispatch(r.Context(), sessionID, intent)
	if err != nil {
		log.Debug("intent rejected", "session_id", sessionID, "action", intent.Action, "error", err)

		response := errorResponse{Error: err.Error(), Result: result}

		var namesErr *apperror.InvalidNamesError
		if errors.As(err, &namesErr) {
			response.Violations = namesErr.Violations
		}

		that.writeJSON(w, StatusCode(err), response)
		return
	}

	that.writeJSON(w, http.StatusOK, result)
}

func (that *SessionHandler) handleExport(w http.ResponseWriter, r *http.Request) {
	sessionID := that.cookies.Resolve(w, r)

	export := that.sessions.Export(r.Context(), sessionID)

	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, usecase.ExportFileName(export.ExportDate)))
	that.writeJSON(w, http.StatusOK, export)
}

func (that *SessionHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}

// StatusCode maps a rejected intent to its HTTP status.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, apperror.ErrInvalidNames):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperror.ErrIllegalMove),
		errors.Is(err, apperror.ErrGameNotActive),
		errors.Is(err, apperror.ErrNoHistory):
		return http.StatusConflict
	case errors.Is(err, apperror.ErrUnknownIntent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
