package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/usecase"
)

const writeTimeout = 5 * time.Second

type sessionUseCase interface {
	Dispatch(ctx context.Context, sessionID string, intent usecase.Intent) (*usecase.Result, error)
	View(ctx context.Context, sessionID string) *usecase.Result
	TimerDisplay(ctx context.Context, sessionID string) (string, bool)
}

type handlerFunc func(ctx context.Context, conn *connection, message *Message) error

type Server struct {
	logger       *slog.Logger
	sessions     sessionUseCase
	cookies      pkg.SessionCookie
	tickInterval time.Duration
	upgrader     websocket.Upgrader

	handlers map[string]handlerFunc
}

// connection is one browser tab. gorilla allows a single concurrent writer, hence writeMu.
type connection struct {
	ws        *websocket.Conn
	sessionID string
	writeMu   sync.Mutex
}

func New(logger *slog.Logger, sessions sessionUseCase, cookies pkg.SessionCookie, tickInterval time.Duration) *Server {
	server := &Server{
		logger:       logger.With("component", "websocket"),
		sessions:     sessions,
		cookies:      cookies,
		tickInterval: tickInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},

		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	for _, action := range []string{
		usecase.ActionCellClick,
		usecase.ActionNewMatch,
		usecase.ActionUndo,
		usecase.ActionPauseTimer,
		usecase.ActionResetTimer,
		usecase.ActionResetScores,
		usecase.ActionClearData,
		usecase.ActionToggleSound,
		usecase.ActionToggleAnimations,
		usecase.ActionToggleTheme,
		usecase.ActionKeyPress,
	} {
		server.handlers[action] = server.handleIntent
	}

	return server
}

// Handler routes /ws to the upgrade. ctx bounds the lifetime of every connection.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves it until either side goes away.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	header := http.Header{}
	sessionID, ok := that.cookies.Read(req)
	if !ok {
		cookie := that.cookies.Issue(time.Now())
		sessionID = cookie.Value
		header.Add("Set-Cookie", cookie.String())
		log.Info("session cookie not found, new one created", "session_id", sessionID)
	}

	ws, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	conn := &connection{ws: ws, sessionID: sessionID}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = ws.Close()
	}()

	go that.runTicker(ctx, conn)

	log.Info("WebSocket connection established", "session_id", sessionID)

	if err = that.handleMessages(ctx, conn); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, conn *connection) error {
	log := that.logger.With("method", "handleMessages", "session_id", conn.sessionID)

	for {
		_, data, err := conn.ws.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		message, err := decodeMessage(data)
		if err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendError(conn, "", err, nil)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Warn("unknown action", "action", message.Action)
			that.sendError(conn, message.Action, fmt.Errorf("unknown action %q", message.Action), nil)
			continue
		}

		if err = handler(ctx, conn, message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// runTicker pushes the advisory timer display while a match is running.
func (that *Server) runTicker(ctx context.Context, conn *connection) {
	ticker := time.NewTicker(that.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			display, active := that.sessions.TimerDisplay(ctx, conn.sessionID)
			if !active {
				continue
			}

			if err := conn.send(actionTimerTick, ResponsePayload{Timer: display}); err != nil {
				return
			}
		}
	}
}

func (that *connection) send(action string, payload ResponsePayload) error {
	message, err := encodeMessage(action, payload)
	if err != nil {
		return err
	}

	that.writeMu.Lock()
	defer that.writeMu.Unlock()

	if err = that.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("failed to set write deadline: %w", err)
	}

	if err = that.ws.WriteMessage(websocket.TextMessage, message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}
