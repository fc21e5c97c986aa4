package usecase

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const storageTimeout = 2 * time.Second

var errRecordNotLoaded = errors.New("stored record not loaded, save skipped")

type sessionRepoDep interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, blob []byte) error
	Delete(ctx context.Context, id string) error
}

type metricsDep interface {
	ObserveOutcome(outcome entity.Outcome, streak entity.Streak)
	ObserveMove()
	ObserveUndo()
	ObservePersistenceFailure()
}

// SessionManager hosts one Session per browser and applies intents to each of
// them strictly one at a time.
type SessionManager struct {
	logger  *slog.Logger
	repo    sessionRepoDep
	metrics metricsDep
	clock   func() time.Time

	mu       sync.Mutex
	sessions map[string]*hostedSession
}

type hostedSession struct {
	mu      sync.Mutex
	session *Session
	loaded  bool
	warning string

	// guarded by SessionManager.mu
	lastAccess time.Time
}

// NewSessionManager creates a manager. A nil metrics disables observation, a nil clock means time.Now.
func NewSessionManager(logger *slog.Logger, repo sessionRepoDep, metrics metricsDep, clock func() time.Time) *SessionManager {
	if metrics == nil {
		metrics = noopMetrics{}
	}

	if clock == nil {
		clock = time.Now
	}

	return &SessionManager{
		logger:  logger.With("component", "session_manager"),
		repo:    repo,
		metrics: metrics,
		clock:   clock,

		sessions: make(map[string]*hostedSession),
	}
}

// Dispatch applies intent to the session. A rejected intent still returns the
// current view alongside the error.
func (that *SessionManager) Dispatch(ctx context.Context, sessionID string, intent Intent) (*Result, error) {
	log := that.logger.With("method", "Dispatch", "session_id", sessionID, "action", intent.Action)

	hosted := that.host(sessionID)
	hosted.mu.Lock()
	defer hosted.mu.Unlock()

	that.load(ctx, hosted)

	change, err := hosted.session.Handle(intent)
	if err != nil {
		log.Debug("intent rejected", "error", err)

		return &Result{View: hosted.session.View(), Warning: hosted.takeWarning()}, err
	}

	that.observe(hosted.session, change)

	if err = that.persist(ctx, hosted, change); err != nil {
		log.Error("failed to persist session", "error", err)
		that.metrics.ObservePersistenceFailure()
		hosted.warning = apperror.ErrPersistenceUnavailable.Error()
	}

	return &Result{
		Event:   change.event,
		View:    hosted.session.View(),
		Warning: hosted.takeWarning(),
	}, nil
}

// View returns the current projection without changing anything.
func (that *SessionManager) View(ctx context.Context, sessionID string) *Result {
	hosted := that.host(sessionID)
	hosted.mu.Lock()
	defer hosted.mu.Unlock()

	that.load(ctx, hosted)

	return &Result{View: hosted.session.View(), Warning: hosted.takeWarning()}
}

func (that *SessionManager) Export(ctx context.Context, sessionID string) *Export {
	hosted := that.host(sessionID)
	hosted.mu.Lock()
	defer hosted.mu.Unlock()

	that.load(ctx, hosted)

	return hosted.session.Export()
}

// TimerDisplay reads the match timer for advisory ticks.
func (that *SessionManager) TimerDisplay(ctx context.Context, sessionID string) (string, bool) {
	hosted := that.host(sessionID)
	hosted.mu.Lock()
	defer hosted.mu.Unlock()

	that.load(ctx, hosted)

	timer := hosted.session.Match.Timer()

	return timer.Display(), hosted.session.Match.IsInProgress()
}

func (that *SessionManager) host(sessionID string) *hostedSession {
	that.mu.Lock()
	defer that.mu.Unlock()

	hosted, ok := that.sessions[sessionID]
	if !ok {
		hosted = &hostedSession{session: NewSession(sessionID, that.clock)}
		that.sessions[sessionID] = hosted
	}
	hosted.lastAccess = that.clock()

	return hosted
}

// EvictIdle drops hosted sessions not touched for longer than idle and reports
// how many were dropped. Their durable state is loaded again on the next request.
func (that *SessionManager) EvictIdle(idle time.Duration) int {
	cutoff := that.clock().Add(-idle)

	that.mu.Lock()
	defer that.mu.Unlock()

	evicted := 0
	for id, hosted := range that.sessions {
		if hosted.lastAccess.Before(cutoff) {
			delete(that.sessions, id)
			evicted++
		}
	}

	return evicted
}

// RunEviction calls EvictIdle every interval until ctx is done.
func (that *SessionManager) RunEviction(ctx context.Context, interval, idle time.Duration) {
	log := that.logger.With("method", "RunEviction")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := that.EvictIdle(idle); evicted > 0 {
				log.Debug("idle sessions evicted", "count", evicted, "hosted", that.hostedCount())
			}
		}
	}
}

func (that *SessionManager) hostedCount() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.sessions)
}

// load restores the stored record of a hosted session. After a storage failure
// the defaults stay in place and the next call tries again; until a load
// succeeds nothing is saved over the stored record.
func (that *SessionManager) load(ctx context.Context, hosted *hostedSession) {
	if hosted.loaded {
		return
	}

	log := that.logger.With("method", "load", "session_id", hosted.session.ID)

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	blob, err := that.repo.Load(ctx, hosted.session.ID)
	if errors.Is(err, apperror.ErrSessionNotFound) {
		hosted.loaded = true
		return
	}

	if err != nil {
		log.Error("failed to load session", "error", err)
		that.metrics.ObservePersistenceFailure()
		hosted.warning = apperror.ErrPersistenceUnavailable.Error()

		return
	}
	hosted.loaded = true

	if err = hosted.session.ApplyRecord(blob); err != nil {
		log.Warn("session restored with defaults", "error", err)
	}
}

func (that *SessionManager) persist(ctx context.Context, hosted *hostedSession, change Change) error {
	if !change.persist && !change.clear {
		return nil
	}

	session := hosted.session

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	if change.clear {
		// cleared defaults replace whatever is stored
		hosted.loaded = true

		if err := that.repo.Delete(ctx, session.ID); err != nil {
			return errors.Join(apperror.ErrPersistenceUnavailable, err)
		}

		return nil
	}

	if !hosted.loaded {
		return errors.Join(apperror.ErrPersistenceUnavailable, errRecordNotLoaded)
	}

	blob, err := session.MarshalRecord()
	if err != nil {
		return err
	}

	if err = that.repo.Save(ctx, session.ID, blob); err != nil {
		return errors.Join(apperror.ErrPersistenceUnavailable, err)
	}

	return nil
}

func (that *SessionManager) observe(session *Session, change Change) {
	if change.moved {
		that.metrics.ObserveMove()
	}

	if change.undone {
		that.metrics.ObserveUndo()
	}

	if change.ended {
		if outcome, ok := session.Match.Outcome(); ok {
			that.metrics.ObserveOutcome(outcome, session.Statistics.CurrentStreak)
		}
	}
}

func (that *hostedSession) takeWarning() string {
	warning := that.warning
	that.warning = ""

	return warning
}

type noopMetrics struct{}

func (noopMetrics) ObserveOutcome(entity.Outcome, entity.Streak) {}
func (noopMetrics) ObserveMove()                                 {}
func (noopMetrics) ObserveUndo()                                 {}
func (noopMetrics) ObservePersistenceFailure()                   {}
