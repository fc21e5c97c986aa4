package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const namespace = "tictactoe"

const (
	resultWin = "win"
	resultTie = "tie"
)

type Metrics struct {
	gamesTotal          *prometheus.CounterVec
	winsTotal           *prometheus.CounterVec
	winStreak           *prometheus.GaugeVec
	movesTotal          prometheus.Counter
	undoTotal           prometheus.Counter
	persistenceFailures prometheus.Counter

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with registerer.
func New(registerer prometheus.Registerer) *Metrics {
	that := &Metrics{
		gamesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "games_total", Help: "Finished matches by result"},
			[]string{"result"},
		),
		winsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "wins_total", Help: "Won matches by winning symbol"},
			[]string{"symbol"},
		),
		winStreak: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "current_win_streak", Help: "Current win streak of the last finished match"},
			[]string{"symbol"},
		),
		movesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "moves_total", Help: "Accepted moves"},
		),
		undoTotal: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "undo_total", Help: "Undone moves"},
		),
		persistenceFailures: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "persistence_failures_total", Help: "Swallowed storage failures"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests"},
			[]string{"method", "endpoint", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"method", "endpoint"},
		),
	}

	registerer.MustRegister(
		that.gamesTotal,
		that.winsTotal,
		that.winStreak,
		that.movesTotal,
		that.undoTotal,
		that.persistenceFailures,
		that.httpRequestsTotal,
		that.httpRequestDuration,
	)

	return that
}

func (that *Metrics) ObserveOutcome(outcome entity.Outcome, streak entity.Streak) {
	if outcome.IsTie() {
		that.gamesTotal.WithLabelValues(resultTie).Inc()
		that.winStreak.WithLabelValues(string(entity.PlayerX)).Set(0)
		that.winStreak.WithLabelValues(string(entity.PlayerO)).Set(0)
		return
	}

	that.gamesTotal.WithLabelValues(resultWin).Inc()
	that.winsTotal.WithLabelValues(string(outcome.Winner)).Inc()
	that.winStreak.WithLabelValues(string(outcome.Winner)).Set(float64(streak.Count))
	that.winStreak.WithLabelValues(string(outcome.Winner.Opponent())).Set(0)
}

func (that *Metrics) ObserveMove() {
	that.movesTotal.Inc()
}

func (that *Metrics) ObserveUndo() {
	that.undoTotal.Inc()
}

func (that *Metrics) ObservePersistenceFailure() {
	that.persistenceFailures.Inc()
}

// unmatchedEndpoint labels requests no route matched, keeping raw paths out of the label set.
const unmatchedEndpoint = "unmatched"

// Middleware records request counts and latencies labelled by the matched chi route.
func (that *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		endpoint := unmatchedEndpoint
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		that.httpRequestsTotal.WithLabelValues(r.Method, endpoint, strconv.Itoa(status)).Inc()
		that.httpRequestDuration.WithLabelValues(r.Method, endpoint).Observe(time.Since(start).Seconds())
	})
}
