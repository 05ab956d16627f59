package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/outlet/pkg/router"
)

// Metrics are the server's prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	navigations        *prometheus.CounterVec
	navigationDuration *prometheus.HistogramVec
	activeSessions     prometheus.Gauge
	wsErrors           *prometheus.CounterVec
}

// NewMetrics registers the collectors on reg.
//
// Metrics collected:
//   - outlet_navigations_total: render cycles by outcome
//   - outlet_navigation_duration_seconds: time from start to outcome
//   - outlet_active_sessions: open websocket sessions
//   - outlet_websocket_errors_total: websocket errors by type
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		navigations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outlet",
			Name:      "navigations_total",
			Help:      "Render cycles by outcome",
		}, []string{"outcome"}),

		navigationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "outlet",
			Name:      "navigation_duration_seconds",
			Help:      "Time from navigation start to its outcome",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),

		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "outlet",
			Name:      "active_sessions",
			Help:      "Number of open websocket sessions",
		}),

		wsErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outlet",
			Name:      "websocket_errors_total",
			Help:      "WebSocket errors by type",
		}, []string{"type"}),
	}
}

// Observe records a router event. It is meant to be passed to
// router.WithObserver.
func (m *Metrics) Observe(e router.Event) {
	if m == nil {
		return
	}
	switch e.Kind {
	case router.EventMounted, router.EventFailed, router.EventDiscarded:
		outcome := e.Kind.String()
		m.navigations.WithLabelValues(outcome).Inc()
		m.navigationDuration.WithLabelValues(outcome).Observe(e.Duration.Seconds())
	case router.EventUnmatched:
		m.navigations.WithLabelValues(e.Kind.String()).Inc()
	}
}

func (m *Metrics) sessionOpened() {
	if m != nil {
		m.activeSessions.Inc()
	}
}

func (m *Metrics) sessionClosed() {
	if m != nil {
		m.activeSessions.Dec()
	}
}

func (m *Metrics) wsError(typ string) {
	if m != nil {
		m.wsErrors.WithLabelValues(typ).Inc()
	}
}
