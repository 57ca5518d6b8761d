// Package metrics exposes Prometheus collectors for view sessions and HTTP
// traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	recomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctionboard_view_recomputes_total",
		Help: "The total number of table recomputes",
	}, []string{"view", "mode"})

	recomputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auctionboard_view_recompute_seconds",
		Help:    "Time spent filtering and sorting a view",
		Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
	}, []string{"view"})

	transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctionboard_view_transitions_total",
		Help: "The total number of sort and filter transitions",
	}, []string{"view", "kind", "result"})

	rowLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctionboard_view_row_loads_total",
		Help: "The total number of row collection loads",
	}, []string{"view", "result"})

	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "auctionboard_view_sessions_active",
		Help: "The number of open view sessions",
	})

	expiredSessions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auctionboard_view_sessions_expired_total",
		Help: "The total number of view sessions removed after their TTL",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auctionboard_http_requests_total",
		Help: "The total number of HTTP requests",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "auctionboard_http_request_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)

// ObserveRecompute records one recompute of view in the given sort mode.
func ObserveRecompute(view, mode string, elapsed time.Duration) {
	recomputes.WithLabelValues(view, mode).Inc()
	recomputeDuration.WithLabelValues(view).Observe(elapsed.Seconds())
}

// ObserveTransition records a sort or filter transition and whether it was
// accepted.
func ObserveTransition(view, kind string, err error) {
	transitions.WithLabelValues(view, kind, result(err)).Inc()
}

// ObserveRowLoad records a wholesale row refresh.
func ObserveRowLoad(view string, err error) {
	rowLoads.WithLabelValues(view, result(err)).Inc()
}

// SetActiveSessions reports the current number of open sessions.
func SetActiveSessions(n int) {
	activeSessions.Set(float64(n))
}

// AddExpiredSessions counts sessions dropped by the sweeper.
func AddExpiredSessions(n int) {
	if n > 0 {
		expiredSessions.Add(float64(n))
	}
}

// ObserveHTTP records one served request.
func ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
