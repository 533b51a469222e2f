package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the front-end's Prometheus collectors.
	Registry = prometheus.NewRegistry()

	apiCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "medicare",
			Subsystem: "api_client",
			Name:      "calls_total",
			Help:      "Total number of calls issued to the hospital API.",
		},
		[]string{"resource", "method", "outcome"},
	)

	apiDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "medicare",
			Subsystem: "api_client",
			Name:      "call_duration_seconds",
			Help:      "Duration of calls issued to the hospital API.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"resource", "method"},
	)

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "medicare",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight browser requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "medicare",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of browser requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "medicare",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of browser requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)
)

func init() {
	Registry.MustRegister(
		apiCalls,
		apiDuration,
		httpInFlight,
		httpRequests,
		httpDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordAPICall records one round trip to the hospital API. outcome is
// "success" or the error kind.
func RecordAPICall(resource, method, outcome string, duration time.Duration) {
	if outcome == "" {
		outcome = "success"
	}
	apiCalls.WithLabelValues(resource, strings.ToUpper(method), outcome).Inc()
	apiDuration.WithLabelValues(resource, strings.ToUpper(method)).Observe(duration.Seconds())
}

// InstrumentHandler wraps next with request metrics labelled by chi route pattern.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, route, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
