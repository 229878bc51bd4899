// Package metrics exposes Prometheus instrumentation for manifest polling,
// impression recording and the HTTP surface. Collectors register with the
// default registry and are served by promhttp at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "streetcast"

// Result labels shared by the domain counters.
const (
	ResultOK                = "ok"
	ResultDeviceNotFound    = "device_not_found"
	ResultCreativeNotFound  = "creative_not_found"
	ResultValidationFailure = "invalid"
	ResultError             = "error"
)

var (
	ManifestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "manifests_total",
			Help:      "Manifest builds by result",
		},
		[]string{"result"},
	)

	ManifestCreatives = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "manifest_creatives",
			Help:      "Number of creatives per served manifest",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	ImpressionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "impressions_total",
			Help:      "Impression recording attempts by result",
		},
		[]string{"result"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5, 10},
		},
		[]string{"method", "route"},
	)
)

// RecordManifest counts a manifest build. creatives is only observed for
// successful builds.
func RecordManifest(result string, creatives int) {
	ManifestsTotal.WithLabelValues(result).Inc()
	if result == ResultOK {
		ManifestCreatives.Observe(float64(creatives))
	}
}

func RecordImpression(result string) {
	ImpressionsTotal.WithLabelValues(result).Inc()
}

// RecordHTTPRequest records one served request against its route pattern.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
