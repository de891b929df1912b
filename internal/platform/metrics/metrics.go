package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

var (
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"method", "route", "status"},
	)

	rateRefreshTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "refresh_total",
		},
		[]string{"result"},
	)

	rateTableFetchedAt = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "rates",
			Name:      "table_fetched_timestamp_seconds",
		},
	)

	upstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"provider", "error"},
	)
)

// ObserveHTTPRequest records one served request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	httpRequestDuration.
		WithLabelValues(method, route, strconv.Itoa(status)).
		Observe(elapsed.Seconds())
}

// ObserveRateRefresh counts a refresh attempt and, on success, the table's fetch time.
func ObserveRateRefresh(fetchedAt time.Time, err error) {
	if err != nil {
		rateRefreshTotal.WithLabelValues("error").Inc()
		return
	}
	rateRefreshTotal.WithLabelValues("success").Inc()
	rateTableFetchedAt.Set(float64(fetchedAt.Unix()))
}

// ObserveUpstream records a call to a third-party provider.
func ObserveUpstream(provider string, elapsed time.Duration, err error) {
	upstreamRequestDuration.
		WithLabelValues(provider, strconv.FormatBool(err != nil)).
		Observe(elapsed.Seconds())
}
