package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Conversion sources.
const (
	SourceCLI  = "cli"
	SourceHTTP = "http"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spritelist",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "spritelist",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	conversions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spritelist",
			Subsystem: "listing",
			Name:      "conversions_total",
			Help:      "Byte-listing conversions by outcome.",
		},
		[]string{"source", "result"},
	)
	convertedBytes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spritelist",
			Subsystem: "listing",
			Name:      "bytes_total",
			Help:      "Binary bytes rendered into listings.",
		},
		[]string{"source"},
	)
	convertedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "spritelist",
			Subsystem: "listing",
			Name:      "records_total",
			Help:      "Listing lines (sprite records) emitted.",
		},
		[]string{"source"},
	)
	conversionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "spritelist",
			Subsystem: "listing",
			Name:      "duration_seconds",
			Help:      "Byte-listing conversion duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests, httpDuration,
			conversions, convertedBytes, convertedRecords, conversionDuration,
		)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordConversion counts one conversion. Byte and record totals only move on
// success.
func RecordConversion(source string, bytes, records int, duration time.Duration, success bool) {
	RegisterMetrics()
	result := "ok"
	if !success {
		result = "error"
	}
	conversions.WithLabelValues(source, result).Inc()
	conversionDuration.WithLabelValues(source).Observe(duration.Seconds())
	if success {
		convertedBytes.WithLabelValues(source).Add(float64(bytes))
		convertedRecords.WithLabelValues(source).Add(float64(records))
	}
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// format, for pickup by a node exporter textfile collector.
func WriteTextfile(path string) error {
	RegisterMetrics()
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
