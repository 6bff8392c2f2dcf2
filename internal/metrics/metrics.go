// Package metrics exposes Prometheus instrumentation for the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors the service records into.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	splitsTotal     *prometheus.CounterVec
	ocrRequests     *prometheus.CounterVec
	receiptItems    prometheus.Histogram
}

// New builds the collectors and registers them on reg. A nil reg falls
// back to the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "splitit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds by method and path.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "path"}),
		splitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitit",
			Name:      "splits_total",
			Help:      "Successful bill calculations by remainder policy.",
		}, []string{"policy"}),
		ocrRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "splitit",
			Name:      "ocr_requests_total",
			Help:      "OCR requests by outcome (ok, failed, unavailable).",
		}, []string{"outcome"}),
		receiptItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "splitit",
			Name:      "receipt_items_extracted",
			Help:      "Line items extracted per parsed receipt.",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
		}),
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration, m.splitsTotal, m.ocrRequests, m.receiptItems)
	return m
}

// ObserveRequest records one completed HTTP request.
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// SplitComputed counts one successful bill calculation under the given
// remainder policy.
func (m *Metrics) SplitComputed(policy string) {
	m.splitsTotal.WithLabelValues(policy).Inc()
}

// OCRRequest counts one OCR request by outcome.
func (m *Metrics) OCRRequest(outcome string) {
	m.ocrRequests.WithLabelValues(outcome).Inc()
}

// ReceiptParsed records how many line items one receipt produced.
func (m *Metrics) ReceiptParsed(items int) {
	m.receiptItems.Observe(float64(items))
}
