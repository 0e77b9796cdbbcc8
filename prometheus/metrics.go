// Package prometheus records blogsmith metrics with the Prometheus client.
package prometheus

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/blogsmith"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "blogsmith"

// StatusOK labels successful operations. Failures are labeled with their
// error code.
const StatusOK = "ok"

// Metrics holds the collectors for one registry.
type Metrics struct {
	CompletionsTotal   *prometheus.CounterVec
	CompletionDuration *prometheus.HistogramVec
	CompletionBytes    *prometheus.HistogramVec
	ExportsTotal       *prometheus.CounterVec
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
}

// NewMetrics creates and registers collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CompletionsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "completions_total",
				Help:      "Total number of text-generation calls",
			},
			[]string{"task", "status"},
		),
		CompletionDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "completion_duration_seconds",
				Help:      "Duration of text-generation calls in seconds",
				Buckets:   []float64{0.5, 1, 2.5, 5, 10, 20, 40, 80},
			},
			[]string{"task"},
		),
		CompletionBytes: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "completion_bytes",
				Help:      "Size of generated text in bytes",
				Buckets:   prometheus.ExponentialBuckets(256, 2, 8),
			},
			[]string{"task"},
		),
		ExportsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "exports_total",
				Help:      "Total number of document exports",
			},
			[]string{"format", "status"},
		),
		RequestsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"route", "code", "method"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "code", "method"},
		),
	}
}

// InstrumentHandler records request counts and latency for route.
func (m *Metrics) InstrumentHandler(route string, h http.Handler) http.Handler {
	labels := prometheus.Labels{"route": route}
	return promhttp.InstrumentHandlerCounter(
		m.RequestsTotal.MustCurryWith(labels),
		promhttp.InstrumentHandlerDuration(m.RequestDuration.MustCurryWith(labels), h),
	)
}

// Handler serves the metrics collected by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

func status(err error) string {
	if err == nil {
		return StatusOK
	}
	return blogsmith.ErrorCode(err)
}

// Ensure Completer implements blogsmith.Completer.
var _ blogsmith.Completer = (*Completer)(nil)

// Completer wraps a Completer and records call metrics.
type Completer struct {
	next    blogsmith.Completer
	metrics *Metrics
}

// NewCompleter creates a new Completer.
func NewCompleter(next blogsmith.Completer, metrics *Metrics) *Completer {
	return &Completer{next: next, metrics: metrics}
}

// Complete delegates to the wrapped completer.
func (c *Completer) Complete(ctx context.Context, prompt *blogsmith.Prompt) (string, error) {
	if prompt == nil {
		return "", blogsmith.Errorf(blogsmith.EINVALID, "prompt required")
	}
	begin := time.Now()
	text, err := c.next.Complete(ctx, prompt)
	c.metrics.CompletionDuration.WithLabelValues(prompt.Task).Observe(time.Since(begin).Seconds())
	c.metrics.CompletionsTotal.WithLabelValues(prompt.Task, status(err)).Inc()
	if err == nil {
		c.metrics.CompletionBytes.WithLabelValues(prompt.Task).Observe(float64(len(text)))
	}
	return text, err
}

// Ensure Exporter implements blogsmith.Exporter.
var _ blogsmith.Exporter = (*Exporter)(nil)

// Exporter wraps an Exporter and counts exports by format and outcome.
type Exporter struct {
	next    blogsmith.Exporter
	metrics *Metrics
}

// NewExporter creates a new Exporter.
func NewExporter(next blogsmith.Exporter, metrics *Metrics) *Exporter {
	return &Exporter{next: next, metrics: metrics}
}

// Export delegates to the wrapped exporter.
func (e *Exporter) Export(article *blogsmith.Article, format blogsmith.ExportFormat, opts blogsmith.ExportOptions) (*blogsmith.Document, error) {
	doc, err := e.next.Export(article, format, opts)
	e.metrics.ExportsTotal.WithLabelValues(string(format), status(err)).Inc()
	return doc, err
}
