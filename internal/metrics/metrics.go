// Package metrics counts renders for the HTTP service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes of a render, used as the outcome label.
const (
	OutcomeOK = "ok"
)

// Collector holds the render metrics on a registry of its own, so that any
// number of collectors can live in one process.
type Collector struct {
	Registry *prometheus.Registry

	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	appliedMoves   prometheus.Histogram
}

// New creates a Collector. The Go runtime and process collectors are
// registered alongside the render metrics.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)
	return &Collector{
		Registry: reg,
		rendersTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "goban_renders_total",
				Help: "Total number of render requests",
			},
			[]string{"format", "theme", "outcome"},
		),
		renderDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "goban_render_duration_seconds",
				Help:    "Duration of render requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"format"},
		),
		appliedMoves: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "goban_applied_moves",
				Help:    "Number of moves on the board of successful renders",
				Buckets: prometheus.LinearBuckets(0, 50, 8),
			},
		),
	}
}

// RecordRender counts one render. outcome is OutcomeOK or the error kind.
func (c *Collector) RecordRender(format, theme, outcome string, d time.Duration) {
	c.rendersTotal.WithLabelValues(format, theme, outcome).Inc()
	c.renderDuration.WithLabelValues(format).Observe(d.Seconds())
}

// RecordMoves observes the number of applied moves of a successful render.
func (c *Collector) RecordMoves(n int) { c.appliedMoves.Observe(float64(n)) }

// RendersTotal returns the render counter for one set of labels.
func (c *Collector) RendersTotal(format, theme, outcome string) prometheus.Counter {
	return c.rendersTotal.WithLabelValues(format, theme, outcome)
}
