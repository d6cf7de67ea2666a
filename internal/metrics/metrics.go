// Package metrics records what a generation run did in a private Prometheus
// registry that can be exported as a node-exporter textfile.
package metrics

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/splax/worksim/internal/repository"
)

var stageBuckets = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60}

// Metrics holds the run collectors.
type Metrics struct {
	registry      *prometheus.Registry
	rowsWritten   *prometheus.CounterVec
	rowsUpdated   *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	enrichment    *prometheus.CounterVec
}

// New registers the run collectors in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rowsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worksim",
			Subsystem: "generator",
			Name:      "rows_written_total",
			Help:      "Rows inserted per table",
		}, []string{"table"}),
		rowsUpdated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worksim",
			Subsystem: "generator",
			Name:      "rows_updated_total",
			Help:      "Rows updated by key per table",
		}, []string{"table"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "worksim",
			Subsystem: "generator",
			Name:      "stage_duration_seconds",
			Help:      "Wall time spent in each pipeline stage",
			Buckets:   stageBuckets,
		}, []string{"stage"}),
		enrichment: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "worksim",
			Subsystem: "enrich",
			Name:      "requests_total",
			Help:      "Text enrichment attempts by outcome",
		}, []string{"outcome"}),
	}
	m.registry.MustRegister(
		m.rowsWritten,
		m.rowsUpdated,
		m.stageDuration,
		m.enrichment,
		collectors.NewGoCollector(),
	)
	return m
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveEnrichment counts one enrichment outcome.
func (m *Metrics) ObserveEnrichment(outcome string) {
	m.enrichment.With(prometheus.Labels{"outcome": outcome}).Inc()
}

// ObserveStage records how long stage took.
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	m.stageDuration.With(prometheus.Labels{"stage": stage}).Observe(d.Seconds())
}

// StartStage returns a func that records the stage duration when called.
func (m *Metrics) StartStage(stage string) func() {
	start := time.Now()
	return func() { m.ObserveStage(stage, time.Since(start)) }
}

// WriteTextfile writes every collected metric to path in the text
// exposition format. The write is atomic.
func (m *Metrics) WriteTextfile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create metrics dir: %w", err)
		}
	}
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

type countingWriter struct {
	next repository.RowWriter
	m    *Metrics
}

// Writer wraps next so successful writes are counted per table.
func (m *Metrics) Writer(next repository.RowWriter) repository.RowWriter {
	return countingWriter{next: next, m: m}
}

func (c countingWriter) InsertRows(ctx context.Context, table string, columns []string, rows [][]any) error {
	if err := c.next.InsertRows(ctx, table, columns, rows); err != nil {
		return err
	}
	c.m.rowsWritten.With(prometheus.Labels{"table": table}).Add(float64(len(rows)))
	return nil
}

func (c countingWriter) UpdateRows(ctx context.Context, table, keyColumn string, columns []string, rows [][]any) error {
	if err := c.next.UpdateRows(ctx, table, keyColumn, columns, rows); err != nil {
		return err
	}
	c.m.rowsUpdated.With(prometheus.Labels{"table": table}).Add(float64(len(rows)))
	return nil
}
