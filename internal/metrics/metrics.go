// Package metrics records store operation counts, latencies and duplicate
// domain keys with Prometheus collectors.
//
// A Recorder owns its collectors and registers them on the registry it is
// given. A nil *Recorder is valid and records nothing.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Operation outcomes
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder records repository operations.
type Recorder struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	duplicates *prometheus.CounterVec
}

// NewRecorder creates a Recorder registered on reg. A nil reg gets a fresh
// registry.
func NewRecorder(reg *prometheus.Registry) *Recorder {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	r := &Recorder{
		registry: reg,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamesdb_store_operations_total",
				Help: "Repository operations by collection, operation and outcome",
			},
			[]string{"collection", "op", "outcome"}, // outcome: ok | error
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gamesdb_store_operation_duration_seconds",
				Help:    "Repository operation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"collection", "op"},
		),
		duplicates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gamesdb_duplicate_keys_total",
				Help: "Lookups that found more than one document for a domain key",
			},
			[]string{"collection"},
		),
	}
	reg.MustRegister(r.operations, r.duration, r.duplicates)
	return r
}

// Registry returns the registry the collectors are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveOp records one operation that started at start.
func (r *Recorder) ObserveOp(collection, op string, start time.Time, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.operations.WithLabelValues(collection, op, outcome).Inc()
	r.duration.WithLabelValues(collection, op).Observe(time.Since(start).Seconds())
}

// DuplicateKey records a lookup that matched more than one document.
func (r *Recorder) DuplicateKey(collection string) {
	if r == nil {
		return
	}
	r.duplicates.WithLabelValues(collection).Inc()
}

// WriteText writes every gathered metric family to w in the Prometheus text
// exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	if r == nil {
		return nil
	}
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
