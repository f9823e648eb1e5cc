// Package metrics records verification runs as Prometheus metrics.
//
// A Recorder uses its own registry rather than the global one, so a run's
// metrics contain only what that run observed. WriteTextfile exports them in
// the text exposition format read by node_exporter's textfile collector,
// which lets CI hosts chart registry drift over time.
package metrics

import (
	"strconv"

	"github.com/nao1215/verifymodels/internal/model"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "verifymodels"

// Outcome label values.
const (
	OutcomeFound   = "found"
	OutcomeMissing = "missing"
	OutcomeError   = "error"
)

// Recorder collects per-lookup and per-batch metrics.
// It implements registry.Observer.
type Recorder struct {
	registry *prometheus.Registry

	lookupsTotal   *prometheus.CounterVec
	lookupDuration *prometheus.HistogramVec
	responsesTotal *prometheus.CounterVec
	checked        *prometheus.GaugeVec
	missing        *prometheus.GaugeVec
	lastRunPassed  prometheus.Gauge
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lookupsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "lookups_total",
				Help:      "Registry lookups by registry and outcome",
			},
			[]string{"registry", "outcome"},
		),
		lookupDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "lookup_duration_seconds",
				Help:      "Duration of a single registry lookup in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"registry"},
		),
		responsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_responses_total",
				Help:      "Completed HTTP exchanges by registry and status code",
			},
			[]string{"registry", "code"},
		),
		checked: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "identifiers_checked",
				Help:      "Identifiers checked in the last batch per registry",
			},
			[]string{"registry"},
		),
		missing: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "identifiers_missing",
				Help:      "Identifiers that did not resolve in the last batch per registry",
			},
			[]string{"registry"},
		),
		lastRunPassed: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_run_passed",
				Help:      "1 if every enabled check passed, 0 otherwise",
			},
		),
	}

	r.registry.MustRegister(
		r.lookupsTotal,
		r.lookupDuration,
		r.responsesTotal,
		r.checked,
		r.missing,
		r.lastRunPassed,
	)

	return r
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// BatchStarted resets the per-batch gauges for the registry.
func (r *Recorder) BatchStarted(registry model.Registry, _ int) {
	r.checked.WithLabelValues(registry.String()).Set(0)
	r.missing.WithLabelValues(registry.String()).Set(0)
}

// ResultReady records one lookup.
func (r *Recorder) ResultReady(registry model.Registry, _, _ int, result model.CheckResult) {
	reg := registry.String()

	outcome := OutcomeFound
	switch {
	case result.TransportFailed():
		outcome = OutcomeError
	case !result.Found():
		outcome = OutcomeMissing
	}

	r.lookupsTotal.WithLabelValues(reg, outcome).Inc()
	r.lookupDuration.WithLabelValues(reg).Observe(result.Elapsed.Seconds())
	if !result.TransportFailed() {
		r.responsesTotal.WithLabelValues(reg, strconv.Itoa(result.Status)).Inc()
	}
}

// BatchFinished records the batch totals.
func (r *Recorder) BatchFinished(summary *model.RunSummary) {
	reg := summary.Registry.String()
	r.checked.WithLabelValues(reg).Set(float64(summary.Total()))
	r.missing.WithLabelValues(reg).Set(float64(summary.MissingCount()))
}

// RecordVerdict records whether the whole run passed.
func (r *Recorder) RecordVerdict(verdict *model.Verdict) {
	if verdict.Passed() {
		r.lastRunPassed.Set(1)
		return
	}
	r.lastRunPassed.Set(0)
}

// WriteTextfile writes every collected metric to path in the Prometheus
// text format. The file is replaced atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
