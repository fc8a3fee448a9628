// Package metrics records what each seedgen run produced. A CLI run is too
// short-lived to be scraped, so Flush hands the registry to a node-exporter
// textfile and/or a Pushgateway at exit.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	// RecordsGenerated counts records produced by the generator.
	RecordsGenerated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seedgen",
		Subsystem: "generator",
		Name:      "records_total",
		Help:      "Records produced by the generator.",
	})

	// RecordsPatched counts records whose gallery was rewritten.
	RecordsPatched = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "seedgen",
		Subsystem: "patcher",
		Name:      "records_total",
		Help:      "Records whose images were replaced from the photo pool.",
	})

	// RecordsSeeded counts rows inserted, by seeder.
	RecordsSeeded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "seedgen",
			Subsystem: "seed",
			Name:      "rows_total",
			Help:      "Rows inserted by seeders.",
		},
		[]string{"seeder"},
	)

	// AuditViolations is the violation count of the last validate run.
	AuditViolations = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "seedgen",
		Subsystem: "audit",
		Name:      "violations",
		Help:      "Violations found by the last validate run.",
	})

	// RunDuration tracks how long each command takes.
	RunDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "seedgen",
			Name:      "run_duration_seconds",
			Help:      "Duration of seedgen commands in seconds.",
			Buckets:   []float64{.01, .05, .1, .5, 1, 5, 30, 120},
		},
		[]string{"command", "status"}, // status: "ok" | "error"
	)

	// LastRun is the unix time a command last finished, by command and status.
	LastRun = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "seedgen",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time a command last finished.",
		},
		[]string{"command", "status"},
	)
)

// DefaultRegistry holds the seedgen metrics. Runtime collectors are left out
// so a textfile never collides with the exporter's own go_* series.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(
		RecordsGenerated,
		RecordsPatched,
		RecordsSeeded,
		AuditViolations,
		RunDuration,
		LastRun,
	)
}

// ObserveRun records the duration and finish time of command.
//
//	defer func() { metrics.ObserveRun("generate", start, err) }()
func ObserveRun(command string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	RunDuration.WithLabelValues(command, status).Observe(time.Since(start).Seconds())
	LastRun.WithLabelValues(command, status).SetToCurrentTime()
}

// Sink says where Flush delivers the registry. Empty fields are skipped.
type Sink struct {
	Textfile       string // node-exporter textfile path, *.prom
	PushgatewayURL string
	Job            string
}

// Flush writes the registry to every configured destination.
func Flush(s Sink) error {
	return flush(DefaultRegistry, s)
}

func flush(reg *prometheus.Registry, s Sink) error {
	if s.Textfile != "" {
		if err := prometheus.WriteToTextfile(s.Textfile, reg); err != nil {
			return fmt.Errorf("metrics: write textfile %s: %w", s.Textfile, err)
		}
	}
	if s.PushgatewayURL != "" {
		job := s.Job
		if job == "" {
			job = "seedgen"
		}
		if err := push.New(s.PushgatewayURL, job).Gatherer(reg).Push(); err != nil {
			return fmt.Errorf("metrics: push to %s: %w", s.PushgatewayURL, err)
		}
	}
	return nil
}
