// Package metrics exports GA progress as Prometheus metrics.
//
// A Collector owns a private registry, so several collectors can coexist in
// one process (tests, multiple trials). It implements ga.Observer; register
// it with ga.WithObserver and call RunFinished with each Result. The CLI has
// no HTTP surface, so metrics are written in the node_exporter textfile
// format with WriteTextfile.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/prdga/ga"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "prdga"

// Collector holds the GA metrics.
type Collector struct {
	registry *prometheus.Registry

	Generations   *prometheus.CounterVec
	BestFitness   *prometheus.GaugeVec
	MeanFitness   *prometheus.GaugeVec
	StdDevFitness *prometheus.GaugeVec
	ValidityRate  *prometheus.GaugeVec

	Runs        *prometheus.CounterVec
	RunDuration prometheus.Histogram
	RunBest     *prometheus.GaugeVec
}

// NewCollector creates a collector whose metrics live under namespace.
// An empty namespace uses DefaultNamespace.
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()
	run := []string{"run_id"}

	c := &Collector{
		registry: registry,
		Generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Number of generations evolved.",
		}, run),
		BestFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_best_fitness",
			Help:      "Best fitness in the latest generation.",
		}, run),
		MeanFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_mean_fitness",
			Help:      "Mean fitness of the latest generation.",
		}, run),
		StdDevFitness: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_stddev_fitness",
			Help:      "Population standard deviation of fitness in the latest generation.",
		}, run),
		ValidityRate: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "generation_validity_rate",
			Help:      "Fraction of valid labelings in the latest generation.",
		}, run),
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed runs by validity of the best labeling.",
		}, []string{"valid"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of completed runs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}),
		RunBest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "run_best_fitness",
			Help:      "Best fitness observed over a completed run.",
		}, run),
	}

	registry.MustRegister(
		c.Generations,
		c.BestFitness,
		c.MeanFitness,
		c.StdDevFitness,
		c.ValidityRate,
		c.Runs,
		c.RunDuration,
		c.RunBest,
	)
	return c
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Observe records one generation.
func (c *Collector) Observe(runID string, s ga.GenerationStats) {
	c.Generations.WithLabelValues(runID).Inc()
	c.BestFitness.WithLabelValues(runID).Set(float64(s.BestFitness))
	c.MeanFitness.WithLabelValues(runID).Set(s.MeanFitness)
	c.StdDevFitness.WithLabelValues(runID).Set(s.StdDevFitness)
	c.ValidityRate.WithLabelValues(runID).Set(s.ValidityRate)
}

// RunFinished records a completed run. A nil result is ignored.
func (c *Collector) RunFinished(res *ga.Result) {
	if res == nil || res.Best == nil {
		return
	}
	c.Runs.WithLabelValues(fmt.Sprint(res.Best.Valid())).Inc()
	c.RunDuration.Observe(res.Elapsed.Seconds())
	c.RunBest.WithLabelValues(res.RunID).Set(float64(res.Best.Fitness()))
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is replaced atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}
	return nil
}

var _ ga.Observer = (*Collector)(nil)
