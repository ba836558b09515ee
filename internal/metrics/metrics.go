// Package metrics provides centralized Prometheus metrics registry for edge analysis runs.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "edge_analysis"

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	RunsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Total number of analysis runs by status",
	}, []string{"status"})
	RecordsAnalyzedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "records_analyzed_total",
		Help:      "Total number of game records analysed",
	})
	MalformedGameIDsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "malformed_game_ids_total",
		Help:      "Total number of records whose game ID could not be split into teams",
	})
	KellyDecisionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "kelly_decisions_total",
		Help:      "Total number of Kelly sizing decisions by outcome",
	}, []string{"recommended"})
	CacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_lookups_total",
		Help:      "Total number of report cache lookups by result",
	}, []string{"result"})
)

// Gauge metrics
var (
	GroupKeys = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "group_keys",
		Help:      "Number of keys in each grouping dimension after filtering",
	}, []string{"dimension"})
	ScenarioGames = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scenario_games",
		Help:      "Number of records matching each scenario",
	}, []string{"scenario"})
	ScenarioAccuracy = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "scenario_accuracy",
		Help:      "Prediction accuracy within each scenario",
	}, []string{"scenario"})
	KellyFraction = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "kelly_fraction",
		Help:      "Recommended Kelly fraction for each scenario, zero when not recommended",
	}, []string{"scenario"})
	LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_run_timestamp_seconds",
		Help:      "Unix time of the last completed analysis run",
	})
)

// Histogram metrics
var (
	RunDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of analysis runs in seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(RunsTotal)
		registry.MustRegister(RecordsAnalyzedTotal)
		registry.MustRegister(MalformedGameIDsTotal)
		registry.MustRegister(KellyDecisionsTotal)
		registry.MustRegister(CacheLookupsTotal)

		registry.MustRegister(GroupKeys)
		registry.MustRegister(ScenarioGames)
		registry.MustRegister(ScenarioAccuracy)
		registry.MustRegister(KellyFraction)
		registry.MustRegister(LastRunTimestamp)

		registry.MustRegister(RunDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	return InitRegistry()
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, GetRegistry())
}

// RecordRun records a finished analysis run.
func RecordRun(status string, records int, durationSeconds float64, finishedUnix float64) {
	RunsTotal.WithLabelValues(status).Inc()
	RecordsAnalyzedTotal.Add(float64(records))
	RunDuration.Observe(durationSeconds)
	LastRunTimestamp.Set(finishedUnix)
}

// RecordMalformedGameIDs adds to the malformed game ID counter.
func RecordMalformedGameIDs(count int) {
	MalformedGameIDsTotal.Add(float64(count))
}

// UpdateGroupKeys sets the key count for a grouping dimension.
func UpdateGroupKeys(dimension string, keys int) {
	GroupKeys.WithLabelValues(dimension).Set(float64(keys))
}

// UpdateScenario sets the size and accuracy gauges for a scenario.
func UpdateScenario(scenario string, games int, accuracy float64) {
	ScenarioGames.WithLabelValues(scenario).Set(float64(games))
	ScenarioAccuracy.WithLabelValues(scenario).Set(accuracy)
}

// RecordKellyDecision records a staking decision for a scenario.
func RecordKellyDecision(scenario string, recommended bool, fraction float64) {
	label := "false"
	if recommended {
		label = "true"
	}
	KellyDecisionsTotal.WithLabelValues(label).Inc()
	KellyFraction.WithLabelValues(scenario).Set(fraction)
}

// RecordCacheLookup records a report cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	CacheLookupsTotal.WithLabelValues("miss").Inc()
}
