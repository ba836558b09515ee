// Package logger provides analysis-specific logging.
package logger

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AnalysisLogger provides dedicated logging for analysis runs.
type AnalysisLogger struct {
	*logrus.Entry
}

// NewAnalysisLogger creates a new analysis logger.
func NewAnalysisLogger(baseLogger *logrus.Logger) *AnalysisLogger {
	return &AnalysisLogger{
		Entry: baseLogger.WithField("component", "analysis"),
	}
}

// ForRun scopes the logger to a single analysis run.
func (al *AnalysisLogger) ForRun(runID uuid.UUID) *AnalysisLogger {
	return &AnalysisLogger{Entry: al.WithField("run_id", runID.String())}
}

// LogRunStarted logs the start of an analysis run.
func (al *AnalysisLogger) LogRunStarted(source string, records int) {
	al.WithFields(logrus.Fields{
		"event_type": "run_started",
		"source":     source,
		"records":    records,
	}).Info("Analysis run started")
}

// LogRunCompleted logs the end of an analysis run.
func (al *AnalysisLogger) LogRunCompleted(groupings, scenarios, recommended int, duration time.Duration) {
	al.WithFields(logrus.Fields{
		"event_type":  "run_completed",
		"groupings":   groupings,
		"scenarios":   scenarios,
		"recommended": recommended,
		"duration_ms": float64(duration.Microseconds()) / 1000,
	}).Info("Analysis run completed")
}

// LogGrouping logs a computed grouping.
func (al *AnalysisLogger) LogGrouping(dimension string, keys int) {
	al.WithFields(logrus.Fields{
		"dimension": dimension,
		"keys":      keys,
	}).Debug("Grouping computed")
}

// LogScenario logs a classified scenario.
func (al *AnalysisLogger) LogScenario(name string, games int, accuracy, avgEdge float64) {
	al.WithFields(logrus.Fields{
		"scenario": name,
		"games":    games,
		"accuracy": accuracy,
		"avg_edge": avgEdge,
	}).Info("Scenario classified")
}

// LogKellyDecision logs a staking recommendation.
func (al *AnalysisLogger) LogKellyDecision(scenario string, recommended bool, kellyFraction float64, reason string) {
	al.WithFields(logrus.Fields{
		"scenario":       scenario,
		"recommended":    recommended,
		"kelly_fraction": kellyFraction,
		"reason":         reason,
	}).Info("Kelly decision made")
}

// LogMalformedGameIDs logs how many records could not be credited to teams.
func (al *AnalysisLogger) LogMalformedGameIDs(count int, sample string) {
	if count == 0 {
		return
	}
	al.WithFields(logrus.Fields{
		"count":  count,
		"sample": sample,
	}).Warn("Game IDs without away/home teams excluded from team groupings")
}
