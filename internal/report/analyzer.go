package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/logger"
	"github.com/yourusername/edge-analysis/internal/metrics"
	"github.com/yourusername/edge-analysis/internal/models"
	"github.com/yourusername/edge-analysis/internal/scenario"
	"github.com/yourusername/edge-analysis/internal/staking"
)

// Analyzer composes groupings, scenarios, rankings and Kelly sizing
type Analyzer struct {
	settings   Settings
	classifier *scenario.Classifier
	calculator *staking.Calculator
	logger     *logger.AnalysisLogger
}

// NewAnalyzer creates an analyzer for settings
func NewAnalyzer(settings Settings, log *logrus.Logger) (*Analyzer, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.New()
	}
	analysisLogger := logger.NewAnalysisLogger(log)

	calculator, err := staking.NewCalculator(
		settings.PayoutRatio,
		staking.WithBankroll(settings.Bankroll),
		staking.WithMultiplier(settings.KellyMultiplier),
		staking.WithLogger(analysisLogger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create kelly calculator: %w", err)
	}

	classifier := scenario.NewClassifier(
		scenario.Catalog(settings.Thresholds),
		scenario.WithDisabled(settings.DisabledScenarios...),
		scenario.WithLogger(analysisLogger),
	)

	return &Analyzer{
		settings:   settings,
		classifier: classifier,
		calculator: calculator,
		logger:     analysisLogger,
	}, nil
}

// Dimensions returns the groupings computed on every run, in report order
func (a *Analyzer) Dimensions() []analysis.Dimension {
	s := a.settings
	return []analysis.Dimension{
		analysis.ConfidenceBracket(s.ConfidenceBands),
		analysis.WeatherCondition(),
		analysis.TemperatureBand(s.TemperatureBands),
		analysis.WindRegime(s.WindThresholdMPH),
		analysis.DayOfWeek(),
		analysis.Month(),
		analysis.DayType(s.WeekendDays),
		analysis.Team(),
		analysis.Venue(),
		analysis.PredictionSide(),
		analysis.SideTemperature(s.HotTemperatureF),
	}
}

func (a *Analyzer) regimes() []analysis.Regime {
	s := a.settings
	return []analysis.Regime{
		analysis.TemperatureRegime(s.HotTemperatureF),
		analysis.WindSplitRegime(s.WindThresholdMPH),
		analysis.DayTypeRegime(s.WeekendDays),
	}
}

// Run analyses report. source names the input for logging and output.
func (a *Analyzer) Run(ctx context.Context, report *models.BacktestReport, source string) (*Result, error) {
	if report == nil {
		return nil, fmt.Errorf("analysis input: %w", models.ErrEmptyRecords)
	}
	start := time.Now()
	runID := uuid.New()
	log := a.logger.ForRun(runID)
	records := report.Results
	log.LogRunStarted(source, len(records))

	groupings, modelVotes, err := a.group(ctx, records)
	if err != nil {
		metrics.RecordRun("failure", len(records), time.Since(start).Seconds(), float64(time.Now().Unix()))
		return nil, err
	}

	result := &Result{
		RunID:        runID,
		GeneratedAt:  start.UTC(),
		Source:       source,
		Records:      len(records),
		Summary:      report.Summary,
		Models:       analysis.RankModels(report.Summary.ModelPerformance),
		Groupings:    groupings,
		ModelRegimes: make([]Ranking, 0, len(modelVotes)),
		Scenarios:    a.classifier.Classify(records),
	}

	for _, g := range groupings {
		log.LogGrouping(g.Dimension, g.Len())
		metrics.UpdateGroupKeys(g.Dimension, g.Len())
		switch g.Dimension {
		case analysis.DimensionTeam:
			result.Teams = a.rank(g, a.settings.TeamMinGames)
		case analysis.DimensionVenue:
			result.Venues = a.rank(g, a.settings.TeamMinGames)
		}
	}
	for _, g := range modelVotes {
		result.ModelRegimes = append(result.ModelRegimes, a.rank(g, a.settings.ModelMinGames))
	}

	result.Kelly = make([]staking.Recommendation, 0, len(result.Scenarios))
	for _, sc := range result.Scenarios {
		log.LogScenario(sc.Name, sc.Stat.Games, sc.Stat.Accuracy, sc.Stat.AvgEdge)
		metrics.UpdateScenario(sc.Name, sc.Stat.Games, sc.Stat.Accuracy)

		rec := a.calculator.Size(sc.Name, sc.Stat)
		log.LogKellyDecision(rec.Scenario, rec.Recommended, rec.KellyFraction, rec.Reason)
		metrics.RecordKellyDecision(rec.Scenario, rec.Recommended, rec.KellyFraction)
		result.Kelly = append(result.Kelly, rec)

		if sc.Name == scenario.HighConfidence {
			correct, incorrect := scenario.SplitByOutcome(sc.Records)
			result.HighConfidence = OutcomeSplit{
				Scenario:  sc.Name,
				Correct:   analysis.Summarize("correct", correct),
				Incorrect: analysis.Summarize("incorrect", incorrect),
			}
		}
	}

	malformed, sample := countMalformedGameIDs(records)
	result.MalformedGameIDs = malformed
	log.LogMalformedGameIDs(malformed, sample)
	metrics.RecordMalformedGameIDs(malformed)

	result.Duration = time.Since(start)
	metrics.RecordRun("success", len(records), result.Duration.Seconds(), float64(time.Now().Unix()))
	log.LogRunCompleted(len(result.Groupings), len(result.Scenarios), len(result.Recommended()), result.Duration)
	return result, nil
}

// group computes every dimension and the model regime votes. Each worker
// writes only its own slot, so results merge without locks.
func (a *Analyzer) group(ctx context.Context, records []models.GameRecord) ([]analysis.Grouping, []analysis.Grouping, error) {
	dims := a.Dimensions()
	groupings := make([]analysis.Grouping, len(dims))
	var modelVotes []analysis.Grouping

	tasks := make([]func(), 0, len(dims)+1)
	for i, dim := range dims {
		i, dim := i, dim
		tasks = append(tasks, func() {
			groupings[i] = analysis.GroupBy(records, dim)
		})
	}
	tasks = append(tasks, func() {
		modelVotes = analysis.GroupModelVotes(records, a.regimes())
	})

	if !a.settings.Parallel {
		for _, task := range tasks {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
			task()
		}
		return groupings, modelVotes, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			task()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return groupings, modelVotes, nil
}

func (a *Analyzer) rank(g analysis.Grouping, minGames int) Ranking {
	ranked := analysis.Rank(g.Stats, minGames)
	return Ranking{
		Dimension: g.Dimension,
		MinGames:  minGames,
		Ranked:    len(ranked),
		Top:       analysis.Top(ranked, a.settings.TopN),
		Bottom:    analysis.Bottom(ranked, a.settings.TopN),
	}
}

func countMalformedGameIDs(records []models.GameRecord) (int, string) {
	count := 0
	sample := ""
	for _, rec := range records {
		if _, _, err := rec.Teams(); err != nil {
			if count == 0 {
				sample = rec.GameID
			}
			count++
		}
	}
	return count, sample
}
