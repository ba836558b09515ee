package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/config"
	"github.com/yourusername/edge-analysis/internal/scenario"
	"github.com/yourusername/edge-analysis/internal/staking"
)

// Settings holds the resolved inputs of an analysis run
type Settings struct {
	TemperatureBands  analysis.Bands
	ConfidenceBands   analysis.Bands
	WindThresholdMPH  float64
	HotTemperatureF   float64
	WeekendDays       []time.Weekday
	Thresholds        scenario.Thresholds
	DisabledScenarios []string
	TeamMinGames      int
	ModelMinGames     int
	TopN              int
	Parallel          bool
	PayoutRatio       float64
	Bankroll          decimal.Decimal
	KellyMultiplier   float64
}

// DefaultSettings returns the standard thresholds
func DefaultSettings() Settings {
	return Settings{
		TemperatureBands: analysis.DefaultTemperatureBands(),
		ConfidenceBands:  analysis.DefaultConfidenceBands(),
		WindThresholdMPH: analysis.DefaultWindThresholdMPH,
		HotTemperatureF:  analysis.DefaultHotTemperatureF,
		WeekendDays:      append([]time.Weekday{}, analysis.DefaultWeekendDays...),
		Thresholds:       scenario.DefaultThresholds(),
		TeamMinGames:     5,
		ModelMinGames:    5,
		TopN:             10,
		Parallel:         true,
		PayoutRatio:      staking.DefaultPayoutRatio,
		Bankroll:         decimal.Zero,
		KellyMultiplier:  1.0,
	}
}

// FromConfig converts app config to analysis settings
func FromConfig(cfg *config.Config) (Settings, error) {
	if cfg == nil {
		return Settings{}, fmt.Errorf("config is required")
	}
	a := cfg.Analysis

	favorable, err := config.ParseWeekdays(a.FavorableDays)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid favorable days: %w", err)
	}
	weekend, err := config.ParseWeekdays(a.WeekendDays)
	if err != nil {
		return Settings{}, fmt.Errorf("invalid weekend days: %w", err)
	}

	s := Settings{
		TemperatureBands: a.TemperatureBands,
		ConfidenceBands:  a.ConfidenceBands,
		WindThresholdMPH: a.WindThresholdMPH,
		HotTemperatureF:  a.HotTemperatureF,
		WeekendDays:      weekend,
		Thresholds: scenario.Thresholds{
			HighConfidence:      a.HighConfidenceThreshold,
			CompositeConfidence: a.CompositeConfidence,
			HighEdge:            a.HighEdgeThreshold,
			MinCriteria:         a.MinCriteria,
			FavorableDays:       favorable,
			FavorableWeather:    a.FavorableWeather,
			TopTeams:            append([]string{}, a.TopTeams...),
		},
		DisabledScenarios: append([]string{}, a.DisabledScenarios...),
		TeamMinGames:      a.TeamMinGames,
		ModelMinGames:     a.ModelMinGames,
		TopN:              a.TopN,
		Parallel:          a.Parallel,
		PayoutRatio:       cfg.Staking.PayoutRatio,
		Bankroll:          decimal.NewFromFloat(cfg.Staking.Bankroll),
		KellyMultiplier:   cfg.Staking.KellyMultiplier,
	}

	return s, s.Validate()
}

// Validate validates settings
func (s Settings) Validate() error {
	if err := s.TemperatureBands.Validate(); err != nil {
		return fmt.Errorf("invalid temperature bands: %w", err)
	}
	if err := s.ConfidenceBands.Validate(); err != nil {
		return fmt.Errorf("invalid confidence bands: %w", err)
	}
	if s.TopN <= 0 {
		return fmt.Errorf("top n must be positive")
	}
	if s.TeamMinGames < 0 || s.ModelMinGames < 0 {
		return fmt.Errorf("minimum sample sizes cannot be negative")
	}
	if s.Thresholds.MinCriteria <= 0 || s.Thresholds.MinCriteria > len(scenario.CompositeCriteria(s.Thresholds)) {
		return fmt.Errorf("min criteria must be between 1 and %d", len(scenario.CompositeCriteria(s.Thresholds)))
	}
	return nil
}
