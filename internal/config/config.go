// Package config provides configuration management for the edge analysis tools.
package config

import (
	"fmt"
	"time"

	"github.com/yourusername/edge-analysis/internal/analysis"
)

// Config represents the complete application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Analysis AnalysisConfig `mapstructure:"analysis" validate:"required"`
	Staking  StakingConfig  `mapstructure:"staking" validate:"required"`
	Report   ReportConfig   `mapstructure:"report" validate:"required"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// AnalysisConfig holds the fixed thresholds used by groupings and scenarios
type AnalysisConfig struct {
	InputPath               string          `mapstructure:"input_path"`
	HighConfidenceThreshold float64         `mapstructure:"high_confidence_threshold" validate:"gte=0,lte=1"`
	CompositeConfidence     float64         `mapstructure:"composite_confidence_threshold" validate:"gte=0,lte=1"`
	HighEdgeThreshold       float64         `mapstructure:"high_edge_threshold"`
	MinCriteria             int             `mapstructure:"min_criteria" validate:"required,gt=0,lte=5"`
	FavorableDays           []string        `mapstructure:"favorable_days" validate:"required,min=1,dive,weekday"`
	WeekendDays             []string        `mapstructure:"weekend_days" validate:"required,min=1,dive,weekday"`
	FavorableWeather        string          `mapstructure:"favorable_weather" validate:"required"`
	TopTeams                []string        `mapstructure:"top_teams" validate:"required,min=1,dive,required"`
	DisabledScenarios       []string        `mapstructure:"disabled_scenarios"`
	WindThresholdMPH        float64         `mapstructure:"wind_threshold_mph" validate:"gt=0"`
	HotTemperatureF         float64         `mapstructure:"hot_temperature_f"`
	TemperatureBands        []analysis.Band `mapstructure:"temperature_bands" validate:"required,min=1"`
	ConfidenceBands         []analysis.Band `mapstructure:"confidence_bands" validate:"required,min=1"`
	TeamMinGames            int             `mapstructure:"team_min_games" validate:"gte=0"`
	ModelMinGames           int             `mapstructure:"model_min_games" validate:"gte=0"`
	TopN                    int             `mapstructure:"top_n" validate:"required,gt=0"`
	Parallel                bool            `mapstructure:"parallel"`
}

// StakingConfig represents Kelly sizing configuration
type StakingConfig struct {
	PayoutRatio     float64 `mapstructure:"payout_ratio" validate:"required,gt=0"`
	Bankroll        float64 `mapstructure:"bankroll" validate:"gte=0"`
	KellyMultiplier float64 `mapstructure:"kelly_multiplier" validate:"required,gt=0,lte=1"`
}

// ReportConfig represents report output configuration
type ReportConfig struct {
	OutputDir string   `mapstructure:"output_dir" validate:"required"`
	Formats   []string `mapstructure:"formats" validate:"required,min=1,dive,oneof=console json csv html yaml"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Port     int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Path     string `mapstructure:"path"`
	Textfile string `mapstructure:"textfile"`
}

// ScheduleConfig represents periodic re-analysis configuration
type ScheduleConfig struct {
	Cron            string `mapstructure:"cron"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// CacheTTL returns the report cache lifetime
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.Schedule.CacheTTLSeconds) * time.Second
}

// ParseWeekdays converts day names such as "Friday" to time.Weekday values
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, name := range names {
		day, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		days = append(days, day)
	}
	return days, nil
}

var weekdayNames = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

func weekdayStrings(days []time.Weekday) []string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = d.String()
	}
	return names
}
