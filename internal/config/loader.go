// Package config provides configuration management for the edge analysis tools.
package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/scenario"
	"github.com/yourusername/edge-analysis/internal/staking"
)

// EnvPrefix prefixes every environment override, e.g. EDGE_ANALYSIS_APP_LOG_LEVEL
const EnvPrefix = "EDGE_ANALYSIS"

// DefaultConfigPath is used when no path is given
const DefaultConfigPath = "config/config.yaml"

// Load reads and parses the configuration from file and environment variables
// It expands environment variable placeholders in the YAML file (${VAR_NAME})
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found at %s: %w", configPath, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	v := newViper()
	if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return unmarshal(v)
}

// LoadWithDefaults loads configuration with default values for every analysis threshold.
// A missing file is not an error: defaults and environment variables apply.
func LoadWithDefaults(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	v := newViper()
	setDefaults(v)

	if data, err := os.ReadFile(configPath); err == nil {
		if err := v.ReadConfig(bytes.NewBufferString(os.ExpandEnv(string(data)))); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return unmarshal(v)
}

// Default returns the configuration produced by defaults alone
func Default() *Config {
	v := newViper()
	setDefaults(v)
	cfg, err := unmarshal(v)
	if err != nil {
		// defaults are static; a failure here is a programming error
		panic(err)
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	thresholds := scenario.DefaultThresholds()

	v.SetDefault("app.name", "edge-analysis")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("analysis.high_confidence_threshold", thresholds.HighConfidence)
	v.SetDefault("analysis.composite_confidence_threshold", thresholds.CompositeConfidence)
	v.SetDefault("analysis.high_edge_threshold", thresholds.HighEdge)
	v.SetDefault("analysis.min_criteria", thresholds.MinCriteria)
	v.SetDefault("analysis.favorable_days", weekdayStrings(thresholds.FavorableDays))
	v.SetDefault("analysis.weekend_days", weekdayStrings(analysis.DefaultWeekendDays))
	v.SetDefault("analysis.favorable_weather", thresholds.FavorableWeather)
	v.SetDefault("analysis.top_teams", thresholds.TopTeams)
	v.SetDefault("analysis.wind_threshold_mph", analysis.DefaultWindThresholdMPH)
	v.SetDefault("analysis.hot_temperature_f", analysis.DefaultHotTemperatureF)
	v.SetDefault("analysis.temperature_bands", bandDefaults(analysis.DefaultTemperatureBands()))
	v.SetDefault("analysis.confidence_bands", bandDefaults(analysis.DefaultConfidenceBands()))
	v.SetDefault("analysis.team_min_games", 5)
	v.SetDefault("analysis.model_min_games", 5)
	v.SetDefault("analysis.top_n", 10)
	v.SetDefault("analysis.parallel", true)

	v.SetDefault("staking.payout_ratio", staking.DefaultPayoutRatio)
	v.SetDefault("staking.bankroll", 0)
	v.SetDefault("staking.kelly_multiplier", 1.0)

	v.SetDefault("report.output_dir", "./output")
	v.SetDefault("report.formats", []string{"console"})

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9102)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("schedule.cron", "@every 15m")
	v.SetDefault("schedule.cache_ttl_seconds", 3600)
}

func bandDefaults(bands analysis.Bands) []map[string]interface{} {
	out := make([]map[string]interface{}, len(bands))
	for i, b := range bands {
		out[i] = map[string]interface{}{"label": b.Label, "upper": b.Upper}
	}
	return out
}
