// Package main provides the edge-report CLI for analysing backtest results.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/edge-analysis/internal/config"
	"github.com/yourusername/edge-analysis/internal/logger"
	"github.com/yourusername/edge-analysis/internal/report"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	logLevel   string
	inputPath  string
	log        *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.PersistentFlags().StringVarP(&inputPath, "input", "i", "", "Path to backtest results JSON (overrides analysis.input_path)")

	rootCmd.AddCommand(analyzeCmd, kellyCmd, watchCmd, versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "edge-report",
	Short: "Analyse backtest prediction results for betting edge",
	Long: `Groups backtest prediction records by confidence, weather, calendar, team and
model, classifies them into betting scenarios and sizes each scenario with the
Kelly criterion.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd == versionCmd {
			return nil
		}
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "edge-report %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() error {
	loaded, err := config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		loaded.App.LogLevel = logLevel
	}
	if inputPath != "" {
		loaded.Analysis.InputPath = inputPath
	}
	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func requireInput() (string, error) {
	if cfg.Analysis.InputPath == "" {
		return "", fmt.Errorf("no input file: set analysis.input_path or pass --input")
	}
	return cfg.Analysis.InputPath, nil
}

func newAnalyzer() (*report.Analyzer, error) {
	settings, err := report.FromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis settings: %w", err)
	}
	return report.NewAnalyzer(settings, log)
}
