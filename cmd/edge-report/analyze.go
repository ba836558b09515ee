package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/edge-analysis/internal/loader"
	"github.com/yourusername/edge-analysis/internal/metrics"
	"github.com/yourusername/edge-analysis/internal/report"
)

var (
	analyzeFormats   []string
	analyzeOutputDir string
	metricsTextfile  string
)

func init() {
	analyzeCmd.Flags().StringSliceVarP(&analyzeFormats, "format", "f", nil, "Output formats: console, json, csv, html, yaml")
	analyzeCmd.Flags().StringVarP(&analyzeOutputDir, "output-dir", "o", "", "Directory for file reports")
	analyzeCmd.Flags().StringVar(&metricsTextfile, "metrics-textfile", "", "Write Prometheus metrics to this file after the run")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full edge analysis once",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireInput()
		if err != nil {
			return err
		}

		doc, err := loader.LoadFile(path)
		if err != nil {
			return err
		}

		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		result, err := analyzer.Run(context.Background(), doc, path)
		if err != nil {
			return fmt.Errorf("analysis failed: %w", err)
		}

		exporter := report.Exporter{
			OutputDir: cfg.Report.OutputDir,
			Formats:   cfg.Report.Formats,
			Stdout:    cmd.OutOrStdout(),
		}
		if len(analyzeFormats) > 0 {
			exporter.Formats = analyzeFormats
		}
		if analyzeOutputDir != "" {
			exporter.OutputDir = analyzeOutputDir
		}

		written, err := exporter.Export(result)
		if err != nil {
			return err
		}
		for _, p := range written {
			log.WithField("path", p).Info("Report written")
		}

		textfile := cfg.Metrics.Textfile
		if metricsTextfile != "" {
			textfile = metricsTextfile
		}
		if textfile != "" {
			if err := metrics.WriteTextfile(textfile); err != nil {
				return fmt.Errorf("failed to write metrics textfile: %w", err)
			}
			log.WithFields(logrus.Fields{"path": textfile}).Debug("Metrics textfile written")
		}
		return nil
	},
}
