package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/yourusername/edge-analysis/internal/health"
	"github.com/yourusername/edge-analysis/internal/loader"
	"github.com/yourusername/edge-analysis/internal/metrics"
	"github.com/yourusername/edge-analysis/internal/report"
	"github.com/yourusername/edge-analysis/internal/scheduler"
)

var (
	watchCron string
	watchPort int
)

func init() {
	watchCmd.Flags().StringVar(&watchCron, "cron", "", "Cron expression for re-analysis (defaults to schedule.cron)")
	watchCmd.Flags().IntVar(&watchPort, "port", 0, "HTTP port for health, metrics and report endpoints (defaults to metrics.port)")
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-analyse the input file on a schedule and serve the latest result",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := requireInput()
		if err != nil {
			return err
		}
		analyzer, err := newAnalyzer()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		port := cfg.Metrics.Port
		if watchPort > 0 {
			port = watchPort
		}
		serverCfg := health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Port:        strconv.Itoa(port),
			MetricsPath: cfg.Metrics.Path,
			Logger:      log,
		}
		if cfg.Metrics.Enabled {
			serverCfg.MetricsHandler = metrics.Handler()
		}
		server := health.NewServer(serverCfg)
		if err := server.Start(ctx); err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}

		job := &watchJob{
			path:     path,
			loader:   loader.NewLoader(cfg.CacheTTL(), log),
			analyzer: analyzer,
			exporter: report.Exporter{OutputDir: cfg.Report.OutputDir, Formats: fileFormats(cfg.Report.Formats)},
			server:   server,
		}
		if err := job.Run(ctx); err != nil {
			log.WithError(err).Error("Initial analysis failed")
		}

		expr := cfg.Schedule.Cron
		if watchCron != "" {
			expr = watchCron
		}
		sched := scheduler.NewScheduler(log, time.Minute)
		if _, err := sched.Schedule(expr, "edge-analysis", job.Run); err != nil {
			return err
		}
		if err := sched.Start(); err != nil {
			return err
		}

		<-ctx.Done()
		log.Info("Shutting down")
		return sched.Stop()
	},
}

// watchJob re-runs the analysis whenever the input file changes
type watchJob struct {
	path     string
	loader   *loader.Loader
	analyzer *report.Analyzer
	exporter report.Exporter
	server   *health.Server
}

func (j *watchJob) Run(ctx context.Context) error {
	doc, cached, err := j.loader.Load(j.path)
	metrics.RecordCacheLookup(cached)
	if err != nil {
		return err
	}
	if cached && j.server.IsReady() {
		log.WithField("path", j.path).Debug("Input unchanged, skipping analysis")
		return nil
	}

	result, err := j.analyzer.Run(ctx, doc, j.path)
	if err != nil {
		return err
	}
	j.server.SetResult(result)

	if _, err := j.exporter.Export(result); err != nil {
		return err
	}
	return nil
}

func fileFormats(formats []string) []string {
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		if f != report.FormatConsole {
			out = append(out, f)
		}
	}
	return out
}
