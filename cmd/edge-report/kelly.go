package main

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/loader"
	"github.com/yourusername/edge-analysis/internal/staking"
)

var (
	kellyWinRate  float64
	kellyEdge     float64
	kellyGames    int
	kellyPayout   float64
	kellyBankroll float64
	kellyScenario string
)

func init() {
	kellyCmd.Flags().Float64Var(&kellyWinRate, "win-rate", 0, "Historical win rate in [0,1]")
	kellyCmd.Flags().Float64Var(&kellyEdge, "edge", 0, "Average edge in percentage points")
	kellyCmd.Flags().IntVar(&kellyGames, "games", 1, "Sample size behind the win rate")
	kellyCmd.Flags().Float64Var(&kellyPayout, "payout", 0, "Net odds b (defaults to staking.payout_ratio)")
	kellyCmd.Flags().Float64Var(&kellyBankroll, "bankroll", -1, "Bankroll to size the stake against (defaults to staking.bankroll)")
	kellyCmd.Flags().StringVarP(&kellyScenario, "scenario", "s", "", "Size a scenario from the input file instead of --win-rate/--edge")
}

var kellyCmd = &cobra.Command{
	Use:   "kelly",
	Short: "Compute a Kelly stake for a win rate and edge, or for a scenario",
	RunE: func(cmd *cobra.Command, args []string) error {
		if kellyScenario != "" {
			return sizeScenario(cmd.OutOrStdout(), kellyScenario)
		}

		payout := cfg.Staking.PayoutRatio
		if kellyPayout > 0 {
			payout = kellyPayout
		}
		bankroll := cfg.Staking.Bankroll
		if kellyBankroll >= 0 {
			bankroll = kellyBankroll
		}
		calc, err := staking.NewCalculator(payout,
			staking.WithBankroll(decimal.NewFromFloat(bankroll)),
			staking.WithMultiplier(cfg.Staking.KellyMultiplier),
			staking.WithLogger(log),
		)
		if err != nil {
			return err
		}

		stat := analysis.AggregateStat{
			Key:      "manual",
			Games:    kellyGames,
			Accuracy: kellyWinRate,
			AvgEdge:  kellyEdge,
		}
		printRecommendation(cmd.OutOrStdout(), calc.Size(stat.Key, stat))
		return nil
	},
}

func sizeScenario(out io.Writer, name string) error {
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
		return err
	}
	rec, ok := result.Recommendation(name)
	if !ok {
		return fmt.Errorf("unknown or disabled scenario %q", name)
	}
	printRecommendation(out, rec)
	return nil
}

func printRecommendation(out io.Writer, rec staking.Recommendation) {
	fmt.Fprintf(out, "Scenario: %s\n", rec.Scenario)
	fmt.Fprintf(out, "Games: %d\n", rec.Games)
	fmt.Fprintf(out, "Win Rate: %.1f%%\n", rec.WinRate*100)
	fmt.Fprintf(out, "Average Edge: %.2f\n", rec.AvgEdge)
	fmt.Fprintf(out, "Payout Ratio: %.2f\n", rec.PayoutRatio)
	if !rec.Recommended {
		fmt.Fprintf(out, "Not recommended: %s\n", rec.Reason)
		return
	}
	fmt.Fprintf(out, "Kelly Fraction: %.4f (%.2f%% of bankroll)\n", rec.KellyFraction, rec.KellyPercentage)
	if rec.Stake.IsPositive() {
		fmt.Fprintf(out, "Stake: %s\n", rec.Stake.StringFixed(2))
	}
}
