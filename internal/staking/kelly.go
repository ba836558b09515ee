// Package staking converts a group's historical hit rate into a Kelly stake.
package staking

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/edge-analysis/internal/analysis"
)

// DefaultPayoutRatio is the net odds of a -110 line (1.9 decimal)
const DefaultPayoutRatio = 0.9

// Reasons a group is not staked
const (
	ReasonNoGames       = "no games in group"
	ReasonWinRate       = "win rate at or below 50%"
	ReasonNonPositiveEV = "average edge not positive"
)

// Recommendation is the staking outcome for one group. When Recommended is
// false the fraction fields are zero and Reason explains why.
type Recommendation struct {
	Scenario        string          `json:"scenario"`
	Games           int             `json:"games"`
	WinRate         float64         `json:"win_rate"`
	AvgEdge         float64         `json:"avg_edge"`
	PayoutRatio     float64         `json:"payout_ratio"`
	Recommended     bool            `json:"recommended"`
	KellyFraction   float64         `json:"kelly_fraction"`
	KellyPercentage float64         `json:"kelly_percentage"`
	Stake           decimal.Decimal `json:"stake"`
	Reason          string          `json:"reason,omitempty"`
}

// Calculator sizes bets with the Kelly criterion at a fixed payout ratio
type Calculator struct {
	payoutRatio float64
	bankroll    decimal.Decimal
	multiplier  float64
	logger      logrus.FieldLogger
}

// Option configures a Calculator
type Option func(*Calculator)

// WithBankroll sets the bankroll used to express the fraction as a stake
func WithBankroll(bankroll decimal.Decimal) Option {
	return func(c *Calculator) {
		c.bankroll = bankroll
	}
}

// WithMultiplier applies fractional Kelly to the stake amount
func WithMultiplier(multiplier float64) Option {
	return func(c *Calculator) {
		c.multiplier = multiplier
	}
}

// WithLogger sets the logger used for sizing decisions
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Calculator) {
		c.logger = logger
	}
}

// NewCalculator creates a calculator for net odds payoutRatio
func NewCalculator(payoutRatio float64, opts ...Option) (*Calculator, error) {
	if payoutRatio <= 0 {
		return nil, fmt.Errorf("payout ratio must be positive, got %.4f", payoutRatio)
	}
	c := &Calculator{
		payoutRatio: payoutRatio,
		bankroll:    decimal.Zero,
		multiplier:  1.0,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.multiplier <= 0 || c.multiplier > 1 {
		return nil, fmt.Errorf("kelly multiplier must be in (0, 1], got %.4f", c.multiplier)
	}
	if c.bankroll.IsNegative() {
		return nil, fmt.Errorf("bankroll cannot be negative")
	}
	return c, nil
}

// PayoutRatio returns the net odds used for sizing
func (c *Calculator) PayoutRatio() float64 {
	return c.payoutRatio
}

// KellyFraction computes (b·p − q) / b with no gating
func KellyFraction(p, b float64) float64 {
	q := 1.0 - p
	return (b*p - q) / b
}

// Size recommends a bankroll fraction for stat. The profitability gate takes
// precedence over the formula: groups at or below a 50% win rate or without
// positive edge are never staked.
func (c *Calculator) Size(name string, stat analysis.AggregateStat) Recommendation {
	rec := Recommendation{
		Scenario:    name,
		Games:       stat.Games,
		WinRate:     stat.Accuracy,
		AvgEdge:     stat.AvgEdge,
		PayoutRatio: c.payoutRatio,
		Stake:       decimal.Zero,
	}

	switch {
	case stat.Games == 0:
		rec.Reason = ReasonNoGames
	case stat.Accuracy <= 0.5:
		rec.Reason = ReasonWinRate
	case stat.AvgEdge <= 0:
		rec.Reason = ReasonNonPositiveEV
	default:
		rec.Recommended = true
		rec.KellyFraction = KellyFraction(stat.Accuracy, c.payoutRatio)
		rec.KellyPercentage = rec.KellyFraction * 100
		if rec.KellyFraction > 0 {
			rec.Stake = c.bankroll.Mul(decimal.NewFromFloat(rec.KellyFraction * c.multiplier)).Round(2)
		}
	}

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"scenario":       name,
			"win_rate":       rec.WinRate,
			"avg_edge":       rec.AvgEdge,
			"recommended":    rec.Recommended,
			"kelly_fraction": rec.KellyFraction,
			"stake":          rec.Stake.String(),
			"reason":         rec.Reason,
		}).Debug("Kelly sizing evaluated")
	}
	return rec
}
