// Package report runs the full edge analysis over a backtest document and
// renders the outcome.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/edge-analysis/internal/analysis"
	"github.com/yourusername/edge-analysis/internal/models"
	"github.com/yourusername/edge-analysis/internal/scenario"
	"github.com/yourusername/edge-analysis/internal/staking"
)

// Ranking is the top and bottom of one ranked grouping
type Ranking struct {
	Dimension string                   `json:"dimension"`
	MinGames  int                      `json:"min_games"`
	Ranked    int                      `json:"ranked"`
	Top       []analysis.AggregateStat `json:"top"`
	Bottom    []analysis.AggregateStat `json:"bottom"`
}

// OutcomeSplit compares the correct and incorrect records of one scenario
type OutcomeSplit struct {
	Scenario  string                 `json:"scenario"`
	Correct   analysis.AggregateStat `json:"correct"`
	Incorrect analysis.AggregateStat `json:"incorrect"`
}

// Result is the complete output of an analysis run
type Result struct {
	RunID            uuid.UUID                `json:"run_id"`
	GeneratedAt      time.Time                `json:"generated_at"`
	Source           string                   `json:"source,omitempty"`
	Records          int                      `json:"records"`
	Summary          models.BacktestSummary   `json:"summary"`
	Models           []analysis.ModelRank     `json:"models"`
	Groupings        []analysis.Grouping      `json:"groupings"`
	ModelRegimes     []Ranking                `json:"model_regimes"`
	Teams            Ranking                  `json:"teams"`
	Venues           Ranking                  `json:"venues"`
	Scenarios        []scenario.Result        `json:"scenarios"`
	HighConfidence   OutcomeSplit             `json:"high_confidence_split"`
	Kelly            []staking.Recommendation `json:"kelly"`
	MalformedGameIDs int                      `json:"malformed_game_ids"`
	Duration         time.Duration            `json:"duration_ns"`
}

// Grouping returns the grouping for a dimension name
func (r *Result) Grouping(dimension string) (analysis.Grouping, bool) {
	for _, g := range r.Groupings {
		if g.Dimension == dimension {
			return g, true
		}
	}
	return analysis.Grouping{}, false
}

// Scenario returns the result for a scenario name
func (r *Result) Scenario(name string) (scenario.Result, bool) {
	for _, s := range r.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return scenario.Result{}, false
}

// Recommendation returns the Kelly recommendation for a scenario name
func (r *Result) Recommendation(name string) (staking.Recommendation, bool) {
	for _, k := range r.Kelly {
		if k.Scenario == name {
			return k, true
		}
	}
	return staking.Recommendation{}, false
}

// Recommended returns the scenarios cleared for staking
func (r *Result) Recommended() []staking.Recommendation {
	out := make([]staking.Recommendation, 0, len(r.Kelly))
	for _, k := range r.Kelly {
		if k.Recommended {
			out = append(out, k)
		}
	}
	return out
}
