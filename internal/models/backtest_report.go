package models

import "github.com/shopspring/decimal"

// ProfitLoss holds the money figures reported by the backtest
type ProfitLoss struct {
	ROI         decimal.Decimal `json:"roi"`
	MaxDrawdown decimal.Decimal `json:"maxDrawdown"`
}

// BracketSummary is the reported performance of one confidence bracket
type BracketSummary struct {
	Games    int     `json:"games"`
	Accuracy float64 `json:"accuracy"`
}

// ModelSummary is the reported performance of one ensemble member
type ModelSummary struct {
	Accuracy      float64 `json:"accuracy"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// BacktestSummary holds headline figures computed by the backtest itself.
// They are displayed as-is and never recomputed.
type BacktestSummary struct {
	TotalGames         int                       `json:"totalGames"`
	Accuracy           float64                   `json:"accuracy"`
	AvgConfidence      float64                   `json:"avgConfidence"`
	AvgEdge            float64                   `json:"avgEdge"`
	ProfitLoss         ProfitLoss                `json:"profitLoss"`
	ConfidenceBrackets map[string]BracketSummary `json:"confidenceBrackets"`
	ModelPerformance   map[string]ModelSummary   `json:"modelPerformance"`
}

// BacktestReport is the decoded backtest results document
type BacktestReport struct {
	Summary BacktestSummary `json:"summary"`
	Results []GameRecord    `json:"results"`
}
