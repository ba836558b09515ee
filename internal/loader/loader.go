// Package loader reads backtest result documents from disk.
package loader

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/yourusername/edge-analysis/internal/models"
)

type document struct {
	Summary models.BacktestSummary `json:"summary"`
	Results *[]models.GameRecord   `json:"results"`
}

// Decode parses a backtest results document. A document without a results
// array is rejected; an empty array is accepted.
func Decode(r io.Reader) (*models.BacktestReport, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode backtest results: %w", err)
	}
	if doc.Results == nil {
		return nil, fmt.Errorf("backtest results document: %w", models.ErrEmptyRecords)
	}
	return &models.BacktestReport{
		Summary: doc.Summary,
		Results: *doc.Results,
	}, nil
}

// LoadFile reads and decodes the document at path
func LoadFile(path string) (*models.BacktestReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open backtest results: %w", err)
	}
	defer f.Close()

	report, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return report, nil
}
