package analysis

import (
	"fmt"
	"math"
)

// Band is a labelled half-open interval ending at Upper (exclusive).
// The last band in a set is unbounded above.
type Band struct {
	Label string  `mapstructure:"label" json:"label"`
	Upper float64 `mapstructure:"upper" json:"upper"`
}

// Bands is an ordered partition of the real line
type Bands []Band

// DefaultTemperatureBands buckets temperatures in °F
func DefaultTemperatureBands() Bands {
	return Bands{
		{Label: "Cold", Upper: 70},
		{Label: "Mild", Upper: 85},
		{Label: "Hot", Upper: 95},
		{Label: "Very Hot"},
	}
}

// DefaultConfidenceBands buckets model confidence
func DefaultConfidenceBands() Bands {
	return Bands{
		{Label: "<0.60", Upper: 0.60},
		{Label: "0.60-0.70", Upper: 0.70},
		{Label: "0.70-0.75", Upper: 0.75},
		{Label: "0.75-0.80", Upper: 0.80},
		{Label: ">=0.80"},
	}
}

// Classify returns the label of the band containing v. NaN belongs to no band.
func (b Bands) Classify(v float64) (string, bool) {
	if len(b) == 0 || math.IsNaN(v) {
		return "", false
	}
	last := len(b) - 1
	for _, band := range b[:last] {
		if v < band.Upper {
			return band.Label, true
		}
	}
	return b[last].Label, true
}

// Labels returns band labels in ascending order
func (b Bands) Labels() []string {
	labels := make([]string, len(b))
	for i, band := range b {
		labels[i] = band.Label
	}
	return labels
}

// Validate checks the bands form a gap-free, non-overlapping partition
func (b Bands) Validate() error {
	if len(b) == 0 {
		return fmt.Errorf("at least one band is required")
	}
	seen := make(map[string]bool, len(b))
	for i, band := range b {
		if band.Label == "" {
			return fmt.Errorf("band %d has no label", i)
		}
		if seen[band.Label] {
			return fmt.Errorf("duplicate band label %q", band.Label)
		}
		seen[band.Label] = true
		if i > 0 && i < len(b)-1 && band.Upper <= b[i-1].Upper {
			return fmt.Errorf("band %q upper bound %.2f must exceed %.2f", band.Label, band.Upper, b[i-1].Upper)
		}
	}
	return nil
}
