// Package scenario classifies game records into named, overlapping betting scenarios.
package scenario

import (
	"time"

	"github.com/yourusername/edge-analysis/internal/models"
)

// Predicate reports whether a record satisfies a criterion. Predicates only
// read the record they are given.
type Predicate func(models.GameRecord) bool

// ConfidenceAbove matches confidence strictly greater than threshold
func ConfidenceAbove(threshold float64) Predicate {
	return func(rec models.GameRecord) bool {
		return rec.Confidence > threshold
	}
}

// EdgeAbove matches edge strictly greater than threshold. Missing edge decodes as 0.
func EdgeAbove(threshold float64) Predicate {
	return func(rec models.GameRecord) bool {
		return rec.Edge > threshold
	}
}

// Consensus matches games where every ensemble member predicted the same side
func Consensus() Predicate {
	return func(rec models.GameRecord) bool {
		return rec.HasConsensus()
	}
}

// PlayedOn matches games on any of the given weekdays
func PlayedOn(days ...time.Weekday) Predicate {
	set := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return func(rec models.GameRecord) bool {
		if rec.GameDate.IsZero() {
			return false
		}
		return set[rec.Weekday()]
	}
}

// WeatherIs matches games whose reported condition equals condition
func WeatherIs(condition string) Predicate {
	return func(rec models.GameRecord) bool {
		return rec.Weather != nil && rec.Weather.Condition == condition
	}
}

// InvolvesTeam matches games where the away or home team is in teams.
// Game IDs that do not parse never match.
func InvolvesTeam(teams []string) Predicate {
	set := make(map[string]bool, len(teams))
	for _, t := range teams {
		set[t] = true
	}
	return func(rec models.GameRecord) bool {
		away, home, err := models.ParseGameID(rec.GameID)
		if err != nil {
			return false
		}
		return set[away] || set[home]
	}
}

// All matches when every predicate matches
func All(preds ...Predicate) Predicate {
	return func(rec models.GameRecord) bool {
		for _, p := range preds {
			if !p(rec) {
				return false
			}
		}
		return true
	}
}

// AtLeast matches when k or more predicates match. Each predicate counts once.
func AtLeast(k int, preds ...Predicate) Predicate {
	return func(rec models.GameRecord) bool {
		return CountMatches(rec, preds...) >= k
	}
}

// CountMatches returns how many predicates rec satisfies
func CountMatches(rec models.GameRecord, preds ...Predicate) int {
	met := 0
	for _, p := range preds {
		if p(rec) {
			met++
		}
	}
	return met
}
