package analysis

import (
	"sort"

	"github.com/yourusername/edge-analysis/internal/models"
)

// Rank returns groups with more than minGames records, best accuracy first.
// Ties fall back to sample size, then key.
func Rank(stats map[string]AggregateStat, minGames int) []AggregateStat {
	ranked := make([]AggregateStat, 0, len(stats))
	for _, stat := range stats {
		if stat.Games > minGames {
			ranked = append(ranked, stat)
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		if a.Games != b.Games {
			return a.Games > b.Games
		}
		return a.Key < b.Key
	})
	return ranked
}

// Top returns the first n ranked entries, or all of them when fewer exist
func Top(ranked []AggregateStat, n int) []AggregateStat {
	if n <= 0 {
		return []AggregateStat{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return append([]AggregateStat{}, ranked[:n]...)
}

// Bottom returns the last n ranked entries in ranked order
func Bottom(ranked []AggregateStat, n int) []AggregateStat {
	if n <= 0 {
		return []AggregateStat{}
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return append([]AggregateStat{}, ranked[len(ranked)-n:]...)
}

// ModelRank is an ensemble member's reported headline performance
type ModelRank struct {
	Name          string  `json:"name"`
	Accuracy      float64 `json:"accuracy"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// RankModels orders reported model performance by accuracy, then name
func RankModels(performance map[string]models.ModelSummary) []ModelRank {
	ranked := make([]ModelRank, 0, len(performance))
	for name, summary := range performance {
		ranked = append(ranked, ModelRank{
			Name:          name,
			Accuracy:      summary.Accuracy,
			AvgConfidence: summary.AvgConfidence,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Accuracy != ranked[j].Accuracy {
			return ranked[i].Accuracy > ranked[j].Accuracy
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
