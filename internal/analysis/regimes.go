package analysis

import (
	"time"

	"github.com/yourusername/edge-analysis/internal/models"
)

// Regime labels used when scoring ensemble members
const (
	RegimeHighTemp = "high_temp"
	RegimeLowTemp  = "low_temp"
	RegimeHighWind = "high_wind"
	RegimeLowWind  = "low_wind"
	RegimeWeekend  = "weekend"
	RegimeWeekday  = "weekday"
)

// Regime assigns a record to one label of a family of playing conditions
type Regime struct {
	Name     string
	Labels   []string
	Classify func(models.GameRecord) (string, bool)
}

// TemperatureRegime splits on temperature strictly above hotAboveF
func TemperatureRegime(hotAboveF float64) Regime {
	return Regime{
		Name:   "temperature",
		Labels: []string{RegimeHighTemp, RegimeLowTemp},
		Classify: func(rec models.GameRecord) (string, bool) {
			temp, ok := rec.TempF()
			if !ok {
				return "", false
			}
			if temp > hotAboveF {
				return RegimeHighTemp, true
			}
			return RegimeLowTemp, true
		},
	}
}

// WindSplitRegime splits on wind strictly above thresholdMPH
func WindSplitRegime(thresholdMPH float64) Regime {
	return Regime{
		Name:   "wind",
		Labels: []string{RegimeHighWind, RegimeLowWind},
		Classify: func(rec models.GameRecord) (string, bool) {
			wind, ok := rec.WindMPH()
			if !ok {
				return "", false
			}
			if wind > thresholdMPH {
				return RegimeHighWind, true
			}
			return RegimeLowWind, true
		},
	}
}

// DayTypeRegime splits weekend from weekday games
func DayTypeRegime(weekend []time.Weekday) Regime {
	return Regime{
		Name:   "day_type",
		Labels: []string{RegimeWeekend, RegimeWeekday},
		Classify: func(rec models.GameRecord) (string, bool) {
			if rec.GameDate.IsZero() {
				return "", false
			}
			if dayType(rec, weekend) == Weekend {
				return RegimeWeekend, true
			}
			return RegimeWeekday, true
		},
	}
}

// GroupModelVotes scores each ensemble member on its own votes within every
// regime label. Only records carrying both a model breakdown and weather data
// are considered. The result holds one grouping per label, keyed by model name,
// in regime order.
func GroupModelVotes(records []models.GameRecord, regimes []Regime, opts ...GroupOption) []Grouping {
	options := groupOptions{minGames: -1}
	for _, opt := range opts {
		opt(&options)
	}

	labels := make([]string, 0, len(regimes)*2)
	buckets := make(map[string]map[string]*accumulator)
	for _, regime := range regimes {
		for _, label := range regime.Labels {
			labels = append(labels, label)
			buckets[label] = make(map[string]*accumulator)
		}
	}

	for _, rec := range records {
		if len(rec.ModelBreakdown) == 0 || rec.Weather == nil {
			continue
		}
		for _, regime := range regimes {
			label, ok := regime.Classify(rec)
			if !ok {
				continue
			}
			byModel, ok := buckets[label]
			if !ok {
				byModel = make(map[string]*accumulator)
				buckets[label] = byModel
				labels = append(labels, label)
			}
			for model, vote := range rec.ModelBreakdown {
				acc, ok := byModel[model]
				if !ok {
					acc = &accumulator{}
					byModel[model] = acc
				}
				acc.add(rec, vote.Correct)
			}
		}
	}

	groupings := make([]Grouping, 0, len(labels))
	for _, label := range labels {
		groupings = append(groupings, newGrouping(label, nil, buckets[label], options.minGames))
	}
	return groupings
}
