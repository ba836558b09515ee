package analysis

import (
	"fmt"
	"time"

	"github.com/yourusername/edge-analysis/internal/models"
)

// Dimension names
const (
	DimensionConfidence      = "confidence_bracket"
	DimensionWeather         = "weather_condition"
	DimensionTemperature     = "temperature_band"
	DimensionWind            = "wind_regime"
	DimensionWeekday         = "day_of_week"
	DimensionMonth           = "month"
	DimensionTeam            = "team"
	DimensionVenue           = "venue"
	DimensionDayType         = "weekend_weekday"
	DimensionSide            = "prediction_side"
	DimensionSideTemperature = "side_temperature"
)

// Wind and day-type keys
const (
	WindHigh = "high"
	WindLow  = "low"
	Weekend  = "weekend"
	Weekday  = "weekday"
)

// DefaultWindThresholdMPH separates calm from windy games
const DefaultWindThresholdMPH = 12.0

// DefaultHotTemperatureF separates hot from moderate games in side and regime splits
const DefaultHotTemperatureF = 90.0

// DefaultWeekendDays are the days treated as weekend games
var DefaultWeekendDays = []time.Weekday{time.Friday, time.Saturday, time.Sunday}

// isoWeekdays lists day names Monday first
var isoWeekdays = []string{
	time.Monday.String(),
	time.Tuesday.String(),
	time.Wednesday.String(),
	time.Thursday.String(),
	time.Friday.String(),
	time.Saturday.String(),
	time.Sunday.String(),
}

func calendarMonths() []string {
	months := make([]string, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m.String())
	}
	return months
}

func single(key string) []string {
	return []string{key}
}

// ConfidenceBracket groups records by confidence band
func ConfidenceBracket(bands Bands) Dimension {
	return Dimension{
		Name:  DimensionConfidence,
		Order: bands.Labels(),
		Keys: func(rec models.GameRecord) []string {
			label, ok := bands.Classify(rec.Confidence)
			if !ok {
				return nil
			}
			return single(label)
		},
	}
}

// WeatherCondition groups records by reported sky condition
func WeatherCondition() Dimension {
	return Dimension{
		Name: DimensionWeather,
		Keys: func(rec models.GameRecord) []string {
			condition, ok := rec.WeatherCondition()
			if !ok {
				return nil
			}
			return single(condition)
		},
	}
}

// TemperatureBand groups records by temperature band
func TemperatureBand(bands Bands) Dimension {
	return Dimension{
		Name:  DimensionTemperature,
		Order: bands.Labels(),
		Keys: func(rec models.GameRecord) []string {
			temp, ok := rec.TempF()
			if !ok {
				return nil
			}
			label, ok := bands.Classify(temp)
			if !ok {
				return nil
			}
			return single(label)
		},
	}
}

// WindRegime groups records into high wind (strictly above threshold) and low wind
func WindRegime(thresholdMPH float64) Dimension {
	return Dimension{
		Name:  DimensionWind,
		Order: []string{WindHigh, WindLow},
		Keys: func(rec models.GameRecord) []string {
			wind, ok := rec.WindMPH()
			if !ok {
				return nil
			}
			if wind > thresholdMPH {
				return single(WindHigh)
			}
			return single(WindLow)
		},
	}
}

// DayOfWeek groups records by weekday name, displayed Monday first
func DayOfWeek() Dimension {
	return Dimension{
		Name:  DimensionWeekday,
		Order: isoWeekdays,
		Keys: func(rec models.GameRecord) []string {
			if rec.GameDate.IsZero() {
				return nil
			}
			return single(rec.Weekday().String())
		},
	}
}

// Month groups records by calendar month name
func Month() Dimension {
	return Dimension{
		Name:  DimensionMonth,
		Order: calendarMonths(),
		Keys: func(rec models.GameRecord) []string {
			if rec.GameDate.IsZero() {
				return nil
			}
			return single(rec.GameDate.Month().String())
		},
	}
}

// Team credits a game to both the away and the home team
func Team() Dimension {
	return Dimension{
		Name: DimensionTeam,
		Keys: func(rec models.GameRecord) []string {
			away, home, err := rec.Teams()
			if err != nil {
				return nil
			}
			return []string{away, home}
		},
	}
}

// Venue credits a game to the home team's park only
func Venue() Dimension {
	return Dimension{
		Name: DimensionVenue,
		Keys: func(rec models.GameRecord) []string {
			_, home, err := rec.Teams()
			if err != nil {
				return nil
			}
			return single(home)
		},
	}
}

// DayType splits records into weekend and weekday games
func DayType(weekend []time.Weekday) Dimension {
	return Dimension{
		Name:  DimensionDayType,
		Order: []string{Weekend, Weekday},
		Keys: func(rec models.GameRecord) []string {
			if rec.GameDate.IsZero() {
				return nil
			}
			return single(dayType(rec, weekend))
		},
	}
}

// PredictionSide groups records by the side that was predicted
func PredictionSide() Dimension {
	return Dimension{
		Name:  DimensionSide,
		Order: []string{string(models.SideOver), string(models.SideUnder)},
		Keys: func(rec models.GameRecord) []string {
			if rec.Prediction == "" {
				return nil
			}
			return single(string(rec.Prediction))
		},
	}
}

// SideTemperature crosses prediction side with a hot/moderate temperature split
func SideTemperature(hotAboveF float64) Dimension {
	hot := HotLabel(hotAboveF)
	moderate := ModerateLabel(hotAboveF)
	order := make([]string, 0, 4)
	for _, side := range []models.Side{models.SideOver, models.SideUnder} {
		order = append(order, sideKey(side, hot), sideKey(side, moderate))
	}
	return Dimension{
		Name:  DimensionSideTemperature,
		Order: order,
		Keys: func(rec models.GameRecord) []string {
			temp, ok := rec.TempF()
			if !ok || rec.Prediction == "" {
				return nil
			}
			if temp > hotAboveF {
				return single(sideKey(rec.Prediction, hot))
			}
			return single(sideKey(rec.Prediction, moderate))
		},
	}
}

// HotLabel names the band strictly above the hot threshold
func HotLabel(hotAboveF float64) string {
	return fmt.Sprintf("Hot (>%g°F)", hotAboveF)
}

// ModerateLabel names the band at or below the hot threshold
func ModerateLabel(hotAboveF float64) string {
	return fmt.Sprintf("Moderate (≤%g°F)", hotAboveF)
}

func sideKey(side models.Side, band string) string {
	return string(side) + " / " + band
}

func dayType(rec models.GameRecord, weekend []time.Weekday) string {
	day := rec.Weekday()
	for _, w := range weekend {
		if day == w {
			return Weekend
		}
	}
	return Weekday
}
