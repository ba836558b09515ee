package models

import (
	"time"
)

// Side is the outcome a prediction backs
type Side string

// Sides a prediction can take
const (
	SideOver  Side = "Over"
	SideUnder Side = "Under"
)

// WeatherData captures conditions at first pitch. Numeric readings are optional.
type WeatherData struct {
	Condition string   `json:"condition"`
	TempF     *float64 `json:"temp_f,omitempty"`
	WindMPH   *float64 `json:"wind_mph,omitempty"`
	Humidity  *float64 `json:"humidity,omitempty"`
}

// ModelVote is a single ensemble member's call on a game
type ModelVote struct {
	Prediction Side `json:"prediction"`
	Correct    bool `json:"correct"`
}

// GameRecord is one evaluated prediction from a backtest run
type GameRecord struct {
	GameID         string               `json:"gameId"`
	GameDate       Date                 `json:"gameDate"`
	Prediction     Side                 `json:"prediction"`
	Correct        bool                 `json:"correct"`
	Confidence     float64              `json:"confidence"`
	Edge           float64              `json:"edge"`
	Weather        *WeatherData         `json:"weatherData,omitempty"`
	ModelBreakdown map[string]ModelVote `json:"modelBreakdown,omitempty"`
}

// Teams returns the away and home team parsed from the game ID
func (g GameRecord) Teams() (away, home string, err error) {
	return ParseGameID(g.GameID)
}

// Weekday returns the calendar weekday of the game date
func (g GameRecord) Weekday() time.Weekday {
	return g.GameDate.Weekday()
}

// HasWeather reports whether weather data was captured for the game
func (g GameRecord) HasWeather() bool {
	return g.Weather != nil
}

// TempF returns the recorded temperature, if any
func (g GameRecord) TempF() (float64, bool) {
	if g.Weather == nil || g.Weather.TempF == nil {
		return 0, false
	}
	return *g.Weather.TempF, true
}

// WindMPH returns the recorded wind speed, if any
func (g GameRecord) WindMPH() (float64, bool) {
	if g.Weather == nil || g.Weather.WindMPH == nil {
		return 0, false
	}
	return *g.Weather.WindMPH, true
}

// WeatherCondition returns the recorded condition, "unknown" when weather exists without one
func (g GameRecord) WeatherCondition() (string, bool) {
	if g.Weather == nil {
		return "", false
	}
	if g.Weather.Condition == "" {
		return "unknown", true
	}
	return g.Weather.Condition, true
}

// HasConsensus reports whether every ensemble member predicted the same side.
// Games without a breakdown, or with an empty one, never reach consensus.
func (g GameRecord) HasConsensus() bool {
	if len(g.ModelBreakdown) == 0 {
		return false
	}
	var first Side
	seen := false
	for _, vote := range g.ModelBreakdown {
		if !seen {
			first = vote.Prediction
			seen = true
			continue
		}
		if vote.Prediction != first {
			return false
		}
	}
	return true
}
