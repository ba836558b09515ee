package analysis

import (
	"github.com/yourusername/edge-analysis/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

type recordOption func(*models.GameRecord)

func withWeather(condition string, temp, wind *float64) recordOption {
	return func(r *models.GameRecord) {
		r.Weather = &models.WeatherData{Condition: condition, TempF: temp, WindMPH: wind}
	}
}

func withVotes(votes map[string]models.ModelVote) recordOption {
	return func(r *models.GameRecord) {
		r.ModelBreakdown = votes
	}
}

func record(gameID, date string, correct bool, confidence, edge float64, opts ...recordOption) models.GameRecord {
	r := models.GameRecord{
		GameID:     gameID,
		GameDate:   models.MustParseDate(date),
		Prediction: models.SideOver,
		Correct:    correct,
		Confidence: confidence,
		Edge:       edge,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
