// Package analysis groups backtest game records by derived keys and reports
// accuracy, edge and confidence statistics per group.
package analysis

import "github.com/yourusername/edge-analysis/internal/models"

// AggregateStat summarises the records that contributed to one group key
type AggregateStat struct {
	Key           string        `json:"key"`
	Games         int           `json:"games"`
	Correct       int           `json:"correct"`
	Accuracy      float64       `json:"accuracy"`
	AvgConfidence float64       `json:"avg_confidence"`
	AvgEdge       float64       `json:"avg_edge"`
	Weather       *WeatherMeans `json:"weather,omitempty"`
}

// WeatherMeans holds weather readings averaged over the records that reported them
type WeatherMeans struct {
	Samples     int     `json:"samples"`
	AvgTempF    float64 `json:"avg_temp_f"`
	AvgWindMPH  float64 `json:"avg_wind_mph"`
	AvgHumidity float64 `json:"avg_humidity"`
}

// Incorrect returns the number of missed predictions in the group
func (s AggregateStat) Incorrect() int {
	return s.Games - s.Correct
}

// Summarize builds the statistics for an arbitrary subset of records
func Summarize(key string, records []models.GameRecord) AggregateStat {
	acc := &accumulator{}
	for _, rec := range records {
		acc.add(rec, rec.Correct)
	}
	return acc.stat(key)
}

type runningMean struct {
	sum float64
	n   int
}

func (m *runningMean) add(v float64) {
	m.sum += v
	m.n++
}

func (m runningMean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

// accumulator reduces contributions to a single key. correct is passed
// separately so ensemble members can be scored on their own votes.
type accumulator struct {
	games      int
	correct    int
	confidence runningMean
	edge       runningMean
	weather    int
	temp       runningMean
	wind       runningMean
	humidity   runningMean
}

func (a *accumulator) add(rec models.GameRecord, correct bool) {
	a.games++
	if correct {
		a.correct++
	}
	a.confidence.add(rec.Confidence)
	a.edge.add(rec.Edge)

	if rec.Weather == nil {
		return
	}
	a.weather++
	if rec.Weather.TempF != nil {
		a.temp.add(*rec.Weather.TempF)
	}
	if rec.Weather.WindMPH != nil {
		a.wind.add(*rec.Weather.WindMPH)
	}
	if rec.Weather.Humidity != nil {
		a.humidity.add(*rec.Weather.Humidity)
	}
}

func (a *accumulator) stat(key string) AggregateStat {
	stat := AggregateStat{
		Key:           key,
		Games:         a.games,
		Correct:       a.correct,
		Accuracy:      ratio(a.correct, a.games),
		AvgConfidence: a.confidence.value(),
		AvgEdge:       a.edge.value(),
	}
	if a.weather > 0 {
		stat.Weather = &WeatherMeans{
			Samples:     a.weather,
			AvgTempF:    a.temp.value(),
			AvgWindMPH:  a.wind.value(),
			AvgHumidity: a.humidity.value(),
		}
	}
	return stat
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
