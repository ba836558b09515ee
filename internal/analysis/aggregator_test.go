package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/edge-analysis/internal/models"
)

func sampleRecords() []models.GameRecord {
	return []models.GameRecord{
		record("2025-05-16_NewYorkMets@AtlantaBraves", "2025-05-16", true, 0.80, 6,
			withWeather("few clouds", ptr(78), ptr(14))),
		record("2025-05-19_AtlantaBraves@BostonRedSox", "2025-05-19", false, 0.60, 2,
			withWeather("clear sky", ptr(66), ptr(6))),
		record("2025-06-18_NewYorkMets@TexasRangers", "2025-06-18", true, 0.76, 4),
		record("2025-06-20_BostonRedSox@NewYorkMets", "2025-06-20", false, 0.65, -1,
			withWeather("few clouds", ptr(96), nil)),
	}
}

func TestGroupByAccuracyInvariant(t *testing.T) {
	records := sampleRecords()
	dims := []Dimension{
		ConfidenceBracket(DefaultConfidenceBands()),
		WeatherCondition(),
		TemperatureBand(DefaultTemperatureBands()),
		WindRegime(DefaultWindThresholdMPH),
		DayOfWeek(),
		Month(),
		Team(),
		Venue(),
		DayType(DefaultWeekendDays),
		PredictionSide(),
		SideTemperature(DefaultHotTemperatureF),
	}

	for _, dim := range dims {
		t.Run(dim.Name, func(t *testing.T) {
			g := GroupBy(records, dim)
			assert.Equal(t, dim.Name, g.Dimension)
			for key, stat := range g.Stats {
				assert.Equal(t, key, stat.Key)
				require.Greater(t, stat.Games, 0)
				assert.GreaterOrEqual(t, stat.Accuracy, 0.0)
				assert.LessOrEqual(t, stat.Accuracy, 1.0)
				assert.Equal(t, float64(stat.Correct)/float64(stat.Games), stat.Accuracy)
				assert.Equal(t, stat.Games-stat.Correct, stat.Incorrect())
			}
			assert.Len(t, g.Order, g.Len())
		})
	}
}

func TestGroupByEmpty(t *testing.T) {
	g := GroupBy(nil, WeatherCondition())
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Ordered())

	stat := Summarize("none", nil)
	assert.Zero(t, stat.Games)
	assert.Zero(t, stat.Accuracy)
	assert.Zero(t, stat.AvgConfidence)
	assert.Zero(t, stat.AvgEdge)
	assert.Nil(t, stat.Weather)
}

func TestTeamGroupingCreditsBothSides(t *testing.T) {
	g := GroupBy(sampleRecords(), Team())

	mets, ok := g.Get("NewYorkMets")
	require.True(t, ok)
	assert.Equal(t, 3, mets.Games)
	assert.Equal(t, 2, mets.Correct)

	braves, ok := g.Get("AtlantaBraves")
	require.True(t, ok)
	assert.Equal(t, 2, braves.Games)

	assert.Equal(t, []string{"AtlantaBraves", "BostonRedSox", "NewYorkMets", "TexasRangers"}, g.Order)
}

func TestVenueGroupingUsesHomeTeamOnly(t *testing.T) {
	g := GroupBy(sampleRecords(), Venue())

	assert.Equal(t, 4, g.Len())
	mets, ok := g.Get("NewYorkMets")
	require.True(t, ok)
	assert.Equal(t, 1, mets.Games)
	assert.False(t, mets.Accuracy > 0)
}

func TestSameTeamTwiceCountsOnce(t *testing.T) {
	records := []models.GameRecord{record("2025-05-16_Athletics@Athletics", "2025-05-16", true, 0.7, 1)}
	g := GroupBy(records, Team())

	stat, ok := g.Get("Athletics")
	require.True(t, ok)
	assert.Equal(t, 1, stat.Games)
}

func TestMalformedGameIDExcludedFromTeamsOnly(t *testing.T) {
	records := append(sampleRecords(), record("garbled", "2025-05-17", true, 0.9, 3))

	assert.Equal(t, 4, GroupBy(records, Team()).Len())
	assert.Equal(t, 4, GroupBy(records, Venue()).Len())

	days := GroupBy(records, DayOfWeek())
	saturday, ok := days.Get("Saturday")
	require.True(t, ok)
	assert.Equal(t, 1, saturday.Games)
}

func TestMissingWeatherExcludedFromWeatherGroupings(t *testing.T) {
	records := sampleRecords()

	weather := GroupBy(records, WeatherCondition())
	total := 0
	for _, stat := range weather.Stats {
		total += stat.Games
	}
	assert.Equal(t, 3, total)

	wind := GroupBy(records, WindRegime(DefaultWindThresholdMPH))
	high, ok := wind.Get(WindHigh)
	require.True(t, ok)
	assert.Equal(t, 1, high.Games)
	low, ok := wind.Get(WindLow)
	require.True(t, ok)
	assert.Equal(t, 1, low.Games)
}

func TestWeatherMeans(t *testing.T) {
	g := GroupBy(sampleRecords(), WeatherCondition())

	fewClouds, ok := g.Get("few clouds")
	require.True(t, ok)
	assert.Equal(t, 2, fewClouds.Games)
	require.NotNil(t, fewClouds.Weather)
	assert.Equal(t, 2, fewClouds.Weather.Samples)
	assert.Equal(t, 87.0, fewClouds.Weather.AvgTempF)
	assert.Equal(t, 14.0, fewClouds.Weather.AvgWindMPH)
	assert.Zero(t, fewClouds.Weather.AvgHumidity)
	assert.Equal(t, 2.5, fewClouds.AvgEdge)
	assert.InDelta(t, 0.725, fewClouds.AvgConfidence, 1e-9)
}

func TestWindThresholdIsStrict(t *testing.T) {
	records := []models.GameRecord{
		record("2025-05-16_A@B", "2025-05-16", true, 0.7, 1, withWeather("clear sky", nil, ptr(12))),
		record("2025-05-16_A@B", "2025-05-16", true, 0.7, 1, withWeather("clear sky", nil, ptr(12.1))),
	}
	g := GroupBy(records, WindRegime(12))

	high, _ := g.Get(WindHigh)
	low, _ := g.Get(WindLow)
	assert.Equal(t, 1, high.Games)
	assert.Equal(t, 1, low.Games)
}

func TestWithMinGamesIsStrict(t *testing.T) {
	records := sampleRecords()

	g := GroupBy(records, Team(), WithMinGames(2))
	assert.Equal(t, []string{"NewYorkMets"}, g.Order)

	g = GroupBy(records, Team(), WithMinGames(0))
	assert.Equal(t, 4, g.Len())
}

func TestDisplayOrderIsCanonical(t *testing.T) {
	records := []models.GameRecord{
		record("2025-06-22_A@B", "2025-06-22", true, 0.7, 1),
		record("2025-05-19_A@B", "2025-05-19", true, 0.7, 1),
		record("2025-04-16_A@B", "2025-04-16", true, 0.7, 1),
		record("2025-09-20_A@B", "2025-09-20", true, 0.7, 1),
	}

	days := GroupBy(records, DayOfWeek())
	assert.Equal(t, []string{"Monday", "Wednesday", "Saturday", "Sunday"}, days.Order)

	months := GroupBy(records, Month())
	assert.Equal(t, []string{"April", "May", "June", "September"}, months.Order)

	dayType := GroupBy(records, DayType([]time.Weekday{time.Saturday, time.Sunday}))
	assert.Equal(t, []string{Weekend, Weekday}, dayType.Order)
	weekend, _ := dayType.Get(Weekend)
	assert.Equal(t, 2, weekend.Games)
}

func TestTemperatureAndConfidenceBandOrder(t *testing.T) {
	records := sampleRecords()

	temps := GroupBy(records, TemperatureBand(DefaultTemperatureBands()))
	assert.Equal(t, []string{"Cold", "Mild", "Very Hot"}, temps.Order)

	conf := GroupBy(records, ConfidenceBracket(DefaultConfidenceBands()))
	assert.Equal(t, []string{"0.60-0.70", "0.75-0.80", ">=0.80"}, conf.Order)
	mid, _ := conf.Get("0.60-0.70")
	assert.Equal(t, 2, mid.Games)
}

func TestSideTemperature(t *testing.T) {
	records := sampleRecords()
	records[1].Prediction = models.SideUnder

	g := GroupBy(records, SideTemperature(90))
	assert.Equal(t, []string{
		"Over / " + HotLabel(90),
		"Over / " + ModerateLabel(90),
		"Under / " + ModerateLabel(90),
	}, g.Order)
	assert.Equal(t, "Hot (>90°F)", HotLabel(90))
	assert.Equal(t, "Moderate (≤90°F)", ModerateLabel(90))
}

func TestGroupModelVotesScoresMembers(t *testing.T) {
	votes := func(aCorrect, bCorrect bool) map[string]models.ModelVote {
		return map[string]models.ModelVote{
			"pitching": {Prediction: models.SideOver, Correct: aCorrect},
			"offense":  {Prediction: models.SideUnder, Correct: bCorrect},
		}
	}
	records := []models.GameRecord{
		record("2025-05-16_A@B", "2025-05-16", true, 0.7, 1, withWeather("clear sky", ptr(95), ptr(20)), withVotes(votes(true, false))),
		record("2025-05-17_A@B", "2025-05-17", true, 0.7, 1, withWeather("clear sky", ptr(91), nil), withVotes(votes(true, true))),
		record("2025-05-19_A@B", "2025-05-19", false, 0.7, 1, withWeather("clear sky", ptr(60), ptr(3)), withVotes(votes(false, true))),
		record("2025-05-20_A@B", "2025-05-20", true, 0.7, 1, withVotes(votes(true, true))),
	}

	regimes := []Regime{
		TemperatureRegime(DefaultHotTemperatureF),
		WindSplitRegime(DefaultWindThresholdMPH),
		DayTypeRegime(DefaultWeekendDays),
	}
	groupings := GroupModelVotes(records, regimes)
	require.Len(t, groupings, 6)

	byLabel := make(map[string]Grouping, len(groupings))
	for _, g := range groupings {
		byLabel[g.Dimension] = g
	}

	hot := byLabel[RegimeHighTemp]
	pitching, ok := hot.Get("pitching")
	require.True(t, ok)
	assert.Equal(t, 2, pitching.Games)
	assert.Equal(t, 1.0, pitching.Accuracy)
	offense, _ := hot.Get("offense")
	assert.Equal(t, 0.5, offense.Accuracy)

	highWind := byLabel[RegimeHighWind]
	offense, _ = highWind.Get("offense")
	assert.Equal(t, 1, offense.Games)
	assert.Equal(t, 0.0, offense.Accuracy)

	weekday := byLabel[RegimeWeekday]
	pitching, _ = weekday.Get("pitching")
	assert.Equal(t, 1, pitching.Games)

	filtered := GroupModelVotes(records, regimes, WithMinGames(1))
	for _, g := range filtered {
		if g.Dimension == RegimeHighTemp {
			assert.Equal(t, 2, g.Len())
		}
		if g.Dimension == RegimeLowTemp {
			assert.Zero(t, g.Len())
		}
	}
}
