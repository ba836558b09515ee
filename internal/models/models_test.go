package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGameID(t *testing.T) {
	tests := []struct {
		name    string
		gameID  string
		away    string
		home    string
		wantErr bool
	}{
		{name: "valid", gameID: "2025-05-16_ChicagoWhiteSox@ChicagoCubs", away: "ChicagoWhiteSox", home: "ChicagoCubs"},
		{name: "missing underscore", gameID: "2025-05-16ChicagoWhiteSox@ChicagoCubs", wantErr: true},
		{name: "missing at", gameID: "2025-05-16_ChicagoWhiteSoxChicagoCubs", wantErr: true},
		{name: "empty away", gameID: "2025-05-16_@ChicagoCubs", wantErr: true},
		{name: "empty home", gameID: "2025-05-16_ChicagoWhiteSox@", wantErr: true},
		{name: "two at signs", gameID: "2025-05-16_A@B@C", wantErr: true},
		{name: "empty", gameID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			away, home, err := ParseGameID(tt.gameID)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrMalformedGameID)
				assert.Empty(t, away)
				assert.Empty(t, home)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.away, away)
			assert.Equal(t, tt.home, home)
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-05-16")
	require.NoError(t, err)
	assert.Equal(t, time.Friday, d.Weekday())
	assert.Equal(t, "2025-05-16", d.String())

	_, err = ParseDate("05/16/2025")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Panics(t, func() { MustParseDate("nope") })
}

func TestDateJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-07-04"`), &d))
	assert.Equal(t, time.July, d.Month())

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-07-04"`, string(data))

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &empty))
	assert.True(t, empty.IsZero())

	assert.ErrorIs(t, json.Unmarshal([]byte(`20250704`), &d), ErrInvalidDate)
}

func TestGameRecordDecode(t *testing.T) {
	raw := `{
		"gameId": "2025-05-18_MiamiMarlins@AtlantaBraves",
		"gameDate": "2025-05-18",
		"prediction": "Under",
		"correct": false,
		"confidence": 0.71,
		"weatherData": {"condition": "", "temp_f": 88.5}
	}`

	var rec GameRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, SideUnder, rec.Prediction)
	assert.Zero(t, rec.Edge)
	assert.True(t, rec.HasWeather())
	assert.Equal(t, time.Sunday, rec.Weekday())

	temp, ok := rec.TempF()
	assert.True(t, ok)
	assert.Equal(t, 88.5, temp)

	_, ok = rec.WindMPH()
	assert.False(t, ok)

	condition, ok := rec.WeatherCondition()
	assert.True(t, ok)
	assert.Equal(t, "unknown", condition)

	away, home, err := rec.Teams()
	require.NoError(t, err)
	assert.Equal(t, "MiamiMarlins", away)
	assert.Equal(t, "AtlantaBraves", home)
}

func TestGameRecordWithoutWeather(t *testing.T) {
	rec := GameRecord{GameID: "x"}

	assert.False(t, rec.HasWeather())
	_, ok := rec.TempF()
	assert.False(t, ok)
	_, ok = rec.WeatherCondition()
	assert.False(t, ok)
	_, _, err := rec.Teams()
	assert.ErrorIs(t, err, ErrMalformedGameID)
}

func TestHasConsensus(t *testing.T) {
	tests := []struct {
		name      string
		breakdown map[string]ModelVote
		want      bool
	}{
		{name: "absent", breakdown: nil, want: false},
		{name: "empty", breakdown: map[string]ModelVote{}, want: false},
		{name: "single member", breakdown: map[string]ModelVote{"a": {Prediction: SideOver}}, want: true},
		{
			name: "all agree",
			breakdown: map[string]ModelVote{
				"a": {Prediction: SideOver, Correct: true},
				"b": {Prediction: SideOver, Correct: true},
				"c": {Prediction: SideOver, Correct: true},
			},
			want: true,
		},
		{
			name: "split",
			breakdown: map[string]ModelVote{
				"a": {Prediction: SideOver},
				"b": {Prediction: SideUnder},
				"c": {Prediction: SideOver},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := GameRecord{ModelBreakdown: tt.breakdown}
			assert.Equal(t, tt.want, rec.HasConsensus())
		})
	}
}
