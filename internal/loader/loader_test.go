package loader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/edge-analysis/internal/models"
)

func TestLoadFile(t *testing.T) {
	report, err := LoadFile(filepath.Join("testdata", "backtest_results.json"))
	require.NoError(t, err)

	assert.Equal(t, 4, report.Summary.TotalGames)
	assert.True(t, decimal.RequireFromString("12.37").Equal(report.Summary.ProfitLoss.ROI))
	assert.Len(t, report.Summary.ModelPerformance, 2)
	assert.Equal(t, 2, report.Summary.ConfidenceBrackets["0.60-0.70"].Games)
	require.Len(t, report.Results, 4)

	first := report.Results[0]
	assert.Equal(t, "2025-05-16", first.GameDate.String())
	assert.Equal(t, models.SideOver, first.Prediction)
	require.NotNil(t, first.Weather)
	assert.Equal(t, "few clouds", first.Weather.Condition)
	assert.True(t, first.HasConsensus())

	second := report.Results[1]
	assert.Nil(t, second.Weather.Humidity)
	assert.False(t, second.HasConsensus())

	third := report.Results[2]
	assert.Nil(t, third.Weather)
	assert.Empty(t, third.ModelBreakdown)

	assert.Zero(t, report.Results[3].Edge)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFileWithoutResults(t *testing.T) {
	_, err := LoadFile(filepath.Join("testdata", "no_results.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrEmptyRecords)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		records int
		wantErr error
	}{
		{name: "empty results", input: `{"results": []}`, records: 0},
		{name: "null game date", input: `{"results": [{"gameId": "x", "gameDate": null}]}`, records: 1},
		{name: "bad date", input: `{"results": [{"gameDate": "16/05/2025"}]}`, wantErr: models.ErrInvalidDate},
		{name: "missing results", input: `{}`, wantErr: models.ErrEmptyRecords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, report.Results, tt.records)
		})
	}
}

func TestDecodeInvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"results": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestLoaderCachesUnchangedFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "backtest_results.json"))
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	l := NewLoader(time.Hour, nil)

	first, cached, err := l.Load(path)
	require.NoError(t, err)
	assert.False(t, cached)

	second, cached, err := l.Load(path)
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Same(t, first, second)

	hits, misses, ratio := l.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.Equal(t, 0.5, ratio)
	assert.Equal(t, 1, l.ItemCount())
}

func TestLoaderReloadsChangedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"results": []}`), 0o644))

	l := NewLoader(0, nil)
	report, cached, err := l.Load(path)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Empty(t, report.Results)

	require.NoError(t, os.WriteFile(path, []byte(`{"results": [{"gameId": "2025-05-16_A@B"}]}`), 0o644))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	report, cached, err = l.Load(path)
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Len(t, report.Results, 1)
}

func TestLoaderClear(t *testing.T) {
	l := NewLoader(time.Minute, nil)
	_, _, err := l.Load(filepath.Join("testdata", "backtest_results.json"))
	require.NoError(t, err)
	assert.Equal(t, 1, l.ItemCount())

	l.Clear()
	assert.Equal(t, 0, l.ItemCount())
}
