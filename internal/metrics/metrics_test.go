package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRegistry(t *testing.T) {
	registry := GetRegistry()

	assert.NotNil(t, registry)
	assert.IsType(t, &prometheus.Registry{}, registry)
	assert.Same(t, registry, InitRegistry())
}

func TestRecordRun(t *testing.T) {
	InitRegistry()
	before := testutil.ToFloat64(RunsTotal.WithLabelValues("success"))
	recordsBefore := testutil.ToFloat64(RecordsAnalyzedTotal)

	RecordRun("success", 120, 0.02, 1700000000)

	assert.Equal(t, before+1, testutil.ToFloat64(RunsTotal.WithLabelValues("success")))
	assert.Equal(t, recordsBefore+120, testutil.ToFloat64(RecordsAnalyzedTotal))
	assert.Equal(t, float64(1700000000), testutil.ToFloat64(LastRunTimestamp))
}

func TestUpdateScenario(t *testing.T) {
	InitRegistry()

	UpdateScenario("high_confidence", 42, 0.64)

	assert.Equal(t, float64(42), testutil.ToFloat64(ScenarioGames.WithLabelValues("high_confidence")))
	assert.InDelta(t, 0.64, testutil.ToFloat64(ScenarioAccuracy.WithLabelValues("high_confidence")), 1e-9)
}

func TestRecordKellyDecision(t *testing.T) {
	InitRegistry()

	tests := []struct {
		name        string
		recommended bool
		fraction    float64
		label       string
	}{
		{name: "recommended", recommended: true, fraction: 0.05, label: "true"},
		{name: "not recommended", recommended: false, fraction: 0, label: "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(KellyDecisionsTotal.WithLabelValues(tt.label))
			RecordKellyDecision("combined_optimal", tt.recommended, tt.fraction)
			assert.Equal(t, before+1, testutil.ToFloat64(KellyDecisionsTotal.WithLabelValues(tt.label)))
			assert.Equal(t, tt.fraction, testutil.ToFloat64(KellyFraction.WithLabelValues("combined_optimal")))
		})
	}
}

func TestRecordCacheLookup(t *testing.T) {
	InitRegistry()
	hits := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("hit"))
	misses := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("miss"))

	RecordCacheLookup(true)
	RecordCacheLookup(false)
	RecordCacheLookup(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("miss")))
}

func TestHandlerServesMetrics(t *testing.T) {
	UpdateGroupKeys("team", 30)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `edge_analysis_group_keys{dimension="team"} 30`)
}

func TestWriteTextfile(t *testing.T) {
	UpdateGroupKeys("venue", 15)
	path := filepath.Join(t.TempDir(), "edge_analysis.prom")

	require.NoError(t, WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `edge_analysis_group_keys{dimension="venue"} 15`)
}
