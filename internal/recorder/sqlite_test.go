package recorder

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HurstLab/internal/model"
)

func sampleAnalysis(id string, created time.Time, hurst float64) *model.HurstAnalysis {
	start := time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	mid := time.Date(2020, 7, 1, 0, 0, 0, 0, time.UTC)
	return &model.HurstAnalysis{
		ID:           id,
		Symbol:       "SPY",
		Timeframe:    "5y",
		Start:        start,
		End:          end,
		Observations: 756,
		Scales: []model.ScaleSummary{
			{Scale: 11, Chunks: 68, RescaledRange: 3.1, LogScale: 1.04, LogRR: 0.49},
			{Scale: 23, Chunks: 32, RescaledRange: 4.9, LogScale: 1.36, LogRR: 0.69},
		},
		FullSeries: model.RegressionResult{HurstExponent: hurst, FractalDimension: 2 - hurst, RSquared: 0.99, Regime: model.RegimeTrending},
		Sections: []model.SectionResult{
			{Section: model.Section{Name: "First Half", Start: start, End: mid}, Regression: model.RegressionResult{HurstExponent: 0.58}},
			{Section: model.Section{Name: "Second Half", Start: mid, End: end}, Regression: model.RegressionResult{HurstExponent: 0.66}},
		},
		CreatedAt: created,
	}
}

func TestSQLiteRecorder_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurst.db")
	rec, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	defer rec.Close()

	now := time.Now().Truncate(time.Second)
	require.NoError(t, rec.RecordAnalysis(sampleAnalysis("run-1", now.Add(-time.Hour), 0.61)))
	require.NoError(t, rec.RecordAnalysis(sampleAnalysis("run-2", now, 0.64)))

	rows, err := rec.RecentAnalyses("SPY", 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "run-2", rows[0].ID)
	assert.Equal(t, 0.64, rows[0].HurstExponent)
	assert.Equal(t, model.RegimeTrending, rows[0].Regime)
	assert.Equal(t, time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC), rows[0].Start)
	assert.Equal(t, 756, rows[0].Observations)
	assert.Equal(t, now.Unix(), rows[0].CreatedAt.Unix())

	rows, err = rec.RecentAnalyses("QQQ", 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestSQLiteRecorder_ChildTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurst.db")
	rec, err := NewSQLiteRecorder(path)
	require.NoError(t, err)
	require.NoError(t, rec.RecordAnalysis(sampleAnalysis("run-1", time.Now(), 0.6)))
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var scales, regressions int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM scale_stats WHERE run_id = 'run-1'`).Scan(&scales))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM regression_results WHERE run_id = 'run-1'`).Scan(&regressions))
	assert.Equal(t, 2, scales)
	assert.Equal(t, 3, regressions)

	var label string
	require.NoError(t, db.QueryRow(`SELECT section_label FROM regression_results
		WHERE run_id = 'run-1' ORDER BY id LIMIT 1`).Scan(&label))
	assert.Equal(t, "First Half (2019-01-02 - 2020-07-01)", label)
}

func TestSQLiteRecorder_FailedSection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hurst.db")
	rec, err := NewSQLiteRecorder(path)
	require.NoError(t, err)

	a := sampleAnalysis("run-1", time.Now(), 0.6)
	a.Sections[1].Err = errors.New("regression underdetermined")
	a.Sections[1].Regression = model.RegressionResult{Regime: model.RegimeUndefined}
	require.NoError(t, rec.RecordAnalysis(a))
	require.NoError(t, rec.Close())

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	var failed int
	var regime, msg string
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM regression_results
		WHERE run_id = 'run-1' AND error IS NOT NULL`).Scan(&failed))
	require.NoError(t, db.QueryRow(`SELECT regime, error FROM regression_results
		WHERE run_id = 'run-1' AND error IS NOT NULL`).Scan(&regime, &msg))
	assert.Equal(t, 1, failed)
	assert.Equal(t, "UNDEFINED", regime)
	assert.Equal(t, "regression underdetermined", msg)
}

func TestSQLiteRecorder_DuplicateIDRollsBack(t *testing.T) {
	rec, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "hurst.db"))
	require.NoError(t, err)
	defer rec.Close()

	require.NoError(t, rec.RecordAnalysis(sampleAnalysis("dup", time.Now(), 0.6)))
	assert.Error(t, rec.RecordAnalysis(sampleAnalysis("dup", time.Now(), 0.7)))

	rows, err := rec.RecentAnalyses("SPY", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.6, rows[0].HurstExponent)
}

func TestNoopRecorder(t *testing.T) {
	var rec Recorder = NewNoopRecorder()
	assert.NoError(t, rec.RecordAnalysis(sampleAnalysis("x", time.Now(), 0.5)))
	rows, err := rec.RecentAnalyses("SPY", 5)
	assert.NoError(t, err)
	assert.Empty(t, rows)
	assert.NoError(t, rec.Close())
}
