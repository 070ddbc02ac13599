package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HurstLab/internal/model"
)

func analysis(symbol string, hurst float64) *model.HurstAnalysis {
	return &model.HurstAnalysis{
		Symbol:     symbol,
		Timeframe:  "5y",
		FullSeries: model.RegressionResult{HurstExponent: hurst},
		CreatedAt:  time.Date(2024, 3, 1, 22, 30, 0, 0, time.UTC),
	}
}

func TestManager_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	m, err := NewManager(path)
	require.NoError(t, err)

	assert.Nil(t, m.Update(analysis("SPY", 0.62)), "first reading is not a shift")
	assert.Nil(t, m.Update(analysis("SPY", 0.58)), "same regime")

	shift := m.Update(analysis("SPY", 0.40))
	require.NotNil(t, shift)
	assert.Equal(t, model.RegimeTrending, shift.Previous.Regime)
	assert.Equal(t, model.RegimeMeanReverting, shift.Current.Regime)
	assert.Equal(t, 0.58, shift.Previous.HurstExponent)

	assert.Nil(t, m.Update(analysis("QQQ", 0.40)), "keys are independent")

	last, ok := m.Last("SPY", "5y")
	require.True(t, ok)
	assert.Equal(t, 0.40, last.HurstExponent)
	_, ok = m.Last("SPY", "1y")
	assert.False(t, ok)
}

func TestManager_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	m, err := NewManager(path)
	require.NoError(t, err)
	m.Update(analysis("SPY", 0.7))

	reloaded, err := NewManager(path)
	require.NoError(t, err)
	last, ok := reloaded.Last("SPY", "5y")
	require.True(t, ok)
	assert.Equal(t, model.RegimeTrending, last.Regime)

	shift := reloaded.Update(analysis("SPY", 0.5))
	require.NotNil(t, shift)
	assert.Equal(t, model.RegimeRandomWalk, shift.Current.Regime)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	f, err := LoadFile(filepath.Join(dir, "missing.json"))
	require.NoError(t, err)
	assert.Empty(t, f.Readings)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0644))
	_, err = LoadFile(bad)
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, []byte(`{"updated_at":"2024-01-01T00:00:00Z"}`), 0644))
	f, err = LoadFile(empty)
	require.NoError(t, err)
	assert.NotNil(t, f.Readings)
}
