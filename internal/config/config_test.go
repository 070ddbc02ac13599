package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HurstLab/internal/hurst"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, hurst.DefaultConfig(), cfg.Analysis)
	assert.Equal(t, []WatchItem{{Symbol: "SPY", Timeframe: "5y"}}, cfg.Watchlist)
	assert.Equal(t, "0 30 22 * * 1-5", cfg.Schedule.DailyCron)
	assert.Equal(t, "data/hurstlab.db", cfg.Database.SQLitePath)
	assert.Equal(t, 2.0, cfg.DataSource.RatePerSecond)
	assert.EqualValues(t, 3, cfg.DataSource.BreakerFailures)
	assert.NoError(t, cfg.Validate())
	assert.Error(t, cfg.ValidateNotifier())
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yml := `
analysis:
  min_exponent: 1
  max_exponent: 5
  min_scale: 4
  sections:
    mode: scales
    window: 2
watchlist:
  - symbol: aapl
  - symbol: gld
    timeframe: max
telegram:
  bot_token: file-token
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("HURST_SECTIONS", "thirds")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Analysis.MinExponent)
	assert.Equal(t, 5, cfg.Analysis.MaxExponent)
	assert.Equal(t, 4, cfg.Analysis.MinScale)
	assert.Equal(t, 1, cfg.Analysis.Workers, "unset fields keep defaults")
	assert.Equal(t, hurst.SectionConfig{Mode: hurst.SectionsPeriods, Count: 3}, cfg.Analysis.Sections)
	assert.Equal(t, []WatchItem{{"AAPL", "5y"}, {"GLD", "max"}}, cfg.Watchlist)
	assert.NoError(t, cfg.ValidateNotifier())
}

func TestLoad_BadSectionsEnv(t *testing.T) {
	t.Setenv("HURST_SECTIONS", "fortnights")
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)

	cfg.Analysis.MinScale = 1
	assert.Error(t, cfg.Validate())

	cfg.Analysis = hurst.DefaultConfig()
	cfg.Watchlist = append(cfg.Watchlist, WatchItem{})
	assert.Error(t, cfg.Validate())
}
