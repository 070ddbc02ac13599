package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := fmt.Sprintf(`state:
  file: %s
database:
  sqlite_path: %s
export:
  dir: %s
`, filepath.Join(dir, "state.json"), filepath.Join(dir, "db", "hurst.db"), filepath.Join(dir, "exports"))
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path, dir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(context.Background())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyze_MockTable(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	out, err := run(t, "analyze", "--config", cfgPath, "--source", "mock", "-t", "qqq", "--timeframe", "2y")
	require.NoError(t, err)
	assert.Contains(t, out, "QQQ 2y")
	assert.Contains(t, out, "First Half")
	assert.Contains(t, out, "fullSeries")
}

func TestAnalyze_MockCSV(t *testing.T) {
	cfgPath, dir := writeConfig(t)
	out, err := run(t, "analyze", "--config", cfgPath, "--source", "mock", "--sections", "thirds", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Middle Third")
	assert.Contains(t, out, "CSV written to")

	entries, err := os.ReadDir(filepath.Join(dir, "exports"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAnalyze_BadFlags(t *testing.T) {
	cfgPath, _ := writeConfig(t)

	_, err := run(t, "analyze", "--config", cfgPath, "--source", "mock", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output")

	_, err = run(t, "analyze", "--config", cfgPath, "--source", "nope")
	assert.ErrorContains(t, err, "unknown source")

	_, err = run(t, "analyze", "--config", cfgPath, "--source", "mock", "--sections", "quarters")
	assert.ErrorContains(t, err, "--sections")
}

func TestAnalyze_ShortHistoryKeepsFullSeries(t *testing.T) {
	cfgPath, _ := writeConfig(t)
	// 21 bars: enough for the full series, too short for either half
	out, err := run(t, "analyze", "--config", cfgPath, "--source", "mock", "--timeframe", "1m")
	require.NoError(t, err)
	assert.Contains(t, out, "fullSeries")
	assert.Contains(t, out, "insufficient data")
}
