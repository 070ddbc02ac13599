package hurst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateScales_Default(t *testing.T) {
	scales, err := GenerateScales(500, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, []int{7, 15, 31, 62, 125}, scales)
}

func TestGenerateScales_SpanMatchesExponents(t *testing.T) {
	cfg := DefaultConfig()
	scales, err := GenerateScales(1024, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{16, 32, 64, 128, 256}, scales)
	assert.Len(t, scales, cfg.MaxExponent-cfg.MinExponent+1)
}

func TestGenerateScales_StrictlyIncreasing(t *testing.T) {
	cfg := DefaultConfig()
	for n := MinSeriesLength(cfg); n <= 3000; n += 7 {
		scales, err := GenerateScales(n, cfg)
		require.NoError(t, err, "n=%d", n)
		require.GreaterOrEqual(t, len(scales), 2, "n=%d", n)
		for i, s := range scales {
			assert.GreaterOrEqual(t, s, cfg.MinScale)
			assert.LessOrEqual(t, s, n)
			if i > 0 {
				assert.Greater(t, s, scales[i-1], "n=%d", n)
			}
		}
	}
}

func TestGenerateScales_MinimumLength(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 16, MinSeriesLength(cfg))

	scales, err := GenerateScales(16, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, scales)

	_, err = GenerateScales(15, cfg)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestGenerateScales_CustomRange(t *testing.T) {
	cfg := Config{MinExponent: 1, MaxExponent: 3, MinScale: 4}
	scales, err := GenerateScales(100, cfg)
	require.NoError(t, err)
	assert.Equal(t, []int{12, 25, 50}, scales)
	assert.Equal(t, 16, MinSeriesLength(cfg))
}
