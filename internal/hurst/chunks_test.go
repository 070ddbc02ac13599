package hurst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_DropsRemainder(t *testing.T) {
	chunks := Chunk([]float64{1, 2, 3, 4, 5, 6, 7}, 3)
	require.Len(t, chunks, 2)
	assert.Equal(t, []float64{1, 2, 3}, chunks[0])
	assert.Equal(t, []float64{4, 5, 6}, chunks[1])
	assert.Equal(t, 2, ChunkCount(7, 3))

	assert.Nil(t, Chunk([]float64{1, 2}, 0))
	assert.Empty(t, Chunk([]float64{1, 2}, 3))
}

func TestChunkMeansAndStdDevs(t *testing.T) {
	values := []float64{1, 2, 3, 10, 20, 30, 99}
	assert.Equal(t, []float64{2, 20}, ChunkMeans(values, 3))

	sd := ChunkStdDevs(values, 3)
	require.Len(t, sd, 2)
	assert.InDelta(t, 1.0, sd[0], 1e-12)
	assert.InDelta(t, 10.0, sd[1], 1e-12)
}

func TestChunkRanges(t *testing.T) {
	mins, maxs, ranges := ChunkRanges([]float64{3, 1, 2, 5, 9, 7, 0}, 3)
	assert.Equal(t, []float64{1, 5}, mins)
	assert.Equal(t, []float64{3, 9}, maxs)
	assert.Equal(t, []float64{2, 4}, ranges)
}

func TestAggregate(t *testing.T) {
	returns := []float64{1, 2, 3, 5, 5, 5}
	totals := RunningTotals(Deviations(returns, 3), 3)
	stats := Aggregate(returns, totals, 3)
	require.Len(t, stats, 2)

	assert.InDelta(t, 2.0, stats[0].Mean, 1e-12)
	assert.InDelta(t, 1.0, stats[0].StdDev, 1e-12)
	assert.InDelta(t, -1.0, stats[0].Min, 1e-12)
	assert.InDelta(t, 0.0, stats[0].Max, 1e-12)
	assert.InDelta(t, 1.0, stats[0].Range, 1e-12)

	assert.Equal(t, ChunkStats{Mean: 5}, stats[1])
}
