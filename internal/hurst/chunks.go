package hurst

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ChunkStats summarizes one chunk: Mean and StdDev are taken over the returns,
// Min, Max and Range over the running totals.
type ChunkStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
	Range  float64
}

// Chunk splits values into contiguous chunks of exactly scale elements.
// The trailing remainder is dropped. Chunks share the backing array.
func Chunk(values []float64, scale int) [][]float64 {
	if scale <= 0 {
		return nil
	}
	n := len(values) / scale
	chunks := make([][]float64, n)
	for i := range chunks {
		chunks[i] = values[i*scale : (i+1)*scale : (i+1)*scale]
	}
	return chunks
}

// ChunkCount is the number of full chunks of scale elements in n values.
func ChunkCount(n, scale int) int {
	if scale <= 0 {
		return 0
	}
	return n / scale
}

// ChunkMeans returns the mean of every chunk.
func ChunkMeans(values []float64, scale int) []float64 {
	chunks := Chunk(values, scale)
	means := make([]float64, len(chunks))
	for i, c := range chunks {
		means[i] = stat.Mean(c, nil)
	}
	return means
}

// ChunkStdDevs returns the sample standard deviation of every chunk.
func ChunkStdDevs(values []float64, scale int) []float64 {
	chunks := Chunk(values, scale)
	devs := make([]float64, len(chunks))
	for i, c := range chunks {
		_, devs[i] = stat.MeanStdDev(c, nil)
	}
	return devs
}

// ChunkRanges returns the minimum, maximum and max-min range of every chunk.
func ChunkRanges(values []float64, scale int) (mins, maxs, ranges []float64) {
	chunks := Chunk(values, scale)
	mins = make([]float64, len(chunks))
	maxs = make([]float64, len(chunks))
	ranges = make([]float64, len(chunks))
	for i, c := range chunks {
		mins[i] = floats.Min(c)
		maxs[i] = floats.Max(c)
		ranges[i] = maxs[i] - mins[i]
	}
	return mins, maxs, ranges
}

// Aggregate builds the per-chunk statistics of one scale from the return
// series and its running totals.
func Aggregate(returns, runningTotals []float64, scale int) []ChunkStats {
	n := ChunkCount(len(returns), scale)
	if m := ChunkCount(len(runningTotals), scale); m < n {
		n = m
	}
	means := ChunkMeans(returns, scale)
	devs := ChunkStdDevs(returns, scale)
	mins, maxs, ranges := ChunkRanges(runningTotals, scale)

	stats := make([]ChunkStats, n)
	for i := range stats {
		stats[i] = ChunkStats{
			Mean:   means[i],
			StdDev: devs[i],
			Min:    mins[i],
			Max:    maxs[i],
			Range:  ranges[i],
		}
	}
	return stats
}
