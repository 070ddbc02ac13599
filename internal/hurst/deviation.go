package hurst

import "gonum.org/v1/gonum/floats"

// Deviations subtracts each chunk's own mean from its elements. The output
// covers only full chunks.
func Deviations(values []float64, scale int) []float64 {
	chunks := Chunk(values, scale)
	means := ChunkMeans(values, scale)
	out := make([]float64, 0, len(chunks)*scale)
	for i, c := range chunks {
		for _, v := range c {
			out = append(out, v-means[i])
		}
	}
	return out
}

// RunningTotals returns the cumulative sum of deviations, restarting at the
// first element of every chunk.
func RunningTotals(deviations []float64, scale int) []float64 {
	chunks := Chunk(deviations, scale)
	out := make([]float64, len(chunks)*scale)
	for i, c := range chunks {
		floats.CumSum(out[i*scale:(i+1)*scale], c)
	}
	return out
}
