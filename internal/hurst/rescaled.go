package hurst

import (
	"math"

	"HurstLab/internal/model"
)

// RescaledRanges divides each chunk's running-total range by its return
// standard deviation. A chunk with zero deviation yields 0.
func RescaledRanges(stats []ChunkStats) []float64 {
	rs := make([]float64, len(stats))
	for i, s := range stats {
		if s.StdDev == 0 {
			continue
		}
		rs[i] = s.Range / s.StdDev
	}
	return rs
}

// SummarizeScale averages the chunk rescaled ranges of one scale and derives
// its log10 regression pair. LogRR is 0 when the average is not positive.
func SummarizeScale(scale int, rs []float64) model.ScaleSummary {
	var sum float64
	for _, v := range rs {
		sum += v
	}
	var mean float64
	if len(rs) > 0 {
		mean = sum / float64(len(rs))
	}

	var logRR float64
	if mean > 0 {
		logRR = math.Log10(mean)
	}
	return model.ScaleSummary{
		Scale:         scale,
		Chunks:        len(rs),
		RescaledRange: mean,
		LogScale:      math.Log10(float64(scale)),
		LogRR:         logRR,
	}
}

// AnalyzeScale runs deviation, running total, aggregation and rescaled range
// for a single scale of the return series.
func AnalyzeScale(returns []float64, scale int) model.ScaleSummary {
	devs := Deviations(returns, scale)
	totals := RunningTotals(devs, scale)
	return SummarizeScale(scale, RescaledRanges(Aggregate(returns, totals, scale)))
}
