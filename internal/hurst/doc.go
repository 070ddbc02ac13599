// Package hurst estimates the Hurst exponent of a price series with
// Rescaled Range (R/S) analysis.
//
// The pipeline is a chain of pure stages:
//
//	scales  := GenerateScales(len(prices), cfg)       // N / 2^e, strictly increasing
//	returns := Returns(prices)                        // simple returns, N-1 values
//	devs    := Deviations(returns, scale)             // per-chunk mean removed
//	totals  := RunningTotals(devs, scale)             // cumulative sum inside each chunk
//	stats   := Aggregate(returns, totals, scale)      // mean/stdev of returns, range of totals
//	rs      := RescaledRanges(stats)                  // range / stdev, 0 for flat chunks
//	summary := SummarizeScale(scale, rs)              // mean R/S, log10 pair
//	result, err := RegressPoints(points)              // slope of log R/S on log scale = H
//
// Analyzer wires the stages together for a full series and for the sections
// produced by a Partitioner:
//
//	a, err := hurst.NewAnalyzer(hurst.DefaultConfig())
//	analysis, err := a.Analyze(series)
//	fmt.Printf("H=%.2f D=%.2f\n", analysis.FullSeries.HurstExponent, analysis.FullSeries.FractalDimension)
//
// # Degenerate input
//
// A zero price produces a zero return and a chunk with zero standard deviation
// produces a zero rescaled range. Scales whose average rescaled range is zero are
// left out of the regression. When fewer than two usable scales remain the
// regression fails with ErrRegressionUnderdetermined. Only a full-series failure
// fails Analyze; a section that cannot be fitted is returned with its Err set.
//
// # Truncation
//
// Chunks are contiguous and exactly scale elements long. A trailing remainder
// shorter than the scale is dropped, which changes the chunk count per scale.
package hurst
