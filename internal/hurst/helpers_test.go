package hurst

import (
	"math/rand"
	"time"

	"HurstLab/internal/model"
)

var seriesStart = time.Date(2019, 1, 2, 0, 0, 0, 0, time.UTC)

func makeSeries(closes []float64) *model.PriceSeries {
	dates := make([]time.Time, len(closes))
	for i := range dates {
		dates[i] = seriesStart.AddDate(0, 0, i)
	}
	return &model.PriceSeries{Symbol: "TEST", Timeframe: "max", Dates: dates, Closes: closes}
}

func constantPrices(n int, p float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = p
	}
	return out
}

// risingPrices returns 1.00, 1.01, 1.02, ...
func risingPrices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 1.0 + 0.01*float64(i)
	}
	return out
}

func alternatingPrices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 100
		if i%2 == 1 {
			out[i] = 101
		}
	}
	return out
}

func randomWalk(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	p := 100.0
	for i := range out {
		p *= 1 + rng.NormFloat64()*0.01
		out[i] = p
	}
	return out
}

func fullOnly() Config {
	cfg := DefaultConfig()
	cfg.Sections = SectionConfig{Mode: SectionsFull}
	return cfg
}
