package model

import (
	"sort"
	"time"
)

// Bar represents a single daily bar as delivered by a market-data provider.
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// PriceSeries holds the closing prices of one symbol, oldest first,
// index-aligned with their dates.
type PriceSeries struct {
	Symbol    string
	Timeframe string
	Dates     []time.Time
	Closes    []float64
	FetchedAt time.Time
}

// NewPriceSeries builds a PriceSeries from provider bars, sorting them chronologically.
func NewPriceSeries(symbol, timeframe string, bars []Bar) *PriceSeries {
	sorted := make([]Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	s := &PriceSeries{
		Symbol:    symbol,
		Timeframe: timeframe,
		Dates:     make([]time.Time, len(sorted)),
		Closes:    make([]float64, len(sorted)),
		FetchedAt: time.Now(),
	}
	for i, b := range sorted {
		s.Dates[i] = b.Date
		s.Closes[i] = b.Close
	}
	return s
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int { return len(s.Closes) }

// Start returns the first date, or the zero time for an empty series.
func (s *PriceSeries) Start() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[0]
}

// End returns the last date, or the zero time for an empty series.
func (s *PriceSeries) End() time.Time {
	if len(s.Dates) == 0 {
		return time.Time{}
	}
	return s.Dates[len(s.Dates)-1]
}

// Slice returns the sub-series [from, to). The backing arrays are shared.
func (s *PriceSeries) Slice(from, to int) *PriceSeries {
	return &PriceSeries{
		Symbol:    s.Symbol,
		Timeframe: s.Timeframe,
		Dates:     s.Dates[from:to],
		Closes:    s.Closes[from:to],
		FetchedAt: s.FetchedAt,
	}
}
