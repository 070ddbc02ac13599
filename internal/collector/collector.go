package collector

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"HurstLab/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.Bar
	Err   error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchBars(_ context.Context, _ string, timeframe string) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return generateMockBars(m.Price, TradingDays(timeframe)), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	start := time.Now().Truncate(24*time.Hour).AddDate(0, 0, -count)
	for i := 0; i < count; i++ {
		// slow drift with a weekly-ish wave; stays positive for any count
		p := basePrice * (1 + 0.0005*float64(i)) * (1 + 0.02*math.Sin(float64(i)/7))
		bars[i] = model.Bar{
			Date:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// TradingDays approximates the number of daily bars in a timeframe.
func TradingDays(timeframe string) int {
	switch timeframe {
	case "1m":
		return 21
	case "3m":
		return 63
	case "6m":
		return 126
	case "1y", "ytd":
		return 252
	case "2y":
		return 504
	case "5y":
		return 1260
	case "max":
		return 5040
	}
	return 252
}

// Collector turns provider bars into a typed PriceSeries.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches the bars of symbol over timeframe and builds the price series.
func (c *Collector) Collect(ctx context.Context, symbol, timeframe string) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchBars(ctx, symbol, timeframe)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s bars: %w", symbol, timeframe, err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("fetch %s %s bars: no data returned", symbol, timeframe)
	}
	series := model.NewPriceSeries(symbol, timeframe, bars)
	log.Printf("[INFO] collected %d %s bars for %s (%s .. %s)", series.Len(), c.Fetcher.Name(), symbol,
		series.Start().Format("2006-01-02"), series.End().Format("2006-01-02"))
	return series, nil
}
