package collector

import (
	"context"

	"HurstLab/internal/model"
)

// Fetcher defines the interface for fetching historical daily bars.
// timeframe is a lookback such as "1y", "5y" or "max".
type Fetcher interface {
	FetchBars(ctx context.Context, symbol, timeframe string) ([]model.Bar, error)
	Name() string
}
