package collector

import (
	"context"
	"fmt"
	"log"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"HurstLab/internal/model"
)

// GuardedFetcher rate limits calls to a Fetcher and stops calling it while
// the provider keeps failing.
type GuardedFetcher struct {
	inner   Fetcher
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewGuardedFetcher wraps inner. ratePerSecond <= 0 disables limiting; the
// breaker opens after maxFailures consecutive failures.
func NewGuardedFetcher(inner Fetcher, ratePerSecond float64, maxFailures uint32) *GuardedFetcher {
	limit := rate.Inf
	if ratePerSecond > 0 {
		limit = rate.Limit(ratePerSecond)
	}
	if maxFailures == 0 {
		maxFailures = 1
	}

	settings := gobreaker.Settings{
		Name: inner.Name(),
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("[WARN] fetcher %s circuit %s -> %s", name, from, to)
		},
	}
	return &GuardedFetcher{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker(settings),
		limiter: rate.NewLimiter(limit, 1),
	}
}

func (g *GuardedFetcher) Name() string { return g.inner.Name() }

// State returns the breaker state.
func (g *GuardedFetcher) State() gobreaker.State { return g.breaker.State() }

func (g *GuardedFetcher) FetchBars(ctx context.Context, symbol, timeframe string) ([]model.Bar, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	out, err := g.breaker.Execute(func() (interface{}, error) {
		return g.inner.FetchBars(ctx, symbol, timeframe)
	})
	if err != nil {
		return nil, err
	}
	return out.([]model.Bar), nil
}
