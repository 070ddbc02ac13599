package hurst

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"HurstLab/internal/model"
	"HurstLab/internal/regime"
)

// Analyzer runs the full R/S pipeline on a price series.
type Analyzer struct {
	cfg         Config
	partitioner *Partitioner
	now         func() time.Time
}

// NewAnalyzer validates cfg and returns an Analyzer.
func NewAnalyzer(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("hurst config: %w", err)
	}
	return &Analyzer{cfg: cfg, partitioner: NewPartitioner(cfg), now: time.Now}, nil
}

// Analyze computes the scale table, the full-series regression and one
// regression per section.
func (a *Analyzer) Analyze(series *model.PriceSeries) (*model.HurstAnalysis, error) {
	if err := ValidateSeries(series, a.cfg); err != nil {
		return nil, err
	}

	table, err := ScaleTable(series.Closes, a.cfg)
	if err != nil {
		return nil, err
	}
	full, err := RegressPoints(points(table))
	if err != nil {
		return nil, fmt.Errorf("full series: %w", err)
	}
	full.Regime = regime.Classify(full.HurstExponent).Regime

	sections, err := a.partitioner.Partition(series, table)
	if err != nil {
		return nil, fmt.Errorf("sections: %w", err)
	}
	results := make([]model.SectionResult, 0, len(sections))
	for _, s := range sections {
		results = append(results, regressSection(s))
	}

	return &model.HurstAnalysis{
		ID:           uuid.NewString(),
		Symbol:       series.Symbol,
		Timeframe:    series.Timeframe,
		Start:        series.Start(),
		End:          series.End(),
		Observations: series.Len(),
		Scales:       table,
		FullSeries:   full,
		Sections:     results,
		CreatedAt:    a.now(),
	}, nil
}

// regressSection fits one section. A section that cannot be fitted keeps its
// reason in Err and never fails the analysis.
func regressSection(s model.Section) model.SectionResult {
	out := model.SectionResult{Section: s}
	if s.Err != nil {
		out.Err = s.Err
	} else if res, err := RegressPoints(s.Points); err != nil {
		out.Err = err
	} else {
		res.Regime = regime.Classify(res.HurstExponent).Regime
		out.Regression = res
		return out
	}
	out.Regression.Regime = model.RegimeUndefined
	return out
}

// ValidateSeries checks alignment, finiteness and length of the series.
func ValidateSeries(series *model.PriceSeries, cfg Config) error {
	if series == nil {
		return fmt.Errorf("%w: nil series", ErrInvalidSeries)
	}
	if len(series.Dates) != len(series.Closes) {
		return fmt.Errorf("%w: %d dates for %d prices", ErrInvalidSeries, len(series.Dates), len(series.Closes))
	}
	if need := MinSeriesLength(cfg); series.Len() < need {
		return fmt.Errorf("%w: %d observations, need at least %d", ErrInsufficientData, series.Len(), need)
	}
	defined := false
	for i, p := range series.Closes {
		if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
			return fmt.Errorf("%w: price %v at index %d", ErrInvalidSeries, p, i)
		}
		if i > 0 && p != 0 && series.Closes[i-1] != 0 {
			defined = true
		}
	}
	if !defined {
		return fmt.Errorf("%w: no pair of consecutive non-zero prices", ErrInvalidSeries)
	}
	return nil
}

// ScaleTable generates the scales for prices and summarizes each one. With
// Workers > 1 the scales are computed concurrently.
func ScaleTable(prices []float64, cfg Config) ([]model.ScaleSummary, error) {
	scales, err := GenerateScales(len(prices), cfg)
	if err != nil {
		return nil, err
	}
	returns := Returns(prices)
	table := make([]model.ScaleSummary, len(scales))

	if cfg.Workers <= 1 {
		for i, s := range scales {
			table[i] = AnalyzeScale(returns, s)
		}
		return table, nil
	}

	// Each scale writes only its own slot, so ordering is fixed by index.
	sem := make(chan struct{}, cfg.Workers)
	var wg sync.WaitGroup
	for i, s := range scales {
		wg.Add(1)
		sem <- struct{}{}
		go func(i, s int) {
			defer wg.Done()
			defer func() { <-sem }()
			table[i] = AnalyzeScale(returns, s)
		}(i, s)
	}
	wg.Wait()
	return table, nil
}
