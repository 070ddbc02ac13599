package model

import (
	"fmt"
	"math"
	"time"
)

// FullSeriesKey is the reserved export key for the whole-series regression.
const FullSeriesKey = "fullSeries"

// RegressionResult is the fit of log10(R/S) against log10(scale).
// Reported fields are rounded to two decimals; Slope and Intercept keep full precision.
type RegressionResult struct {
	HurstExponent    float64 `json:"hurstExponent"`
	FractalDimension float64 `json:"fractalDimension"`
	RSquared         float64 `json:"r-squared"`
	PValue           float64 `json:"p-value"`
	StandardError    float64 `json:"standardError"`

	Slope     float64 `json:"-"`
	Intercept float64 `json:"-"`
	Points    int     `json:"-"`
	Regime    Regime  `json:"-"`
}

// ScalePoint is one regression input pair.
type ScalePoint struct {
	Scale    int
	LogScale float64
	LogRR    float64
	MeanRS   float64
}

// ScaleSummary is the scale-level view of the rescaled range table.
type ScaleSummary struct {
	Scale         int
	Chunks        int
	RescaledRange float64
	LogScale      float64
	LogRR         float64
}

// Point returns the regression input pair of the summary.
func (s ScaleSummary) Point() ScalePoint {
	return ScalePoint{Scale: s.Scale, LogScale: s.LogScale, LogRR: s.LogRR, MeanRS: s.RescaledRange}
}

// Section is a named sub-range of the analysis with its own regression inputs.
// Err is set when no scale table could be built for the range.
type Section struct {
	Name      string
	Start     time.Time
	End       time.Time
	FromIndex int
	ToIndex   int
	Points    []ScalePoint
	Err       error
}

// Label returns the display label, e.g. "Series (2019-01-02 - 2020-06-30)".
func (s Section) Label() string {
	return fmt.Sprintf("%s (%s - %s)", s.Name, s.Start.Format("2006-01-02"), s.End.Format("2006-01-02"))
}

// ShortLabel returns a month-resolution label, e.g. "Series (Jan 2019 - Jun 2020)".
func (s Section) ShortLabel() string {
	return fmt.Sprintf("%s (%s - %s)", s.Name, s.Start.Format("Jan 2006"), s.End.Format("Jan 2006"))
}

// SectionResult pairs a section with its regression. When the section could
// not be regressed Err holds the reason and Regression only carries RegimeUndefined.
type SectionResult struct {
	Section    Section
	Regression RegressionResult
	Err        error
}

// HurstAnalysis is the complete output of one R/S analysis run.
type HurstAnalysis struct {
	ID           string
	Symbol       string
	Timeframe    string
	Start        time.Time
	End          time.Time
	Observations int
	Scales       []ScaleSummary
	FullSeries   RegressionResult
	Sections     []SectionResult
	CreatedAt    time.Time
}

// Export is the flat result surface consumed by reporting layers.
type Export struct {
	RescaleRange      map[int]float64             `json:"rescaleRange"`
	RegressionResults map[string]RegressionResult `json:"regressionResults"`
}

// Export builds the flat result view keyed by scale and section label.
func (a *HurstAnalysis) Export() Export {
	out := Export{
		RescaleRange:      make(map[int]float64, len(a.Scales)),
		RegressionResults: make(map[string]RegressionResult, len(a.Sections)+1),
	}
	for _, s := range a.Scales {
		out.RescaleRange[s.Scale] = math.Round(s.RescaledRange*100) / 100
	}
	for _, sr := range a.Sections {
		if sr.Err != nil {
			continue
		}
		out.RegressionResults[sr.Section.Label()] = sr.Regression
	}
	out.RegressionResults[FullSeriesKey] = a.FullSeries
	return out
}
