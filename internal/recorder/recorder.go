package recorder

import (
	"time"

	"HurstLab/internal/model"
)

// AnalysisRow is the stored summary of one analysis run.
type AnalysisRow struct {
	ID               string
	Symbol           string
	Timeframe        string
	Start            time.Time
	End              time.Time
	Observations     int
	HurstExponent    float64
	FractalDimension float64
	RSquared         float64
	PValue           float64
	StandardError    float64
	Regime           model.Regime
	CreatedAt        time.Time
}

// Recorder persists analysis results for later comparison.
type Recorder interface {
	RecordAnalysis(a *model.HurstAnalysis) error
	RecentAnalyses(symbol string, limit int) ([]AnalysisRow, error)
	Close() error
}
