package recorder

import "HurstLab/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordAnalysis(_ *model.HurstAnalysis) error { return nil }
func (n *NoopRecorder) RecentAnalyses(_ string, _ int) ([]AnalysisRow, error) {
	return nil, nil
}
func (n *NoopRecorder) Close() error { return nil }
