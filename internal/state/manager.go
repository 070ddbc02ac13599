package state

import (
	"log"
	"sync"

	"HurstLab/internal/model"
	"HurstLab/internal/regime"
)

// Shift describes a regime change between two consecutive analyses.
type Shift struct {
	Previous Reading
	Current  Reading
}

// Manager tracks the last reading per symbol and timeframe with concurrency safety.
type Manager struct {
	mu       sync.Mutex
	file     *File
	filePath string
}

// NewManager creates a Manager, loading state from disk.
func NewManager(filePath string) (*Manager, error) {
	f, err := LoadFile(filePath)
	if err != nil {
		return nil, err
	}
	return &Manager{file: f, filePath: filePath}, nil
}

// Last returns the stored reading for symbol and timeframe.
func (m *Manager) Last(symbol, timeframe string) (Reading, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.file.Readings[Key(symbol, timeframe)]
	return r, ok
}

// Update stores the full-series result of a and returns the regime shift, if any.
// The first reading for a key never counts as a shift.
func (m *Manager) Update(a *model.HurstAnalysis) *Shift {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur := Reading{
		Symbol:        a.Symbol,
		Timeframe:     a.Timeframe,
		HurstExponent: a.FullSeries.HurstExponent,
		Regime:        regime.Classify(a.FullSeries.HurstExponent).Regime,
		AnalyzedAt:    a.CreatedAt,
	}
	key := Key(a.Symbol, a.Timeframe)
	prev, seen := m.file.Readings[key]
	m.file.Readings[key] = cur

	if err := SaveFile(m.filePath, m.file); err != nil {
		log.Printf("[ERROR] failed to save hurst state: %v", err)
	}

	if !seen || !regime.Shifted(prev.HurstExponent, cur.HurstExponent) {
		return nil
	}
	return &Shift{Previous: prev, Current: cur}
}
