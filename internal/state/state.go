package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"HurstLab/internal/model"
)

// Reading is the last full-series result seen for one symbol and timeframe.
type Reading struct {
	Symbol        string       `json:"symbol"`
	Timeframe     string       `json:"timeframe"`
	HurstExponent float64      `json:"hurst_exponent"`
	Regime        model.Regime `json:"regime"`
	AnalyzedAt    time.Time    `json:"analyzed_at"`
}

// File is the on-disk layout of the state file.
type File struct {
	Readings  map[string]Reading `json:"readings"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// Key identifies a reading by symbol and timeframe.
func Key(symbol, timeframe string) string {
	return symbol + "/" + timeframe
}

// LoadFile reads the state from a JSON file. Returns an empty state if the file doesn't exist.
func LoadFile(filePath string) (*File, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &File{Readings: map[string]Reading{}}, nil
		}
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.Readings == nil {
		f.Readings = map[string]Reading{}
	}
	return &f, nil
}

// SaveFile writes the state to a JSON file, creating its directory if needed.
func SaveFile(filePath string, f *File) error {
	f.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(filePath, data, 0644)
}
