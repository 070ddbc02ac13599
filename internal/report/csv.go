package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"HurstLab/internal/model"
)

var csvHeader = []string{
	"section", "start", "end", "hurst_exponent", "fractal_dimension",
	"r_squared", "p_value", "standard_error", "regime", "error",
}

// WriteCSV writes one row per section followed by the full series row.
func WriteCSV(w io.Writer, a *model.HurstAnalysis) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	record := func(label string, r model.RegressionResult, start, end string) []string {
		return []string{
			label, start, end,
			formatFloat(r.HurstExponent),
			formatFloat(r.FractalDimension),
			formatFloat(r.RSquared),
			formatFloat(r.PValue),
			formatFloat(r.StandardError),
			string(r.Regime),
			"",
		}
	}
	for _, sr := range a.Sections {
		s := sr.Section
		start, end := s.Start.Format("2006-01-02"), s.End.Format("2006-01-02")
		row := record(s.Name, sr.Regression, start, end)
		if sr.Err != nil {
			row = []string{s.Name, start, end, "", "", "", "", "", string(model.RegimeUndefined), sr.Err.Error()}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	if err := cw.Write(record(model.FullSeriesKey, a.FullSeries, a.Start.Format("2006-01-02"), a.End.Format("2006-01-02"))); err != nil {
		return err
	}

	cw.Flush()
	return cw.Error()
}

// FileName returns the export file name, e.g. "SPY_5y_hurst_2024-03-01.csv".
func FileName(a *model.HurstAnalysis) string {
	return fmt.Sprintf("%s_%s_hurst_%s.csv", a.Symbol, a.Timeframe, a.CreatedAt.Format("2006-01-02"))
}

// ExportCSV writes the CSV into dir and returns the file path.
func ExportCSV(dir string, a *model.HurstAnalysis) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, FileName(a))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, a); err != nil {
		return "", fmt.Errorf("write csv: %w", err)
	}
	return path, f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
