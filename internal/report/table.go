package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"HurstLab/internal/model"
	"HurstLab/internal/regime"
)

// WriteTable prints the scale table and every regression result as aligned columns.
func WriteTable(w io.Writer, a *model.HurstAnalysis) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s %s  %s - %s  (%d observations)\n\n",
		a.Symbol, a.Timeframe, a.Start.Format("2006-01-02"), a.End.Format("2006-01-02"), a.Observations)

	fmt.Fprintln(tw, "Scale\tChunks\tR/S\tlog10(S)\tlog10(R/S)\t")
	for _, s := range a.Scales {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.4f\t%.4f\t\n", s.Scale, s.Chunks, s.RescaledRange, s.LogScale, s.LogRR)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "Section\tH\tFD\tR²\tp-value\tStdErr\tRegime\t")
	row := func(label string, r model.RegressionResult) {
		fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%s\t\n",
			label, r.HurstExponent, r.FractalDimension, r.RSquared, r.PValue, r.StandardError,
			regime.Classify(r.HurstExponent).Label)
	}
	for _, sr := range a.Sections {
		if sr.Err != nil {
			fmt.Fprintf(tw, "%s\tn/a\tn/a\tn/a\tn/a\tn/a\t%s\t\n", sr.Section.Label(), sr.Err)
			continue
		}
		row(sr.Section.Label(), sr.Regression)
	}
	row(model.FullSeriesKey, a.FullSeries)

	return tw.Flush()
}
