package notifier

import (
	"fmt"
	"strings"

	"HurstLab/internal/model"
	"HurstLab/internal/recorder"
	"HurstLab/internal/regime"
	"HurstLab/internal/state"
)

// FormatSummary formats an analysis as a short social post:
//
//	$SPY 5y Hurst Exponents
//
//	First Half (Jan 2019 - Jun 2020): 0.58
//	Second Half (Jul 2020 - Dec 2021): 0.66
//	Full series (Jan 2019 - Dec 2021): 0.61 Trending
func FormatSummary(a *model.HurstAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("$%s %s Hurst Exponents\n\n", a.Symbol, a.Timeframe))
	for _, sr := range a.Sections {
		if sr.Err != nil {
			b.WriteString(fmt.Sprintf("%s: n/a\n", sr.Section.ShortLabel()))
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %.2f\n", sr.Section.ShortLabel(), sr.Regression.HurstExponent))
	}
	b.WriteString(fmt.Sprintf("Full series (%s - %s): %.2f %s\n",
		a.Start.Format("Jan 2006"), a.End.Format("Jan 2006"),
		a.FullSeries.HurstExponent, regime.Classify(a.FullSeries.HurstExponent).Label))

	return b.String()
}

// FormatDetail adds regression diagnostics to the summary.
func FormatDetail(a *model.HurstAnalysis) string {
	var b strings.Builder
	b.WriteString(FormatSummary(a))

	fs := a.FullSeries
	b.WriteString(fmt.Sprintf("\nFD %.2f | R² %.2f | p %.2f | SE %.2f | %d points\n",
		fs.FractalDimension, fs.RSquared, fs.PValue, fs.StandardError, fs.Points))
	b.WriteString(fmt.Sprintf("%d observations, %d scales\n", a.Observations, len(a.Scales)))
	return b.String()
}

// FormatShift formats a regime change notice.
func FormatShift(s *state.Shift) string {
	return fmt.Sprintf("⚠️ <b>Regime shift</b> $%s %s\n%s (H %.2f, %s) → %s (H %.2f, %s)\n",
		s.Current.Symbol, s.Current.Timeframe,
		s.Previous.Regime, s.Previous.HurstExponent, s.Previous.AnalyzedAt.Format("2006-01-02"),
		s.Current.Regime, s.Current.HurstExponent, s.Current.AnalyzedAt.Format("2006-01-02"))
}

// FormatHistory formats recent runs of one symbol, newest first.
func FormatHistory(symbol string, rows []recorder.AnalysisRow) string {
	if len(rows) == 0 {
		return fmt.Sprintf("No recorded analyses for $%s", symbol)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📜 <b>$%s history</b>\n\n", symbol))
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%s %s: H %.2f (%s)\n",
			r.CreatedAt.Format("2006-01-02"), r.Timeframe, r.HurstExponent, r.Regime))
	}
	return b.String()
}

// FormatError formats an error notification.
func FormatError(context string, err error) string {
	return fmt.Sprintf("❌ <b>HurstLab error</b>\n%s: %v", context, err)
}
