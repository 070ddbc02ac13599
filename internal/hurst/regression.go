package hurst

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"HurstLab/internal/model"
)

// ResultPrecision is the number of decimals kept in reported regression statistics.
const ResultPrecision = 2

// tiny keeps the t statistic finite for a perfect fit.
const tiny = 1e-20

// Regress fits y = intercept + slope*x by ordinary least squares. The slope is
// the Hurst exponent. It needs at least two distinct x values.
func Regress(x, y []float64) (model.RegressionResult, error) {
	if len(x) != len(y) {
		return model.RegressionResult{}, fmt.Errorf("regress: x has %d values, y has %d", len(x), len(y))
	}
	if distinct(x) < 2 {
		return model.RegressionResult{}, fmt.Errorf("%w: %d distinct log-scale value(s)", ErrRegressionUnderdetermined, distinct(x))
	}

	n := len(x)
	intercept, slope := stat.LinearRegression(x, y, nil, false)

	mx, my := stat.Mean(x, nil), stat.Mean(y, nil)
	var ssxm, ssym, ssxym float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		ssxm += dx * dx
		ssym += dy * dy
		ssxym += dx * dy
	}

	var r float64
	if ssym != 0 {
		r = ssxym / math.Sqrt(ssxm*ssym)
		r = math.Max(-1, math.Min(1, r))
	}

	var pValue, stdErr float64
	if n == 2 {
		if y[0] == y[1] {
			pValue = 1
		}
	} else {
		df := float64(n - 2)
		t := r * math.Sqrt(df/((1-r+tiny)*(1+r+tiny)))
		pValue = 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.Survival(math.Abs(t))
		stdErr = math.Sqrt((1 - r*r) * ssym / ssxm / df)
	}

	h := roundTo(slope, ResultPrecision)
	return model.RegressionResult{
		HurstExponent:    h,
		FractalDimension: roundTo(2-h, ResultPrecision),
		RSquared:         roundTo(r*r, ResultPrecision),
		PValue:           roundTo(pValue, ResultPrecision),
		StandardError:    roundTo(stdErr, ResultPrecision),
		Slope:            slope,
		Intercept:        intercept,
		Points:           n,
	}, nil
}

// RegressPoints regresses LogRR on LogScale, skipping points whose average
// rescaled range is zero.
func RegressPoints(points []model.ScalePoint) (model.RegressionResult, error) {
	x := make([]float64, 0, len(points))
	y := make([]float64, 0, len(points))
	for _, p := range points {
		if p.MeanRS <= 0 {
			continue
		}
		x = append(x, p.LogScale)
		y = append(y, p.LogRR)
	}
	return Regress(x, y)
}

func distinct(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}

func roundTo(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
