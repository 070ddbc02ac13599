package hurst

import "errors"

var (
	// ErrInsufficientData means the series is too short to produce two scales.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrRegressionUnderdetermined means fewer than two usable log-scale points.
	ErrRegressionUnderdetermined = errors.New("regression underdetermined")
	// ErrInvalidSeries means the series holds non-finite or negative prices or misaligned dates.
	ErrInvalidSeries = errors.New("invalid price series")
)
