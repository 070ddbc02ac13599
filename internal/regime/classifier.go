package regime

import (
	"math"

	"HurstLab/internal/model"
)

// Tiers maps Hurst exponent thresholds to regimes, highest first.
var Tiers = []struct {
	MinHurst float64
	Tier     model.RegimeTier
}{
	{0.65, model.RegimeTier{Label: "Strongly trending", Regime: model.RegimeTrending}},
	{0.55, model.RegimeTier{Label: "Trending", Regime: model.RegimeTrending}},
	{0.45, model.RegimeTier{Label: "Random walk", Regime: model.RegimeRandomWalk}},
	{0.35, model.RegimeTier{Label: "Mean reverting", Regime: model.RegimeMeanReverting}},
}

// DefaultTier is used for exponents below 0.35.
var DefaultTier = model.RegimeTier{Label: "Strongly mean reverting", Regime: model.RegimeMeanReverting}

// UndefinedTier is returned for NaN or infinite exponents.
var UndefinedTier = model.RegimeTier{Label: "Undefined", Regime: model.RegimeUndefined}

// Classify maps a Hurst exponent to its regime tier.
func Classify(hurst float64) model.RegimeTier {
	if math.IsNaN(hurst) || math.IsInf(hurst, 0) {
		return UndefinedTier
	}
	for _, t := range Tiers {
		if hurst >= t.MinHurst {
			return t.Tier
		}
	}
	return DefaultTier
}

// Shifted reports whether two exponents fall into different regimes.
func Shifted(previous, current float64) bool {
	return Classify(previous).Regime != Classify(current).Regime
}
