package model

// Regime is the price behavior implied by a Hurst exponent.
type Regime string

const (
	RegimeTrending      Regime = "TRENDING"
	RegimeRandomWalk    Regime = "RANDOM_WALK"
	RegimeMeanReverting Regime = "MEAN_REVERTING"
	RegimeUndefined     Regime = "UNDEFINED"
)

// RegimeTier maps a Hurst exponent range to a regime.
type RegimeTier struct {
	Label  string
	Regime Regime
}
