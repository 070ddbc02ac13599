package regime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"HurstLab/internal/model"
)

func TestClassify_Trending(t *testing.T) {
	tier := Classify(0.72)
	assert.Equal(t, model.RegimeTrending, tier.Regime)
	assert.Equal(t, "Strongly trending", tier.Label)

	assert.Equal(t, "Trending", Classify(0.55).Label)
}

func TestClassify_RandomWalk(t *testing.T) {
	assert.Equal(t, model.RegimeRandomWalk, Classify(0.5).Regime)
	assert.Equal(t, model.RegimeRandomWalk, Classify(0.45).Regime)
}

func TestClassify_MeanReverting(t *testing.T) {
	assert.Equal(t, "Mean reverting", Classify(0.40).Label)
	assert.Equal(t, DefaultTier, Classify(0.1))
	assert.Equal(t, DefaultTier, Classify(-0.3))
}

func TestClassify_Undefined(t *testing.T) {
	assert.Equal(t, model.RegimeUndefined, Classify(math.NaN()).Regime)
	assert.Equal(t, model.RegimeUndefined, Classify(math.Inf(1)).Regime)
}

func TestShifted(t *testing.T) {
	assert.False(t, Shifted(0.66, 0.58), "both trending")
	assert.True(t, Shifted(0.60, 0.50))
	assert.True(t, Shifted(0.30, 0.70))
}
