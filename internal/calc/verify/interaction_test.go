package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInteractionHighAxial(t *testing.T) {
	comp := CompressionResult{Ratio: 0.5}
	flex := FlexureResult{Ratio: 0.3}

	res := Interaction(comp, flex)
	assert.Equal(t, "H1-1a", res.Equation)
	assert.InDelta(t, 0.5+8.0/9.0*0.3, res.Value, 1e-9)
	assert.True(t, res.OK)
}

func TestInteractionLowAxial(t *testing.T) {
	comp := CompressionResult{Ratio: 0.1}
	flex := FlexureResult{Ratio: 0.6}

	res := Interaction(comp, flex)
	assert.Equal(t, "H1-1b", res.Equation)
	assert.InDelta(t, 0.05+0.6, res.Value, 1e-9)
	assert.True(t, res.OK)
}

func TestInteractionBoundary(t *testing.T) {
	// Exactly 0.2 takes H1-1a.
	res := Interaction(CompressionResult{Ratio: 0.2}, FlexureResult{Ratio: 0.4})
	assert.Equal(t, "H1-1a", res.Equation)

	res = Interaction(CompressionResult{Ratio: 0.2 - 1e-12}, FlexureResult{Ratio: 0.4})
	assert.Equal(t, "H1-1b", res.Equation)
}

func TestInteractionFails(t *testing.T) {
	res := Interaction(CompressionResult{Ratio: 0.8}, FlexureResult{Ratio: 0.5})
	assert.Equal(t, "H1-1a", res.Equation)
	assert.Greater(t, res.Value, 1.0)
	assert.False(t, res.OK)
}

func TestInteractionAtExactlyOnePasses(t *testing.T) {
	// 0.4 + 8/9 * 0.675 = 1.0
	res := Interaction(CompressionResult{Ratio: 0.4}, FlexureResult{Ratio: 0.675})
	assert.InDelta(t, 1.0, res.Value, 1e-12)
	assert.True(t, res.OK)
}
