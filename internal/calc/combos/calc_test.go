package combos

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func TestCriticalLRFD(t *testing.T) {
	loads := map[string]float64{Dead: 10, Live: 5}

	combo, value, err := Critical(loads, LRFD)
	require.NoError(t, err)
	assert.Equal(t, "1.2D + 1.6L + 0.5(Lr o S)", combo.Name)
	assert.InDelta(t, 20.0, value, 1e-9) // 1.2*10 + 1.6*5
}

func TestCriticalASD(t *testing.T) {
	loads := map[string]float64{Dead: 10, Live: 5}

	combo, value, err := Critical(loads, ASD)
	require.NoError(t, err)
	assert.Equal(t, "D + L", combo.Name)
	assert.InDelta(t, 15.0, value, 1e-9)
}

func TestCriticalAllZeroTakesFirstRule(t *testing.T) {
	combo, value, err := Critical(map[string]float64{Dead: 0, Live: 0}, LRFD)
	require.NoError(t, err)
	assert.Equal(t, "1.4D", combo.Name)
	assert.Zero(t, value)
}

func TestCriticalTieKeepsEarlierRule(t *testing.T) {
	// Wind only: both wind rules evaluate to 1.0W, the earlier one wins.
	combo, value, err := Critical(map[string]float64{Wind: 10}, LRFD)
	require.NoError(t, err)
	assert.Equal(t, "1.2D + 1.0W + L + 0.5(Lr o S)", combo.Name)
	assert.InDelta(t, 10.0, value, 1e-9)
}

func TestValidateLoadsRejectsUnknownTag(t *testing.T) {
	_, _, err := Critical(map[string]float64{"X": 10}, LRFD)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestValidateLoadsRejectsNegative(t *testing.T) {
	_, _, err := Critical(map[string]float64{Dead: -5}, LRFD)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCombinationsUnknownMethod(t *testing.T) {
	_, err := Combinations(Method("WSD"))
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestAllSortedByAbsoluteValue(t *testing.T) {
	loads := map[string]float64{Dead: 10, Live: 5, Wind: 8}

	results, err := All(loads, LRFD)
	require.NoError(t, err)
	require.Len(t, results, len(lrfdCombinations))
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, math.Abs(results[i-1].Value), math.Abs(results[i].Value))
	}
	// FactorsUsed only carries tags actually present.
	for _, r := range results {
		for tag := range r.FactorsUsed {
			assert.NotZero(t, loads[tag])
		}
	}
}

func TestSelect(t *testing.T) {
	loads := map[string]float64{Dead: 10, Live: 5}

	sel, err := Select(loads, LRFD, 3)
	require.NoError(t, err)
	assert.Equal(t, LRFD, sel.Method)
	assert.Equal(t, "1.2D + 1.6L + 0.5(Lr o S)", sel.Critical.Name)
	assert.InDelta(t, 20.0, sel.Critical.FactoredLoad, 1e-9)
	assert.Len(t, sel.AllCombinations, 3)
	assert.Equal(t, sel.Critical.Name, sel.AllCombinations[0].Name)
}

func TestFactoredLoads(t *testing.T) {
	loads := map[string]float64{Dead: 10, Live: 5}
	combo := lrfdCombinations[1] // 1.2D + 1.6L + 0.5(Lr o S)

	factored := FactoredLoads(loads, combo)
	assert.InDelta(t, 12.0, factored[Dead], 1e-9)
	assert.InDelta(t, 8.0, factored[Live], 1e-9)
}

func TestASDEnvelopeNeverExceedsLRFD(t *testing.T) {
	loads := map[string]float64{Dead: 12, Live: 7, Wind: 4, Snow: 3}

	_, lrfd, err := Critical(loads, LRFD)
	require.NoError(t, err)
	_, asd, err := Critical(loads, ASD)
	require.NoError(t, err)
	assert.Less(t, asd, lrfd)
}
