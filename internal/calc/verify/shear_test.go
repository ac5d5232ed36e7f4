package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShearCompactWeb(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A572_GR50")

	res, err := Shear(sec, mat, 120)
	require.NoError(t, err)

	assert.InDelta(t, sec.D*sec.Tw, res.Aw, 1e-9)
	assert.Equal(t, 1.0, res.Cv)
	want := 0.9 * 0.6 * mat.Fy * sec.D * sec.Tw / 1e3
	assert.InDelta(t, want, res.PhiVn, 1e-6)
	assert.InDelta(t, 120/want, res.Ratio, 1e-9)
	assert.True(t, res.OK)
}

func TestShearHSSUsesGrossAreaFraction(t *testing.T) {
	sec := testSection(t, "HSS152X102X6.4")
	mat := testMaterial(t, "A500_GR_B")

	res, err := Shear(sec, mat, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.6*sec.A, res.Aw, 1e-9)
}

func TestShearZeroDemandPasses(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A992")

	res, err := Shear(sec, mat, 0)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Zero(t, res.Ratio)
}

func TestShearOverstressed(t *testing.T) {
	sec := testSection(t, "W150X13")
	mat := testMaterial(t, "A36")

	res, err := Shear(sec, mat, 500)
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Greater(t, res.Ratio, 1.0)
}
