package verify

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func TestKFactorTable(t *testing.T) {
	cases := []struct {
		base, top string
		k         float64
	}{
		{"fixed", "fixed", 0.65},
		{"fixed", "pinned", 0.80},
		{"pinned", "fixed", 0.70},
		{"fixed", "free", 2.10},
		{"pinned", "pinned", 1.00},
		{"pinned", "free", 2.10},
	}
	for _, tc := range cases {
		k, err := KFactor(tc.base, tc.top)
		require.NoError(t, err, tc.base+"/"+tc.top)
		assert.Equal(t, tc.k, k)
	}
}

func TestKFactorUnknownPair(t *testing.T) {
	_, err := KFactor("free", "free")
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestCompressionElasticBranch(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A36")

	// Length tuned so the weak-axis slenderness is exactly 200.
	L := 200 * sec.Ry / 1000

	res, err := Compression(sec, mat, 100, 1.0, L, L)
	require.NoError(t, err)

	assert.InDelta(t, 200, res.Lambda, 1e-9)
	assert.Equal(t, "y", res.GoverningAxis)
	assert.Equal(t, BranchElastic, res.Branch)

	Fe := math.Pi * math.Pi * mat.E / (200 * 200)
	assert.InDelta(t, Fe, res.Fe, 1e-9)
	assert.InDelta(t, 49.35, res.Fe, 0.01)
	assert.InDelta(t, 0.877*Fe, res.Fcr, 1e-9)
	assert.InDelta(t, 0.9*0.877*Fe*sec.A/1e3, res.PhiPn, 1e-6)
}

func TestCompressionInelasticBranch(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A36")

	// Short column: slenderness well under 4.71*sqrt(E/Fy).
	res, err := Compression(sec, mat, 100, 1.0, 2.0, 2.0)
	require.NoError(t, err)

	assert.Equal(t, BranchInelastic, res.Branch)
	Fe := math.Pi * math.Pi * mat.E / (res.Lambda * res.Lambda)
	want := math.Pow(0.658, mat.Fy/Fe) * mat.Fy
	assert.InDelta(t, want, res.Fcr, 1e-9)
	assert.Less(t, res.Fcr, mat.Fy)
}

func TestCompressionBranchContinuity(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A36")

	limit := 4.71 * math.Sqrt(mat.E/mat.Fy)
	L := limit * sec.Ry / 1000

	below, err := Compression(sec, mat, 100, 1.0, L-1e-6, L-1e-6)
	require.NoError(t, err)
	above, err := Compression(sec, mat, 100, 1.0, L+1e-6, L+1e-6)
	require.NoError(t, err)

	require.Equal(t, BranchInelastic, below.Branch)
	require.Equal(t, BranchElastic, above.Branch)
	// 0.658^(Fy/Fe) at Fe = 0.44Fy equals 0.877 within the E3 rounding.
	assert.InDelta(t, below.Fcr, above.Fcr, 0.01*mat.Fy)
}

func TestCompressionGoverningAxis(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A992")

	// Strong axis unbraced far longer than the weak axis.
	res, err := Compression(sec, mat, 100, 1.0, 12.0, 1.0)
	require.NoError(t, err)
	assert.Equal(t, "x", res.GoverningAxis)
	assert.InDelta(t, 12000/sec.Rx, res.Lambda, 1e-9)
}

func TestCompressionValidation(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A992")

	_, err := Compression(sec, mat, 100, 0, 3, 3)
	assert.True(t, errs.IsValidation(err))

	_, err = Compression(sec, mat, 100, 1, 0, 3)
	assert.True(t, errs.IsValidation(err))

	_, err = Compression(sec, mat, 100, 1, 3, -1)
	assert.True(t, errs.IsValidation(err))
}

func TestCompressionZeroLoadPasses(t *testing.T) {
	sec := testSection(t, "W310X39")
	mat := testMaterial(t, "A992")

	res, err := Compression(sec, mat, 0, 1.0, 3, 3)
	require.NoError(t, err)
	assert.True(t, res.OK)
	assert.Zero(t, res.Ratio)
	assert.Greater(t, res.PhiPn, 0.0)
}
