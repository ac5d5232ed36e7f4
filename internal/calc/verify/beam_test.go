package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func TestBeamSuite(t *testing.T) {
	in := BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Mu:         150,
		Vu:         100,
		L:          6.0,
		DeltaMaxMM: 20,
	}

	res, err := Beam(in)
	require.NoError(t, err)

	// Lb defaults to the full span.
	assert.InDelta(t, 6.0, res.Flexure.Lb, 1e-9)
	assert.Len(t, res.Deflection, 3)
	assert.Contains(t, []string{"flexure", "shear"}, res.Governing)
	assert.Equal(t, res.Flexure.OK && res.Shear.OK, res.OverallOK)
}

func TestBeamExplicitBracing(t *testing.T) {
	lb := 1.5
	in := BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Mu:         150,
		Vu:         80,
		L:          6.0,
		Lb:         &lb,
	}

	res, err := Beam(in)
	require.NoError(t, err)
	assert.Equal(t, ZonePlastic, res.Flexure.Zone)
	assert.InDelta(t, 1.5, res.Flexure.Lb, 1e-9)
	assert.True(t, res.OverallOK)
}

func TestBeamRepeatable(t *testing.T) {
	in := BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Mu:         150,
		Vu:         100,
		L:          6.0,
		DeltaMaxMM: 20,
	}

	first, err := Beam(in)
	require.NoError(t, err)
	second, err := Beam(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBeamGoverningIsLargerRatio(t *testing.T) {
	// Heavy shear, modest moment: shear must govern.
	in := BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Mu:         10,
		Vu:         250,
		L:          2.0,
	}

	res, err := Beam(in)
	require.NoError(t, err)
	assert.Equal(t, "shear", res.Governing)
	assert.Greater(t, res.Shear.Ratio, res.Flexure.Ratio)
}

func TestBeamDeflectionDoesNotBlockStrengthVerdict(t *testing.T) {
	in := BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Mu:         50,
		Vu:         30,
		L:          6.0,
		DeltaMaxMM: 100, // fails every limit
	}

	res, err := Beam(in)
	require.NoError(t, err)
	assert.True(t, res.OverallOK)
	assert.False(t, res.Deflection["L/360"].OK)
}

func TestBeamUnknownSection(t *testing.T) {
	_, err := Beam(BeamInput{SectionID: "W0X0", MaterialID: "A36", Mu: 10, Vu: 10, L: 3})
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
}

func TestBeamInvalidSpan(t *testing.T) {
	_, err := Beam(BeamInput{SectionID: "W310X39", MaterialID: "A36", Mu: 10, Vu: 10, L: 0})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestColumnSuite(t *testing.T) {
	in := ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Pu:         400,
		MuTop:      30,
		MuBase:     -45,
		L:          3.5,
		Base:       "fixed",
		Top:        "pinned",
	}

	res, err := Column(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.80, res.Compression.K, 1e-9)
	// The larger end moment magnitude drives the flexure check.
	assert.InDelta(t, 45.0, res.Flexure.Mu, 1e-9)
	assert.Equal(t, "interaction", res.Governing)
	assert.Equal(t, res.Interaction.OK, res.OverallOK)
}

func TestColumnExplicitKWins(t *testing.T) {
	in := ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Pu:         200,
		L:          3.0,
		K:          1.2,
		Base:       "fixed",
		Top:        "fixed",
	}

	res, err := Column(in)
	require.NoError(t, err)
	assert.InDelta(t, 1.2, res.Compression.K, 1e-9)
}

func TestColumnUnknownBoundaryPair(t *testing.T) {
	_, err := Column(ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Pu:         200,
		L:          3.0,
		Base:       "free",
		Top:        "free",
	})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestColumnBracedFlexureUsesPlasticCapacity(t *testing.T) {
	in := ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Pu:         100,
		MuTop:      50,
		L:          3.0,
		Base:       "pinned",
		Top:        "pinned",
	}

	res, err := Column(in)
	require.NoError(t, err)
	mat := testMaterial(t, "A992")
	sec := testSection(t, "W310X39")
	assert.InDelta(t, 0.9*mat.Fy*sec.Zx/1e6, res.Flexure.PhiMn, 1e-6)
	assert.Equal(t, ZonePlastic, res.Flexure.Zone)
}
