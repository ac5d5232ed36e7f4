package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/combos"
	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func TestBeamDirectUDL(t *testing.T) {
	out, err := Beam(BeamInput{
		SectionID:  "W310X39",
		MaterialID: "A572_GR50",
		Length:     6.0,
		UDL:        15.0,
	})
	require.NoError(t, err)

	assert.InDelta(t, 15*36/8.0, out.Demands.Mmax, 1e-9) // 67.5 kN·m
	assert.InDelta(t, 15*6/2.0, out.Demands.Vmax, 1e-9)  // 45 kN
	assert.Nil(t, out.LoadCombinations)

	sec, _ := catalog.SectionByID("W310X39")
	mat, _ := catalog.MaterialByID("A572_GR50")
	wantDelta := 5.0 * 15 * math.Pow(6000, 4) / (384.0 * mat.E * sec.Ix)
	assert.InDelta(t, wantDelta, out.Demands.DeltaMM, 1e-6)
	assert.InDelta(t, out.Demands.Mmax, out.Verification.Flexure.Mu, 1e-9)
}

func TestBeamWithCombinations(t *testing.T) {
	out, err := Beam(BeamInput{
		SectionID:    "W310X39",
		MaterialID:   "A572_GR50",
		Length:       6.0,
		LoadTypes:    map[string]float64{"D": 10, "L": 5},
		DesignMethod: combos.LRFD,
	})
	require.NoError(t, err)

	require.NotNil(t, out.LoadCombinations)
	assert.InDelta(t, 20.0, out.Demands.W, 1e-9) // 1.2*10 + 1.6*5
	assert.Equal(t, "1.2D + 1.6L + 0.5(Lr o S)", out.LoadCombinations.Critical.Name)
	assert.InDelta(t, 20*36/8.0, out.Demands.Mmax, 1e-9)
}

func TestBeamValidation(t *testing.T) {
	_, err := Beam(BeamInput{SectionID: "W310X39", MaterialID: "A36", Length: 0, UDL: 10})
	assert.True(t, errs.IsValidation(err))

	_, err = Beam(BeamInput{SectionID: "W310X39", MaterialID: "A36", Length: 6, UDL: 0})
	assert.True(t, errs.IsValidation(err))

	_, err = Beam(BeamInput{SectionID: "W0X0", MaterialID: "A36", Length: 6, UDL: 10})
	assert.True(t, errs.IsNotFound(err))
}

func TestColumnAnalysis(t *testing.T) {
	out, err := Column(ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Height:     3.5,
		Base:       "fixed",
		Top:        "pinned",
		AxialLoad:  400,
		MomentTop:  25,
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.80, out.K, 1e-9)

	sec, _ := catalog.SectionByID("W310X39")
	mat, _ := catalog.MaterialByID("A992")
	KL := 0.80 * 3500.0
	wantPcr := math.Pi * math.Pi * mat.E * math.Min(sec.Ix, sec.Iy) / (KL * KL) / 1000
	assert.InDelta(t, wantPcr, out.PcrEuler, 1e-6)
	assert.InDelta(t, 400.0, out.Verification.Compression.Pu, 1e-9)
	assert.InDelta(t, 25.0, out.Verification.Flexure.Mu, 1e-9)
}

func TestColumnWithCombinations(t *testing.T) {
	out, err := Column(ColumnInput{
		SectionID:    "W310X39",
		MaterialID:   "A992",
		Height:       3.0,
		Base:         "pinned",
		Top:          "pinned",
		LoadTypes:    map[string]float64{"D": 100, "L": 80},
		DesignMethod: combos.LRFD,
	})
	require.NoError(t, err)
	require.NotNil(t, out.LoadCombinations)
	assert.InDelta(t, 1.2*100+1.6*80, out.Verification.Compression.Pu, 1e-9)
}

func TestColumnUnknownBoundary(t *testing.T) {
	_, err := Column(ColumnInput{
		SectionID:  "W310X39",
		MaterialID: "A992",
		Height:     3.0,
		Base:       "roller",
		Top:        "pinned",
		AxialLoad:  100,
	})
	assert.True(t, errs.IsValidation(err))
}
