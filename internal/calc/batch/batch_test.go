package batch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

func TestVerifyBeams(t *testing.T) {
	lb := 1.5
	in := BeamBatchInput{Items: []verify.BeamInput{
		{SectionID: "W310X39", MaterialID: "A572_GR50", Mu: 150, Vu: 80, L: 6, Lb: &lb},
		{SectionID: "W150X13", MaterialID: "A36", Mu: 500, Vu: 300, L: 6},
		{SectionID: "W0X0", MaterialID: "A36", Mu: 10, Vu: 10, L: 3},
	}}

	out, err := VerifyBeams(in)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Total)
	assert.Equal(t, 1, out.Passed)
	assert.Equal(t, 1, out.Failed)
	assert.Equal(t, 1, out.Errors)
	require.Len(t, out.Items, 3)

	assert.Equal(t, 0, out.Items[0].Index)
	require.NotNil(t, out.Items[0].Result)
	assert.True(t, out.Items[0].Result.OverallOK)

	require.NotNil(t, out.Items[1].Result)
	assert.False(t, out.Items[1].Result.OverallOK)

	assert.Nil(t, out.Items[2].Result)
	assert.NotEmpty(t, out.Items[2].Error)
}

func TestVerifyBeamsEmpty(t *testing.T) {
	_, err := VerifyBeams(BeamBatchInput{})
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestParseBeamRow(t *testing.T) {
	in, err := parseBeamRow([]string{"W310X39", "A572_GR50", "150", "80", "6", "12.5", "1.5", "1.14"})
	require.NoError(t, err)
	assert.Equal(t, "W310X39", in.SectionID)
	assert.Equal(t, "A572_GR50", in.MaterialID)
	assert.InDelta(t, 150.0, in.Mu, 1e-9)
	assert.InDelta(t, 80.0, in.Vu, 1e-9)
	assert.InDelta(t, 6.0, in.L, 1e-9)
	assert.InDelta(t, 12.5, in.DeltaMaxMM, 1e-9)
	require.NotNil(t, in.Lb)
	assert.InDelta(t, 1.5, *in.Lb, 1e-9)
	assert.InDelta(t, 1.14, in.Cb, 1e-9)
}

func TestParseBeamRowMinimal(t *testing.T) {
	in, err := parseBeamRow([]string{"W310X39", "A36", "50", "30", "4"})
	require.NoError(t, err)
	assert.Nil(t, in.Lb)
	assert.Zero(t, in.Cb)
}

func TestParseBeamRowErrors(t *testing.T) {
	_, err := parseBeamRow([]string{"W310X39", "A36", "50"})
	assert.Error(t, err)

	_, err = parseBeamRow([]string{"W310X39", "A36", "x", "30", "4"})
	assert.Error(t, err)
}
