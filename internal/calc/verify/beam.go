package verify

import (
	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// BeamInput bundles the demands for a full beam check. Lb defaults to L when
// nil; Cb defaults to 1.0.
type BeamInput struct {
	SectionID  string   `json:"section_id"`
	MaterialID string   `json:"material_id"`
	Mu         float64  `json:"Mu"`
	Vu         float64  `json:"Vu"`
	L          float64  `json:"L"`
	DeltaMaxMM float64  `json:"delta_max_mm"`
	Lb         *float64 `json:"Lb,omitempty"`
	Cb         float64  `json:"Cb,omitempty"`
}

// BeamResult is the full Chapter F/G + serviceability bundle.
type BeamResult struct {
	Flexure    FlexureResult              `json:"flexure"`
	Shear      ShearResult                `json:"shear"`
	Deflection map[string]DeflectionCheck `json:"deflection"`
	OverallOK  bool                       `json:"overall_ok"`
	Governing  string                     `json:"governing"`
}

// Beam verifies a beam at its governing station: flexure, shear and the three
// standard deflection limits. Overall pass requires the strength checks only;
// the governing check is whichever strength ratio is larger.
func Beam(in BeamInput) (BeamResult, error) {
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return BeamResult{}, err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return BeamResult{}, err
	}
	if in.L <= 0 {
		return BeamResult{}, errs.Validation("L", in.L, "span must be positive")
	}

	Lb := in.L
	if in.Lb != nil {
		Lb = *in.Lb
	}

	flex, err := Flexure(sec, mat, in.Mu, Lb, in.Cb)
	if err != nil {
		return BeamResult{}, err
	}
	shear, err := Shear(sec, mat, in.Vu)
	if err != nil {
		return BeamResult{}, err
	}
	deflection, err := Deflection(in.DeltaMaxMM, in.L, nil)
	if err != nil {
		return BeamResult{}, err
	}

	governing := "flexure"
	if shear.Ratio > flex.Ratio {
		governing = "shear"
	}

	return BeamResult{
		Flexure:    flex,
		Shear:      shear,
		Deflection: deflection,
		OverallOK:  flex.OK && shear.OK,
		Governing:  governing,
	}, nil
}
