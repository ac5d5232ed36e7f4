package verify

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// ColumnInput bundles the demands for a full column check. Either K is given
// directly (K > 0) or it is derived from the Base/Top boundary conditions.
type ColumnInput struct {
	SectionID  string  `json:"section_id"`
	MaterialID string  `json:"material_id"`
	Pu         float64 `json:"Pu"`
	MuTop      float64 `json:"Mu_top"`
	MuBase     float64 `json:"Mu_base"`
	L          float64 `json:"L"`
	K          float64 `json:"K,omitempty"`
	Base       string  `json:"base,omitempty"`
	Top        string  `json:"top,omitempty"`
}

// ColumnResult is the Chapter E + H bundle. Flexure uses the braced
// simplification (Mn = Mp); interaction governs the overall verdict.
type ColumnResult struct {
	Compression CompressionResult `json:"compression"`
	Flexure     FlexureResult     `json:"flexure"`
	Interaction InteractionResult `json:"interaction"`
	OverallOK   bool              `json:"overall_ok"`
	Governing   string            `json:"governing"`
}

// Column verifies a compression member with end moments: E3 buckling on the
// governing axis, braced flexure with the larger end moment, then the H1
// interaction equation.
func Column(in ColumnInput) (ColumnResult, error) {
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return ColumnResult{}, err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return ColumnResult{}, err
	}
	if in.L <= 0 {
		return ColumnResult{}, errs.Validation("L", in.L, "column height must be positive")
	}

	K := in.K
	if K <= 0 {
		K, err = KFactor(in.Base, in.Top)
		if err != nil {
			return ColumnResult{}, err
		}
	}

	comp, err := Compression(sec, mat, in.Pu, K, in.L, in.L)
	if err != nil {
		return ColumnResult{}, err
	}

	Mu := math.Max(math.Abs(in.MuTop), math.Abs(in.MuBase))
	flex := bracedFlexure(sec, mat, Mu)
	inter := Interaction(comp, flex)

	return ColumnResult{
		Compression: comp,
		Flexure:     flex,
		Interaction: inter,
		OverallOK:   inter.OK,
		Governing:   "interaction",
	}, nil
}
