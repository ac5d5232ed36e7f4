// Package analysis runs closed-form member analyses and chains them into the
// AISC verification engine: unfactored per-type loads go through the load
// combination engine, the governing factored load produces the demands, and
// the demands are verified. It stands in for an external frame solver for the
// two common single-member cases.
package analysis

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/combos"
	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// BeamInput describes a simply supported beam under a uniform load. The load
// is either UDL [kN/m] directly, or per-type unfactored loads plus a design
// method, in which case the governing combination drives the demands.
type BeamInput struct {
	SectionID    string             `json:"section_id"`
	MaterialID   string             `json:"material_id"`
	Length       float64            `json:"length"`
	UDL          float64            `json:"udl_kn_m,omitempty"`
	LoadTypes    map[string]float64 `json:"load_types,omitempty"`
	DesignMethod combos.Method      `json:"design_method,omitempty"`
	Lb           *float64           `json:"Lb,omitempty"`
	Cb           float64            `json:"Cb,omitempty"`
}

// BeamDemands are the closed-form maxima for a simply supported UDL span.
type BeamDemands struct {
	W       float64 `json:"w"`      // kN/m actually applied
	Mmax    float64 `json:"M_max"`  // kN·m, wL²/8
	Vmax    float64 `json:"V_max"`  // kN, wL/2
	DeltaMM float64 `json:"delta_max_mm"`
}

// BeamOutput bundles demands, verification and the combination selection when
// a design method was requested.
type BeamOutput struct {
	Demands          BeamDemands       `json:"demands"`
	Verification     verify.BeamResult `json:"verification"`
	LoadCombinations *combos.Selection `json:"load_combinations,omitempty"`
}

// Beam analyzes and verifies a simply supported beam.
func Beam(in BeamInput) (BeamOutput, error) {
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return BeamOutput{}, err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return BeamOutput{}, err
	}
	if in.Length <= 0 {
		return BeamOutput{}, errs.Validation("length", in.Length, "span must be positive")
	}

	w := in.UDL
	var selection *combos.Selection
	if in.DesignMethod != "" && in.LoadTypes != nil {
		sel, err := combos.Select(in.LoadTypes, in.DesignMethod, 5)
		if err != nil {
			return BeamOutput{}, err
		}
		selection = &sel
		w = sel.Critical.FactoredLoad
	}
	if w <= 0 {
		return BeamOutput{}, errs.Validation("udl_kn_m", w, "uniform load must be positive")
	}

	// Simply supported, uniform load.
	M := w * in.Length * in.Length / 8.0
	V := w * in.Length / 2.0

	// 5wL⁴/(384EI); 1 kN/m = 1 N/mm.
	Lmm := in.Length * 1000
	delta := 5.0 * w * math.Pow(Lmm, 4) / (384.0 * mat.E * sec.Ix)

	verification, err := verify.Beam(verify.BeamInput{
		SectionID:  in.SectionID,
		MaterialID: in.MaterialID,
		Mu:         M,
		Vu:         V,
		L:          in.Length,
		DeltaMaxMM: delta,
		Lb:         in.Lb,
		Cb:         in.Cb,
	})
	if err != nil {
		return BeamOutput{}, err
	}

	return BeamOutput{
		Demands:          BeamDemands{W: w, Mmax: M, Vmax: V, DeltaMM: delta},
		Verification:     verification,
		LoadCombinations: selection,
	}, nil
}

// ColumnInput describes a single column with end boundary conditions. The
// axial load is either AxialLoad [kN] directly or derived from per-type loads
// and a design method.
type ColumnInput struct {
	SectionID    string             `json:"section_id"`
	MaterialID   string             `json:"material_id"`
	Height       float64            `json:"height"`
	Base         string             `json:"base"`
	Top          string             `json:"top"`
	AxialLoad    float64            `json:"axial_load,omitempty"`
	MomentTop    float64            `json:"moment_top,omitempty"`
	MomentBase   float64            `json:"moment_base,omitempty"`
	LoadTypes    map[string]float64 `json:"load_types,omitempty"`
	DesignMethod combos.Method      `json:"design_method,omitempty"`
}

// ColumnOutput bundles the Euler reference load, the AISC verification and
// the combination selection when requested.
type ColumnOutput struct {
	K                float64             `json:"K"`
	PcrEuler         float64             `json:"Pcr_euler"`
	Verification     verify.ColumnResult `json:"verification"`
	LoadCombinations *combos.Selection   `json:"load_combinations,omitempty"`
}

// Column analyzes and verifies a single column.
func Column(in ColumnInput) (ColumnOutput, error) {
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return ColumnOutput{}, err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return ColumnOutput{}, err
	}
	if in.Height <= 0 {
		return ColumnOutput{}, errs.Validation("height", in.Height, "column height must be positive")
	}

	K, err := verify.KFactor(in.Base, in.Top)
	if err != nil {
		return ColumnOutput{}, err
	}

	Pu := in.AxialLoad
	var selection *combos.Selection
	if in.DesignMethod != "" && in.LoadTypes != nil {
		sel, err := combos.Select(in.LoadTypes, in.DesignMethod, 5)
		if err != nil {
			return ColumnOutput{}, err
		}
		selection = &sel
		Pu = sel.Critical.FactoredLoad
	}

	// Euler reference load on the weak axis, for reporting.
	Imin := math.Min(sec.Ix, sec.Iy)                                    // mm⁴
	KLmm := K * in.Height * 1000                                        // mm
	pcr := math.Pi * math.Pi * mat.E * Imin / (KLmm * KLmm) / 1000.0    // kN

	verification, err := verify.Column(verify.ColumnInput{
		SectionID:  in.SectionID,
		MaterialID: in.MaterialID,
		Pu:         Pu,
		MuTop:      in.MomentTop,
		MuBase:     in.MomentBase,
		L:          in.Height,
		K:          K,
	})
	if err != nil {
		return ColumnOutput{}, err
	}

	return ColumnOutput{
		K:                K,
		PcrEuler:         pcr,
		Verification:     verification,
		LoadCombinations: selection,
	}, nil
}
