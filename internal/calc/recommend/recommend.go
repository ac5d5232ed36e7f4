// Package recommend searches the section catalog for the lightest members
// that satisfy a given set of demands, and compares candidate sections side
// by side.
package recommend

import (
	"sort"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Default target utilization band. Candidates near the middle of the band
// win ties between equal-weight sections.
const (
	DefaultTargetMin = 0.70
	DefaultTargetMax = 0.95
)

// Input describes the demands a recommended beam section must carry.
type Input struct {
	MaterialID  string   `json:"material_id"`
	Mu          float64  `json:"Mu"`
	Vu          float64  `json:"Vu"`
	L           float64  `json:"L"`
	DeltaMaxMM  float64  `json:"delta_max_mm,omitempty"`
	Lb          *float64 `json:"Lb,omitempty"`
	Cb          float64  `json:"Cb,omitempty"`
	SectionType string   `json:"section_type,omitempty"`
	Catalog     string   `json:"catalog,omitempty"`
	TargetMin   float64  `json:"target_min,omitempty"`
	TargetMax   float64  `json:"target_max,omitempty"`
	MaxResults  int      `json:"max_results,omitempty"`
}

// Candidate is one passing section with its governing verification numbers.
type Candidate struct {
	Section     catalog.Section `json:"section"`
	Utilization float64         `json:"utilization"`
	Governing   string          `json:"governing"`
	Flexure     float64         `json:"flexure_ratio"`
	Shear       float64         `json:"shear_ratio"`
}

// Output lists passing candidates, lightest first.
type Output struct {
	Candidates []Candidate `json:"candidates"`
	Evaluated  int         `json:"evaluated"`
	TargetMin  float64     `json:"target_min"`
	TargetMax  float64     `json:"target_max"`
}

// Suggest verifies every catalog section of the requested family against the
// demands and returns the ones that pass, ranked by weight ascending. Equal
// weights break on distance of the utilization from the middle of the target
// band.
func Suggest(in Input) (Output, error) {
	if _, err := catalog.MaterialByID(in.MaterialID); err != nil {
		return Output{}, err
	}
	if in.Mu <= 0 && in.Vu <= 0 {
		return Output{}, errs.Validationf("at least one of Mu, Vu must be positive")
	}
	if in.L <= 0 {
		return Output{}, errs.Validation("L", in.L, "span must be positive")
	}
	if in.TargetMin <= 0 {
		in.TargetMin = DefaultTargetMin
	}
	if in.TargetMax <= 0 {
		in.TargetMax = DefaultTargetMax
	}
	if in.TargetMax <= in.TargetMin {
		return Output{}, errs.Validationf("target_max %.2f must exceed target_min %.2f", in.TargetMax, in.TargetMin)
	}
	if in.MaxResults <= 0 {
		in.MaxResults = 5
	}

	pool := catalog.Sections(in.SectionType, in.Catalog, 0)
	mid := (in.TargetMin + in.TargetMax) / 2.0

	var candidates []Candidate
	for _, sec := range pool {
		res, err := verify.Beam(verify.BeamInput{
			SectionID:  sec.ID,
			MaterialID: in.MaterialID,
			Mu:         in.Mu,
			Vu:         in.Vu,
			L:          in.L,
			DeltaMaxMM: in.DeltaMaxMM,
			Lb:         in.Lb,
			Cb:         in.Cb,
		})
		if err != nil {
			continue
		}
		if !res.OverallOK {
			continue
		}
		util := res.Flexure.Ratio
		if res.Shear.Ratio > util {
			util = res.Shear.Ratio
		}
		candidates = append(candidates, Candidate{
			Section:     sec,
			Utilization: util,
			Governing:   res.Governing,
			Flexure:     res.Flexure.Ratio,
			Shear:       res.Shear.Ratio,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Section.Weight != candidates[j].Section.Weight {
			return candidates[i].Section.Weight < candidates[j].Section.Weight
		}
		di := abs(candidates[i].Utilization - mid)
		dj := abs(candidates[j].Utilization - mid)
		return di < dj
	})

	if len(candidates) > in.MaxResults {
		candidates = candidates[:in.MaxResults]
	}
	return Output{
		Candidates: candidates,
		Evaluated:  len(pool),
		TargetMin:  in.TargetMin,
		TargetMax:  in.TargetMax,
	}, nil
}

// CompareInput asks for a side-by-side verification of named sections under
// the same demands.
type CompareInput struct {
	SectionIDs []string `json:"section_ids"`
	MaterialID string   `json:"material_id"`
	Mu         float64  `json:"Mu"`
	Vu         float64  `json:"Vu"`
	L          float64  `json:"L"`
	DeltaMaxMM float64  `json:"delta_max_mm,omitempty"`
	Lb         *float64 `json:"Lb,omitempty"`
	Cb         float64  `json:"Cb,omitempty"`
}

// compareTarget is the utilization the best-fit flag aims for: high enough to
// be economical, with margin left under 1.0.
const compareTarget = 0.85

// CompareRow is one section's verification in the comparison table.
type CompareRow struct {
	Section      catalog.Section   `json:"section"`
	Verification verify.BeamResult `json:"verification"`
	Utilization  float64           `json:"utilization"`
	Lightest     bool              `json:"lightest"`
	BestFit      bool              `json:"best_fit"`
}

// Compare verifies each requested section under identical demands and flags
// the lightest passing section and the one closest to the target utilization.
func Compare(in CompareInput) ([]CompareRow, error) {
	if len(in.SectionIDs) < 2 {
		return nil, errs.Validationf("compare needs at least two section ids, got %d", len(in.SectionIDs))
	}
	rows := make([]CompareRow, 0, len(in.SectionIDs))
	for _, id := range in.SectionIDs {
		sec, err := catalog.SectionByID(id)
		if err != nil {
			return nil, err
		}
		res, err := verify.Beam(verify.BeamInput{
			SectionID:  id,
			MaterialID: in.MaterialID,
			Mu:         in.Mu,
			Vu:         in.Vu,
			L:          in.L,
			DeltaMaxMM: in.DeltaMaxMM,
			Lb:         in.Lb,
			Cb:         in.Cb,
		})
		if err != nil {
			return nil, err
		}
		util := res.Flexure.Ratio
		if res.Shear.Ratio > util {
			util = res.Shear.Ratio
		}
		rows = append(rows, CompareRow{Section: sec, Verification: res, Utilization: util})
	}

	lightest, bestFit := -1, -1
	for i, row := range rows {
		if !row.Verification.OverallOK {
			continue
		}
		if lightest < 0 || row.Section.Weight < rows[lightest].Section.Weight {
			lightest = i
		}
		if bestFit < 0 || abs(compareTarget-row.Utilization) < abs(compareTarget-rows[bestFit].Utilization) {
			bestFit = i
		}
	}
	if lightest >= 0 {
		rows[lightest].Lightest = true
	}
	if bestFit >= 0 {
		rows[bestFit].BestFit = true
	}
	return rows, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
