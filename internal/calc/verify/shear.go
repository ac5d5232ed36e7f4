package verify

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
)

// ShearResult reports the Chapter G check. Forces in kN, Aw in mm².
type ShearResult struct {
	Vu          float64 `json:"Vu"`
	PhiVn       float64 `json:"phi_Vn"`
	Vn          float64 `json:"Vn"`
	Aw          float64 `json:"Aw"`
	Cv          float64 `json:"Cv"`
	Ratio       float64 `json:"ratio"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
}

// Shear checks web shear per AISC G2: Vn = 0.6·Fy·Aw·Cv. Cv is 1.0 for
// compact webs (h/tw within the G2-3 limit with kv = 5.34) and reduced
// linearly past it. phi is held at 0.90 for every shape.
func Shear(sec catalog.Section, mat catalog.Material, Vu float64) (ShearResult, error) {
	Fy := mat.Fy
	Aw := sec.WebShearArea()

	Cv := 1.0
	if sec.Tw > 0 {
		const kv = 5.34
		slenderness := sec.ClearWebDepth() / sec.Tw
		limit := 1.10 * math.Sqrt(kv*mat.E/Fy)
		if slenderness > limit {
			Cv = limit / slenderness
		}
	}

	const phiV = 0.90
	Vn := 0.6 * Fy * Aw * Cv / 1e3 // kN
	phiVn := phiV * Vn

	res := ShearResult{Vu: Vu, PhiVn: phiVn, Vn: Vn, Aw: Aw, Cv: Cv}
	if Vu == 0 {
		res.OK = true
		return res, nil
	}
	res.Ratio = math.Abs(Vu) / phiVn
	res.Utilization = res.Ratio * 100
	res.OK = pass(res.Ratio)
	return res, nil
}
