package verify

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Lateral-torsional buckling zones.
const (
	ZonePlastic    = "plastic"
	ZoneInelastic  = "inelastic"
	ZoneElasticLTB = "elastic_LTB"
	ZoneNA         = "N/A"
)

// FlexureResult reports the Chapter F check. Lb, Lp and Lr are in meters,
// moments in kN·m.
type FlexureResult struct {
	Mu          float64 `json:"Mu"`
	PhiMn       float64 `json:"phi_Mn"`
	Mp          float64 `json:"Mp"`
	Ratio       float64 `json:"ratio"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
	Zone        string  `json:"zone"`
	Lb          float64 `json:"Lb"`
	Lp          float64 `json:"Lp"`
	Lr          float64 `json:"Lr"`
	Cb          float64 `json:"Cb"`
}

// Flexure checks major-axis bending per AISC F2. Lb is the unbraced length of
// the compression flange [m]; Cb the moment-gradient factor (<=0 defaults to
// 1.0). The nominal moment is Mp in the plastic zone, a Cb-scaled linear
// interpolation between Mp and 0.7·Fy·Sx in the inelastic zone, and the
// elastic LTB stress times Sx beyond Lr, always capped at Mp.
func Flexure(sec catalog.Section, mat catalog.Material, Mu, Lb, Cb float64) (FlexureResult, error) {
	if Lb < 0 {
		return FlexureResult{}, errs.Validation("Lb", Lb, "unbraced length cannot be negative")
	}
	if Cb <= 0 {
		Cb = 1.0
	}

	Fy := mat.Fy
	E := mat.E
	Mp := Fy * sec.Zx / 1e6 // kN·m
	LbMM := Lb * 1000

	Lp := 1.76 * sec.Ry * math.Sqrt(E/Fy) // mm

	// Lr approximation: wider inelastic plateau for flanged shapes.
	var Lr float64
	if sec.Type == catalog.TypeW {
		Lr = 3.5 * sec.Ry * math.Sqrt(E/Fy)
	} else {
		Lr = 2.5 * sec.Ry * math.Sqrt(E/Fy)
	}

	const phiB = 0.90

	var Mn float64
	var zone string
	switch {
	case LbMM <= Lp:
		Mn = Mp
		zone = ZonePlastic
	case LbMM <= Lr:
		Mr := 0.7 * Fy * sec.Sx / 1e6 // kN·m
		Mn = Cb * (Mp - (Mp-Mr)*(LbMM-Lp)/(Lr-Lp))
		Mn = math.Min(Mn, Mp)
		zone = ZoneInelastic
	default:
		Fe := Cb * math.Pi * math.Pi * E / math.Pow(LbMM/sec.Ry, 2) // MPa
		Mn = Fe * sec.Sx / 1e6
		Mn = math.Min(Mn, Mp)
		zone = ZoneElasticLTB
	}

	phiMn := phiB * Mn

	res := FlexureResult{
		Mu:    Mu,
		PhiMn: phiMn,
		Mp:    Mp,
		Zone:  zone,
		Lb:    Lb,
		Lp:    Lp / 1000,
		Lr:    Lr / 1000,
		Cb:    Cb,
	}

	if Mu <= 0 {
		res.Zone = ZoneNA
		res.OK = true
		return res, nil
	}

	res.Ratio = math.Abs(Mu) / phiMn
	res.Utilization = res.Ratio * 100
	res.OK = pass(res.Ratio)
	return res, nil
}

// bracedFlexure is the simplified check used inside column and frame suites:
// the compression flange is assumed fully braced, Mn = Mp.
func bracedFlexure(sec catalog.Section, mat catalog.Material, Mu float64) FlexureResult {
	res, _ := Flexure(sec, mat, Mu, 0, 1.0)
	return res
}
