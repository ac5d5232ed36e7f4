package verify

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Compression buckling branches.
const (
	BranchInelastic = "inelastic"
	BranchElastic   = "elastic"
)

// kFactors maps (base, top) boundary-condition pairs to the tabulated
// effective-length factor. Pairs outside this table are rejected rather than
// defaulted.
var kFactors = map[[2]string]float64{
	{"fixed", "fixed"}:   0.65,
	{"fixed", "pinned"}:  0.80,
	{"pinned", "fixed"}:  0.70,
	{"fixed", "free"}:    2.10,
	{"pinned", "pinned"}: 1.00,
	{"pinned", "free"}:   2.10,
}

// KFactor returns the effective-length factor for a boundary-condition pair.
// Unlisted pairs are a validation error.
func KFactor(base, top string) (float64, error) {
	if k, ok := kFactors[[2]string{base, top}]; ok {
		return k, nil
	}
	return 0, errs.Validation("boundary_conditions", base+"/"+top, "no tabulated K factor for this pair")
}

// CompressionResult reports the Chapter E check. Stresses in MPa, force in kN.
type CompressionResult struct {
	Pu            float64 `json:"Pu"`
	PhiPn         float64 `json:"phi_Pn"`
	Pn            float64 `json:"Pn"`
	Fcr           float64 `json:"Fcr"`
	Fe            float64 `json:"Fe"`
	Lambda        float64 `json:"KL_r"`
	LambdaLimit   float64 `json:"limit"`
	GoverningAxis string  `json:"governing_axis"`
	Branch        string  `json:"branch"`
	K             float64 `json:"K"`
	Ratio         float64 `json:"ratio"`
	Utilization   float64 `json:"utilization"`
	OK            bool    `json:"ok"`
}

// Compression checks flexural buckling per AISC E3. Lx and Ly are the
// unbraced lengths about each axis [m]. The governing slenderness is
// max(K·Lx/rx, K·Ly/ry); the critical stress follows the inelastic E3-2 curve
// up to 4.71·sqrt(E/Fy) and the elastic 0.877·Fe branch beyond it.
func Compression(sec catalog.Section, mat catalog.Material, Pu, K, Lx, Ly float64) (CompressionResult, error) {
	if K <= 0 {
		return CompressionResult{}, errs.Validation("K", K, "effective length factor must be positive")
	}
	if Lx <= 0 {
		return CompressionResult{}, errs.Validation("Lx", Lx, "unbraced length must be positive")
	}
	if Ly <= 0 {
		return CompressionResult{}, errs.Validation("Ly", Ly, "unbraced length must be positive")
	}

	Fy := mat.Fy
	E := mat.E

	lambdaX := K * Lx * 1000 / sec.Rx
	lambdaY := K * Ly * 1000 / sec.Ry
	lambda := lambdaX
	axis := "x"
	if lambdaY > lambdaX {
		lambda = lambdaY
		axis = "y"
	}

	lambdaLimit := 4.71 * math.Sqrt(E/Fy)
	Fe := math.Pi * math.Pi * E / (lambda * lambda) // MPa

	var Fcr float64
	var branch string
	if lambda <= lambdaLimit {
		Fcr = math.Pow(0.658, Fy/Fe) * Fy
		branch = BranchInelastic
	} else {
		Fcr = 0.877 * Fe
		branch = BranchElastic
	}

	const phiC = 0.90
	Pn := Fcr * sec.A / 1e3 // kN
	phiPn := phiC * Pn

	res := CompressionResult{
		Pu:            Pu,
		PhiPn:         phiPn,
		Pn:            Pn,
		Fcr:           Fcr,
		Fe:            Fe,
		Lambda:        lambda,
		LambdaLimit:   lambdaLimit,
		GoverningAxis: axis,
		Branch:        branch,
		K:             K,
	}
	if Pu <= 0 {
		res.OK = true
		return res, nil
	}
	res.Ratio = math.Abs(Pu) / phiPn
	res.Utilization = res.Ratio * 100
	res.OK = pass(res.Ratio)
	return res, nil
}
