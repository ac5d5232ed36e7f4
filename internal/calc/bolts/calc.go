// Package bolts implements AISC 360 Chapter J bolted-connection checks:
// shear and tension (J3.6), combined shear-tension (J3.7), bearing and
// tear-out at bolt holes (J3.10) and block shear (J4.3).
package bolts

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Hole types for the bearing check.
const (
	HoleStandard  = "STD"
	HoleOversized = "OVS"
	HoleSlotted   = "SLOTTED"
)

// Grade carries the nominal stresses of a bolt grade per AISC Table J3.2
// (threads not excluded), in MPa.
type Grade struct {
	ID  string  `json:"id"`
	Fnt float64 `json:"Fnt"`
	Fnv float64 `json:"Fnv"`
}

// Diameter carries a nominal bolt size: shank diameter [mm] and nominal
// area [mm²].
type Diameter struct {
	ID string  `json:"id"`
	D  float64 `json:"d"`
	Ab float64 `json:"Ab"`
}

var grades = []Grade{
	{ID: "A325", Fnt: 620, Fnv: 372},
	{ID: "A490", Fnt: 780, Fnv: 457},
	{ID: "4.6", Fnt: 240, Fnv: 150},
	{ID: "8.8", Fnt: 640, Fnv: 372},
	{ID: "10.9", Fnt: 830, Fnv: 500},
}

var diameters = []Diameter{
	{ID: "M12", D: 12, Ab: 113},
	{ID: "M16", D: 16, Ab: 201},
	{ID: "M20", D: 20, Ab: 314},
	{ID: "M22", D: 22, Ab: 380},
	{ID: "M24", D: 24, Ab: 452},
	{ID: "M27", D: 27, Ab: 573},
	{ID: "M30", D: 30, Ab: 707},
	{ID: `3/4"`, D: 19.05, Ab: 285},
	{ID: `7/8"`, D: 22.23, Ab: 388},
	{ID: `1"`, D: 25.4, Ab: 507},
	{ID: `1-1/8"`, D: 28.58, Ab: 641},
	{ID: `1-1/4"`, D: 31.75, Ab: 792},
}

var (
	gradesByID    = make(map[string]Grade, len(grades))
	diametersByID = make(map[string]Diameter, len(diameters))
)

func init() {
	for _, g := range grades {
		gradesByID[g.ID] = g
	}
	for _, d := range diameters {
		diametersByID[d.ID] = d
	}
}

// Grades lists the available bolt grades.
func Grades() []Grade { return append([]Grade(nil), grades...) }

// Diameters lists the available nominal diameters.
func Diameters() []Diameter { return append([]Diameter(nil), diameters...) }

// GradeByID resolves a bolt grade identifier.
func GradeByID(id string) (Grade, error) {
	g, ok := gradesByID[id]
	if !ok {
		return Grade{}, errs.NotFound("bolt grade", id)
	}
	return g, nil
}

// DiameterByID resolves a nominal diameter identifier.
func DiameterByID(id string) (Diameter, error) {
	d, ok := diametersByID[id]
	if !ok {
		return Diameter{}, errs.NotFound("bolt diameter", id)
	}
	return d, nil
}

// Result is the common verification shape: demand and capacity in kN.
type Result struct {
	Type        string                 `json:"type"`
	Demand      float64                `json:"demand"`
	PhiRn       float64                `json:"phi_Rn"`
	Rn          float64                `json:"Rn"`
	Phi         float64                `json:"phi"`
	Ratio       float64                `json:"ratio"`
	Utilization float64                `json:"utilization"`
	OK          bool                   `json:"ok"`
	Details     map[string]interface{} `json:"details"`
}

const (
	phiBolt    = 0.75
	phiBearing = 0.75
	ratioTol   = 1e-9
)

func pass(ratio float64) bool { return ratio <= 1.0+ratioTol }

func finish(res *Result, demand float64) {
	res.Demand = demand
	if demand == 0 {
		res.OK = true
		return
	}
	res.Ratio = math.Abs(demand) / res.PhiRn
	res.Utilization = res.Ratio * 100
	res.OK = pass(res.Ratio)
}

func validateCount(numBolts int) error {
	if numBolts < 1 {
		return errs.Validation("num_bolts", numBolts, "at least one bolt required")
	}
	return nil
}

// Shear checks the bolt group against J3-1: Rn = Fnv·Ab·planes per bolt.
func Shear(gradeID, diameterID string, numBolts int, Vu float64, shearPlanes int) (Result, error) {
	grade, err := GradeByID(gradeID)
	if err != nil {
		return Result{}, err
	}
	dia, err := DiameterByID(diameterID)
	if err != nil {
		return Result{}, err
	}
	if err := validateCount(numBolts); err != nil {
		return Result{}, err
	}
	if shearPlanes < 1 {
		return Result{}, errs.Validation("shear_planes", shearPlanes, "at least one shear plane required")
	}

	rnPerBolt := grade.Fnv * dia.Ab / 1000 // kN
	rn := rnPerBolt * float64(numBolts) * float64(shearPlanes)

	res := Result{
		Type:  "shear",
		PhiRn: phiBolt * rn,
		Rn:    rn,
		Phi:   phiBolt,
		Details: map[string]interface{}{
			"Fnv":          grade.Fnv,
			"Ab_per_bolt":  dia.Ab,
			"Rn_per_bolt":  rnPerBolt,
			"num_bolts":    numBolts,
			"shear_planes": shearPlanes,
			"bolt_grade":   gradeID,
			"diameter":     diameterID,
		},
	}
	finish(&res, Vu)
	return res, nil
}

// Tension checks the bolt group against J3-2: Rn = Fnt·Ab per bolt.
func Tension(gradeID, diameterID string, numBolts int, Tu float64) (Result, error) {
	grade, err := GradeByID(gradeID)
	if err != nil {
		return Result{}, err
	}
	dia, err := DiameterByID(diameterID)
	if err != nil {
		return Result{}, err
	}
	if err := validateCount(numBolts); err != nil {
		return Result{}, err
	}

	rnPerBolt := grade.Fnt * dia.Ab / 1000 // kN
	rn := rnPerBolt * float64(numBolts)

	res := Result{
		Type:  "tension",
		PhiRn: phiBolt * rn,
		Rn:    rn,
		Phi:   phiBolt,
		Details: map[string]interface{}{
			"Fnt":         grade.Fnt,
			"Ab_per_bolt": dia.Ab,
			"Rn_per_bolt": rnPerBolt,
			"num_bolts":   numBolts,
			"bolt_grade":  gradeID,
			"diameter":    diameterID,
		},
	}
	finish(&res, Tu)
	return res, nil
}

// CombinedResult reports simultaneous shear and tension on a bolt group.
type CombinedResult struct {
	Type         string             `json:"type"`
	Vu           float64            `json:"Vu"`
	Tu           float64            `json:"Tu"`
	ShearCheck   Result             `json:"shear_check"`
	TensionCheck Result             `json:"tension_check"`
	Interaction  InteractionDetail  `json:"interaction"`
	Stresses     map[string]float64 `json:"stresses"`
	OverallOK    bool               `json:"overall_ok"`
}

type InteractionDetail struct {
	Value       float64 `json:"value"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
	Formula     string  `json:"formula"`
}

// Combined checks a bolt group under simultaneous shear and tension per J3.7,
// using the elliptical interaction of the factored stress ratios alongside
// the individual J3-1/J3-2 checks.
func Combined(gradeID, diameterID string, numBolts int, Vu, Tu float64, shearPlanes int) (CombinedResult, error) {
	shearCheck, err := Shear(gradeID, diameterID, numBolts, Vu, shearPlanes)
	if err != nil {
		return CombinedResult{}, err
	}
	tensionCheck, err := Tension(gradeID, diameterID, numBolts, Tu)
	if err != nil {
		return CombinedResult{}, err
	}

	grade, _ := GradeByID(gradeID)
	dia, _ := DiameterByID(diameterID)

	// Per-bolt demands converted to stresses on the nominal area.
	frv := math.Abs(Vu) / float64(numBolts*shearPlanes) * 1000 / dia.Ab // MPa
	frt := math.Abs(Tu) / float64(numBolts) * 1000 / dia.Ab            // MPa

	phiFnv := phiBolt * grade.Fnv
	phiFnt := phiBolt * grade.Fnt

	value := math.Pow(frv/phiFnv, 2) + math.Pow(frt/phiFnt, 2)
	ok := pass(value)

	return CombinedResult{
		Type:         "combined",
		Vu:           Vu,
		Tu:           Tu,
		ShearCheck:   shearCheck,
		TensionCheck: tensionCheck,
		Interaction: InteractionDetail{
			Value:       value,
			Utilization: value * 100,
			OK:          ok,
			Formula:     "(frv/phiFnv)^2 + (frt/phiFnt)^2 <= 1.0",
		},
		Stresses: map[string]float64{
			"frv":     frv,
			"frt":     frt,
			"phi_Fnv": phiFnv,
			"phi_Fnt": phiFnt,
		},
		OverallOK: ok && shearCheck.OK && tensionCheck.OK,
	}, nil
}

// BearingInput parameterizes the J3.10 plate bearing check. Plate thickness,
// edge distance and spacing in mm; Fu in MPa; Vu in kN.
type BearingInput struct {
	TPlate   float64 `json:"t_plate"`
	FuPlate  float64 `json:"Fu_plate"`
	Diameter string  `json:"diameter"`
	NumBolts int     `json:"num_bolts"`
	Vu       float64 `json:"Vu"`
	EdgeDist float64 `json:"edge_dist"`
	Spacing  float64 `json:"spacing"`
	HoleType string  `json:"hole_type"`
}

// Bearing checks bearing and tear-out at bolt holes per J3-6a/b: per bolt the
// lesser of the tear-out term 1.2·Lc·t·Fu and the deformation term
// 2.4·d·t·Fu, with the standard 2 mm hole clearance. Oversized and slotted
// holes apply 0.8 and 0.7 reductions respectively.
func Bearing(in BearingInput) (Result, error) {
	dia, err := DiameterByID(in.Diameter)
	if err != nil {
		return Result{}, err
	}
	if err := validateCount(in.NumBolts); err != nil {
		return Result{}, err
	}
	if in.TPlate <= 0 {
		return Result{}, errs.Validation("t_plate", in.TPlate, "plate thickness must be positive")
	}
	if in.FuPlate <= 0 {
		return Result{}, errs.Validation("Fu_plate", in.FuPlate, "plate strength must be positive")
	}
	if in.EdgeDist <= 0 {
		return Result{}, errs.Validation("edge_dist", in.EdgeDist, "edge distance must be positive")
	}
	if in.Spacing <= 0 {
		return Result{}, errs.Validation("spacing", in.Spacing, "bolt spacing must be positive")
	}
	holeType := in.HoleType
	if holeType == "" {
		holeType = HoleStandard
	}
	if holeType != HoleStandard && holeType != HoleOversized && holeType != HoleSlotted {
		return Result{}, errs.Validation("hole_type", holeType, "use STD, OVS or SLOTTED")
	}

	dHole := dia.D + 2 // standard hole per J3.3
	lcEdge := in.EdgeDist - dHole/2
	lcSpacing := in.Spacing - dHole

	lc := lcEdge
	if in.NumBolts > 1 {
		lc = math.Min(lcEdge, lcSpacing/2)
	}
	if lc <= 0 {
		return Result{}, errs.Validation("edge_dist", in.EdgeDist, "clear distance is non-positive")
	}

	rnPerBolt := math.Min(
		1.2*lc*in.TPlate*in.FuPlate/1000,
		2.4*dia.D*in.TPlate*in.FuPlate/1000,
	)
	switch holeType {
	case HoleOversized:
		rnPerBolt *= 0.8
	case HoleSlotted:
		rnPerBolt *= 0.7
	}

	rn := rnPerBolt * float64(in.NumBolts)

	res := Result{
		Type:  "bearing",
		PhiRn: phiBearing * rn,
		Rn:    rn,
		Phi:   phiBearing,
		Details: map[string]interface{}{
			"t_plate":     in.TPlate,
			"Fu_plate":    in.FuPlate,
			"diameter":    in.Diameter,
			"d_bolt":      dia.D,
			"d_hole":      dHole,
			"edge_dist":   in.EdgeDist,
			"spacing":     in.Spacing,
			"Lc":          lc,
			"Rn_per_bolt": rnPerBolt,
			"num_bolts":   in.NumBolts,
			"hole_type":   holeType,
		},
	}
	finish(&res, in.Vu)
	return res, nil
}

// BlockShearResult reports the J4.3 check with the governing failure mode.
type BlockShearResult struct {
	Type      string                 `json:"type"`
	PhiRn     float64                `json:"phi_Rn"`
	Rn        float64                `json:"Rn"`
	Phi       float64                `json:"phi"`
	Governing string                 `json:"governing"`
	Details   map[string]interface{} `json:"details"`
}

// BlockShear computes the J4-5 block shear capacity: the shear-fracture path
// 0.6·Fu·Anv + Ubs·Fu·Ant bounded by the shear-yield path
// 0.6·Fy·Agv + Ubs·Fu·Ant. Areas in mm², stresses in MPa, Rn in kN.
func BlockShear(Agv, Anv, Ant, Fy, Fu, Ubs float64) (BlockShearResult, error) {
	if Agv <= 0 || Anv <= 0 || Ant <= 0 {
		return BlockShearResult{}, errs.Validationf("block shear areas must be positive (Agv=%v Anv=%v Ant=%v)", Agv, Anv, Ant)
	}
	if Fy <= 0 || Fu <= 0 {
		return BlockShearResult{}, errs.Validationf("material strengths must be positive (Fy=%v Fu=%v)", Fy, Fu)
	}
	if Ubs <= 0 {
		Ubs = 1.0
	}

	rnFracture := 0.6*Fu*Anv + Ubs*Fu*Ant
	rnYield := 0.6*Fy*Agv + Ubs*Fu*Ant

	rn := math.Min(rnFracture, rnYield) / 1000 // kN
	governing := "yield_shear"
	if rnFracture < rnYield {
		governing = "fracture_tension"
	}

	return BlockShearResult{
		Type:      "block_shear",
		PhiRn:     phiBearing * rn,
		Rn:        rn,
		Phi:       phiBearing,
		Governing: governing,
		Details: map[string]interface{}{
			"Agv":          Agv,
			"Anv":          Anv,
			"Ant":          Ant,
			"Fy":           Fy,
			"Fu":           Fu,
			"Ubs":          Ubs,
			"Rn1_fracture": rnFracture / 1000,
			"Rn2_yield":    rnYield / 1000,
		},
	}, nil
}
