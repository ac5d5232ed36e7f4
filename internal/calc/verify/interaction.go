package verify

// InteractionResult reports the Chapter H1 combined axial-flexure check.
type InteractionResult struct {
	Equation    string  `json:"equation"`
	PrPc        float64 `json:"Pr_Pc"`
	MrMc        float64 `json:"Mr_Mc"`
	Value       float64 `json:"value"`
	Utilization float64 `json:"utilization"`
	OK          bool    `json:"ok"`
}

// Interaction combines an axial and a flexural check per AISC H1-1.
// Equation H1-1a applies at Pr/Pc >= 0.2, H1-1b below it.
func Interaction(comp CompressionResult, flex FlexureResult) InteractionResult {
	PrPc := comp.Ratio
	MrMc := flex.Ratio

	var value float64
	var equation string
	if PrPc >= 0.2 {
		value = PrPc + (8.0/9.0)*MrMc
		equation = "H1-1a"
	} else {
		value = PrPc/2 + MrMc
		equation = "H1-1b"
	}

	return InteractionResult{
		Equation:    equation,
		PrPc:        PrPc,
		MrMc:        MrMc,
		Value:       value,
		Utilization: value * 100,
		OK:          pass(value),
	}
}
