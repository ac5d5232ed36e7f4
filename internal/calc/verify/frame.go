package verify

import (
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// FrameNode is a 2D frame joint. Support is empty for free joints.
type FrameNode struct {
	ID      int     `json:"id"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Support string  `json:"support,omitempty"`
}

// FrameElement connects two nodes with a catalog section.
type FrameElement struct {
	ID          int    `json:"id"`
	NodeI       int    `json:"node_i"`
	NodeJ       int    `json:"node_j"`
	SectionID   string `json:"section_id"`
	ElementType string `json:"element_type"` // beam, column or brace
}

// ElementForces are solver end forces for one element: axial plus shear and
// moment at each end.
type ElementForces struct {
	N  float64 `json:"N"`
	VI float64 `json:"V_i"`
	MI float64 `json:"M_i"`
	VJ float64 `json:"V_j"`
	MJ float64 `json:"M_j"`
}

// ElementVerification is the per-element outcome. Beams carry flexure+shear,
// columns and braces carry the full compression/interaction bundle.
type ElementVerification struct {
	ElementID   int                `json:"element_id"`
	Type        string             `json:"type"`
	SectionID   string             `json:"section_id"`
	Length      float64            `json:"length"`
	Forces      ForceEnvelope      `json:"forces"`
	Flexure     *FlexureResult     `json:"flexure,omitempty"`
	Shear       *ShearResult       `json:"shear,omitempty"`
	Compression *CompressionResult `json:"compression,omitempty"`
	Interaction *InteractionResult `json:"interaction,omitempty"`
	OverallOK   bool               `json:"overall_ok"`
	MaxRatio    float64            `json:"max_ratio"`
}

// ForceEnvelope is the absolute maxima used for the checks.
type ForceEnvelope struct {
	N float64 `json:"N"`
	V float64 `json:"V"`
	M float64 `json:"M"`
}

// FrameSummary aggregates the element verdicts.
type FrameSummary struct {
	OK             bool    `json:"all_ok"`
	MaxRatio       float64 `json:"max_ratio"`
	MaxUtilization float64 `json:"max_utilization"`
	TotalElements  int     `json:"total_elements"`
	PassedElements int     `json:"passed_elements"`
	FailedElements int     `json:"failed_elements"`
}

// frameKFactor mirrors the conservative support-pair rules used for frame
// columns; unknown pairs fall back to the braced K = 1.0 (frame input always
// comes from the solver with a support signature, so no validation error
// here).
func frameKFactor(supportI, supportJ string) float64 {
	switch {
	case supportI == "fixed" && supportJ == "fixed":
		return 0.65
	case supportI == "pinned" && supportJ == "pinned":
		return 1.0
	case (supportI == "fixed" && supportJ == "pinned") || (supportI == "pinned" && supportJ == "fixed"):
		return 0.8
	default:
		return 1.0
	}
}

func elementLength(elem FrameElement, nodes map[int]FrameNode) float64 {
	ni, okI := nodes[elem.NodeI]
	nj, okJ := nodes[elem.NodeJ]
	if !okI || !okJ {
		return 0
	}
	return math.Hypot(nj.X-ni.X, nj.Y-ni.Y)
}

// FrameElements verifies every element of a 2D frame against AISC 360 using
// the solver's end forces: beams get flexure (braced) + shear, columns and
// braces get the compression + interaction bundle.
func FrameElements(elements []FrameElement, forces map[int]ElementForces, frameNodes []FrameNode, materialID string) ([]ElementVerification, FrameSummary, error) {
	mat, err := catalog.MaterialByID(materialID)
	if err != nil {
		return nil, FrameSummary{}, err
	}
	if len(elements) == 0 {
		return nil, FrameSummary{}, errs.Validationf("frame has no elements")
	}

	nodeByID := make(map[int]FrameNode, len(frameNodes))
	for _, n := range frameNodes {
		nodeByID[n.ID] = n
	}

	results := make([]ElementVerification, 0, len(elements))
	summary := FrameSummary{TotalElements: len(elements), OK: true}

	for _, elem := range elements {
		sec, err := catalog.SectionByID(elem.SectionID)
		if err != nil {
			return nil, FrameSummary{}, err
		}
		f, ok := forces[elem.ID]
		if !ok {
			return nil, FrameSummary{}, errs.Validation("element", elem.ID, "no end forces supplied for element")
		}
		env := ForceEnvelope{
			N: math.Abs(f.N),
			V: math.Max(math.Abs(f.VI), math.Abs(f.VJ)),
			M: math.Max(math.Abs(f.MI), math.Abs(f.MJ)),
		}
		length := elementLength(elem, nodeByID)
		if length <= 0 {
			return nil, FrameSummary{}, errs.Validation("element", elem.ID, "degenerate element length")
		}

		ev := ElementVerification{
			ElementID: elem.ID,
			Type:      elem.ElementType,
			SectionID: elem.SectionID,
			Length:    length,
			Forces:    env,
		}

		if elem.ElementType == "beam" {
			flex := bracedFlexure(sec, mat, env.M)
			shear, err := Shear(sec, mat, env.V)
			if err != nil {
				return nil, FrameSummary{}, err
			}
			ev.Flexure = &flex
			ev.Shear = &shear
			ev.OverallOK = flex.OK && shear.OK
			ev.MaxRatio = math.Max(flex.Ratio, shear.Ratio)
		} else {
			K := frameKFactor(nodeByID[elem.NodeI].Support, nodeByID[elem.NodeJ].Support)
			comp, err := Compression(sec, mat, env.N, K, length, length)
			if err != nil {
				return nil, FrameSummary{}, err
			}
			flex := bracedFlexure(sec, mat, env.M)
			inter := Interaction(comp, flex)
			ev.Compression = &comp
			ev.Flexure = &flex
			ev.Interaction = &inter
			ev.OverallOK = inter.OK
			ev.MaxRatio = inter.Value
		}

		if !ev.OverallOK {
			summary.OK = false
			summary.FailedElements++
		} else {
			summary.PassedElements++
		}
		if ev.MaxRatio > summary.MaxRatio {
			summary.MaxRatio = ev.MaxRatio
		}
		results = append(results, ev)
	}

	summary.MaxUtilization = summary.MaxRatio * 100
	return results, summary, nil
}
