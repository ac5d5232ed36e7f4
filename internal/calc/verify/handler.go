package verify

import (
	"encoding/json"
	"net/http"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type Handler struct{}

func statusFor(err error) int {
	switch {
	case errs.IsNotFound(err):
		return http.StatusNotFound
	case errs.IsValidation(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// Beam verifies flexure + shear + deflection for a beam demand.
func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Beam(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

// Column verifies compression + interaction for a column demand.
func (h *Handler) Column(w http.ResponseWriter, r *http.Request) {
	var input ColumnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Column(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

type frameInput struct {
	Nodes      []FrameNode           `json:"nodes"`
	Elements   []FrameElement        `json:"elements"`
	Forces     map[int]ElementForces `json:"element_forces"`
	MaterialID string                `json:"material_id"`
}

type frameOutput struct {
	Verifications []ElementVerification `json:"element_verifications"`
	Summary       FrameSummary          `json:"verification_summary"`
}

// Frame verifies every element of a 2D frame from solver end forces.
func (h *Handler) Frame(w http.ResponseWriter, r *http.Request) {
	var input frameInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	verifications, summary, err := FrameElements(input.Elements, input.Forces, input.Nodes, input.MaterialID)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, frameOutput{Verifications: verifications, Summary: summary})
}
