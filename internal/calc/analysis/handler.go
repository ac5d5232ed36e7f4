package analysis

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

// Beam analyzes a simply supported beam and verifies it.
func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := Beam(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Column analyzes a single column and verifies it.
func (h *Handler) Column(w http.ResponseWriter, r *http.Request) {
	var input ColumnInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := Column(input)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}
