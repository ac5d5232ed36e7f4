package combos

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type Handler struct{}

type Input struct {
	LoadTypes    map[string]float64 `json:"load_types"`
	DesignMethod Method             `json:"design_method"`
}

// Calc evaluates all combinations for a load case and reports the governing one.
func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.LoadTypes == nil {
		http.Error(w, "load_types required", http.StatusBadRequest)
		return
	}
	sel, err := Select(input.LoadTypes, input.DesignMethod, 0)
	if err != nil {
		status := http.StatusBadRequest
		if !errs.IsValidation(err) {
			status = http.StatusInternalServerError
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sel)
}

// List returns the rule catalog for a method.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	method := Method(mux.Vars(r)["method"])
	combinations, err := Combinations(method)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"method":       method,
		"combinations": combinations,
	})
}
