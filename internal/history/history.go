// Package history stores and lists a signed-in user's verification runs.
package history

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/kcortes765/STRUCT-CALC/internal/auth"
	"github.com/kcortes765/STRUCT-CALC/internal/repo"
)

type Handler struct {
	Repo repo.CalculationRepository
}

type saveRequest struct {
	Kind   string          `json:"kind"`
	Input  json.RawMessage `json:"input"`
	Result json.RawMessage `json:"result"`
}

var validKinds = map[string]bool{
	"beam":    true,
	"column":  true,
	"frame":   true,
	"bolts":   true,
	"combos":  true,
	"analyze": true,
}

// Save persists one calculation for the current user.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !validKinds[req.Kind] {
		http.Error(w, "Unknown calculation kind", http.StatusBadRequest)
		return
	}
	if len(req.Input) == 0 || len(req.Result) == 0 {
		http.Error(w, "Input and result required", http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveCalculation(r.Context(), repo.Calculation{
		UserID: userID,
		Kind:   req.Kind,
		Input:  req.Input,
		Result: req.Result,
	})
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

// List returns the current user's recent calculations, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok || userID == 0 {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	limit := 50
	if s := r.URL.Query().Get("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := h.Repo.ListCalculations(r.Context(), userID, limit)
	if err != nil {
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"count": len(items),
		"items": items,
	})
}
