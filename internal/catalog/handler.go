package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type Handler struct{}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) ListSections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	secs := Sections(q.Get("section_type"), q.Get("catalog"), limit)
	writeJSON(w, map[string]interface{}{"count": len(secs), "sections": secs})
}

func (h *Handler) ListSectionTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]interface{}{"types": SectionTypes})
}

func (h *Handler) SearchSections(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("query")
	if query == "" {
		http.Error(w, "query parameter required", http.StatusBadRequest)
		return
	}
	results := SearchSections(query, q.Get("catalog"))
	writeJSON(w, map[string]interface{}{"query": query, "count": len(results), "sections": results})
}

func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sec, err := SectionByID(id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	writeJSON(w, sec)
}

func (h *Handler) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := SectionFilter{
		Type:      q.Get("section_type"),
		Catalog:   q.Get("catalog"),
		DMin:      floatParam(q.Get("d_min")),
		DMax:      floatParam(q.Get("d_max")),
		WeightMin: floatParam(q.Get("weight_min")),
		WeightMax: floatParam(q.Get("weight_max")),
		IxMin:     floatParam(q.Get("Ix_min")),
		IyMin:     floatParam(q.Get("Iy_min")),
		ZxMin:     floatParam(q.Get("Zx_min")),
		RxMin:     floatParam(q.Get("rx_min")),
		RyMin:     floatParam(q.Get("ry_min")),
	}
	f.Limit, _ = strconv.Atoi(q.Get("limit"))
	results := FilterSections(f)
	writeJSON(w, map[string]interface{}{"count": len(results), "sections": results})
}

func (h *Handler) ListMaterials(w http.ResponseWriter, r *http.Request) {
	mats := Materials()
	writeJSON(w, map[string]interface{}{"count": len(mats), "materials": mats})
}

func (h *Handler) GetMaterial(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	mat, err := MaterialByID(id)
	if err != nil {
		if errs.IsNotFound(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, mat)
}

func floatParam(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
