package bolts

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

type shearRequest struct {
	BoltGrade   string  `json:"bolt_grade"`
	Diameter    string  `json:"diameter"`
	NumBolts    int     `json:"num_bolts"`
	Vu          float64 `json:"Vu"`
	ShearPlanes int     `json:"shear_planes"`
}

func (h *Handler) Shear(w http.ResponseWriter, r *http.Request) {
	var req shearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ShearPlanes == 0 {
		req.ShearPlanes = 1
	}
	res, err := Shear(req.BoltGrade, req.Diameter, req.NumBolts, req.Vu, req.ShearPlanes)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

type tensionRequest struct {
	BoltGrade string  `json:"bolt_grade"`
	Diameter  string  `json:"diameter"`
	NumBolts  int     `json:"num_bolts"`
	Tu        float64 `json:"Tu"`
}

func (h *Handler) Tension(w http.ResponseWriter, r *http.Request) {
	var req tensionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Tension(req.BoltGrade, req.Diameter, req.NumBolts, req.Tu)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

type combinedRequest struct {
	BoltGrade   string  `json:"bolt_grade"`
	Diameter    string  `json:"diameter"`
	NumBolts    int     `json:"num_bolts"`
	Vu          float64 `json:"Vu"`
	Tu          float64 `json:"Tu"`
	ShearPlanes int     `json:"shear_planes"`
}

func (h *Handler) Combined(w http.ResponseWriter, r *http.Request) {
	var req combinedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.ShearPlanes == 0 {
		req.ShearPlanes = 1
	}
	res, err := Combined(req.BoltGrade, req.Diameter, req.NumBolts, req.Vu, req.Tu, req.ShearPlanes)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

func (h *Handler) Bearing(w http.ResponseWriter, r *http.Request) {
	var req BearingInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Bearing(req)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

type blockShearRequest struct {
	Agv float64 `json:"Agv"`
	Anv float64 `json:"Anv"`
	Ant float64 `json:"Ant"`
	Fy  float64 `json:"Fy"`
	Fu  float64 `json:"Fu"`
	Ubs float64 `json:"Ubs"`
}

func (h *Handler) BlockShear(w http.ResponseWriter, r *http.Request) {
	var req blockShearRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := BlockShear(req.Agv, req.Anv, req.Ant, req.Fy, req.Fu, req.Ubs)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	respond(w, res)
}

func (h *Handler) ListGrades(w http.ResponseWriter, r *http.Request) {
	all := Grades()
	respond(w, map[string]interface{}{"count": len(all), "grades": all})
}

func (h *Handler) ListDiameters(w http.ResponseWriter, r *http.Request) {
	all := Diameters()
	respond(w, map[string]interface{}{"count": len(all), "diameters": all})
}
