package batch

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type Handler struct{}

// Beam verifies a JSON list of beam members.
func (h *Handler) Beam(w http.ResponseWriter, r *http.Request) {
	var input BeamBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := VerifyBeams(input)
	if err != nil {
		status := http.StatusInternalServerError
		if errs.IsValidation(err) {
			status = http.StatusBadRequest
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// ImportBeam verifies beam members read from an uploaded XLSX file. The first
// sheet is used; row one is a header.
func (h *Handler) ImportBeam(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var input BeamBatchInput
	for i := 1; i < len(rows); i++ {
		beamIn, err := parseBeamRow(rows[i])
		if err != nil {
			continue
		}
		input.Items = append(input.Items, beamIn)
	}
	if len(input.Items) == 0 {
		http.Error(w, "No usable rows", http.StatusBadRequest)
		return
	}

	res, err := VerifyBeams(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// expected columns: section_id, material_id, Mu, Vu, L, delta_max_mm, Lb, Cb
func parseBeamRow(row []string) (verify.BeamInput, error) {
	if len(row) < 5 {
		return verify.BeamInput{}, errs.Validationf("row needs at least 5 columns, got %d", len(row))
	}
	mu, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return verify.BeamInput{}, err
	}
	vu, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return verify.BeamInput{}, err
	}
	l, err := strconv.ParseFloat(row[4], 64)
	if err != nil {
		return verify.BeamInput{}, err
	}
	in := verify.BeamInput{
		SectionID:  row[0],
		MaterialID: row[1],
		Mu:         mu,
		Vu:         vu,
		L:          l,
	}
	if len(row) > 5 && row[5] != "" {
		in.DeltaMaxMM, _ = strconv.ParseFloat(row[5], 64)
	}
	if len(row) > 6 && row[6] != "" {
		if lb, err := strconv.ParseFloat(row[6], 64); err == nil {
			in.Lb = &lb
		}
	}
	if len(row) > 7 && row[7] != "" {
		in.Cb, _ = strconv.ParseFloat(row[7], 64)
	}
	return in, nil
}
