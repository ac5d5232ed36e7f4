// Package report renders a PDF verification report for a beam or column
// member, with the demand, capacity and ratio of every check performed.
package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/catalog"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type Input struct {
	Project string              `json:"project"`
	Author  string              `json:"author"`
	Title   string              `json:"title"`
	Notes   string              `json:"notes"`
	Member  string              `json:"member"` // beam or column
	Beam    *verify.BeamInput   `json:"beam,omitempty"`
	Column  *verify.ColumnInput `json:"column,omitempty"`
}

type Handler struct{}

// Generate runs the requested verification and streams a PDF summary.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Steel Verification Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	var err error
	switch input.Member {
	case "beam":
		if input.Beam == nil {
			err = errs.Validationf("beam input required for member=beam")
		} else {
			err = beamSection(pdf, *input.Beam)
		}
	case "column":
		if input.Column == nil {
			err = errs.Validationf("column input required for member=column")
		} else {
			err = columnSection(pdf, *input.Column)
		}
	default:
		err = errs.Validation("member", input.Member, "must be beam or column")
	}
	if err != nil {
		status := http.StatusBadRequest
		if errs.IsNotFound(err) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	if input.Notes != "" {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(0, 5, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"verification.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func memberHeader(pdf *gofpdf.Fpdf, sec catalog.Section, mat catalog.Material) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, fmt.Sprintf("Section %s  (%s, %s)", sec.ID, sec.Type, sec.Catalog))
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Material %s: Fy = %.0f MPa, Fu = %.0f MPa, E = %.0f MPa", mat.ID, mat.Fy, mat.Fu, mat.E))
	pdf.Ln(8)
}

func tableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(40, 6, "Check", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, "Demand", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, "Capacity", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Ratio", "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, "Status", "1", 0, "C", false, 0, "")
	pdf.Ln(6)
}

func checkRow(pdf *gofpdf.Fpdf, name string, demand, capacity, ratio float64, unit string, ok bool) {
	verdict := "OK"
	if !ok {
		verdict = "FAIL"
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(40, 6, name, "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f %s", demand, unit), "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 6, fmt.Sprintf("%.2f %s", capacity, unit), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 6, fmt.Sprintf("%.3f", ratio), "1", 0, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 6, verdict, "1", 0, "C", false, 0, "")
	pdf.Ln(6)
}

func beamSection(pdf *gofpdf.Fpdf, in verify.BeamInput) error {
	res, err := verify.Beam(in)
	if err != nil {
		return err
	}
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return err
	}
	memberHeader(pdf, sec, mat)

	tableHeader(pdf)
	checkRow(pdf, "Flexure F2", res.Flexure.Mu, res.Flexure.PhiMn, res.Flexure.Ratio, "kN-m", res.Flexure.OK)
	checkRow(pdf, "Shear G2", res.Shear.Vu, res.Shear.PhiVn, res.Shear.Ratio, "kN", res.Shear.OK)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("LTB zone: %s  (Lb = %.2f m, Lp = %.2f m, Lr = %.2f m)",
		res.Flexure.Zone, res.Flexure.Lb, res.Flexure.Lp, res.Flexure.Lr))
	pdf.Ln(6)
	for name, chk := range res.Deflection {
		verdict := "OK"
		if !chk.OK {
			verdict = "FAIL"
		}
		pdf.Cell(0, 5, fmt.Sprintf("Deflection %s: %.2f mm vs limit %.2f mm  %s", name, chk.Actual, chk.Limit, verdict))
		pdf.Ln(5)
	}
	summary(pdf, res.OverallOK, res.Governing)
	return nil
}

func columnSection(pdf *gofpdf.Fpdf, in verify.ColumnInput) error {
	res, err := verify.Column(in)
	if err != nil {
		return err
	}
	sec, err := catalog.SectionByID(in.SectionID)
	if err != nil {
		return err
	}
	mat, err := catalog.MaterialByID(in.MaterialID)
	if err != nil {
		return err
	}
	memberHeader(pdf, sec, mat)

	tableHeader(pdf)
	checkRow(pdf, "Compression E3", res.Compression.Pu, res.Compression.PhiPn, res.Compression.Ratio, "kN", res.Compression.OK)
	checkRow(pdf, "Flexure F2", res.Flexure.Mu, res.Flexure.PhiMn, res.Flexure.Ratio, "kN-m", res.Flexure.OK)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("Slenderness KL/r = %.1f (%s axis, %s branch), K = %.2f",
		res.Compression.Lambda, res.Compression.GoverningAxis, res.Compression.Branch, res.Compression.K))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Interaction %s = %.3f", res.Interaction.Equation, res.Interaction.Value))
	pdf.Ln(5)
	summary(pdf, res.OverallOK, res.Governing)
	return nil
}

func summary(pdf *gofpdf.Fpdf, ok bool, governing string) {
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	verdict := "MEMBER OK"
	if !ok {
		verdict = "MEMBER DOES NOT PASS"
	}
	pdf.Cell(0, 8, fmt.Sprintf("%s  (governing: %s)", verdict, governing))
	pdf.Ln(8)
}
