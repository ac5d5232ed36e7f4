// Package batch verifies many beam members in one request, either from a
// JSON list or from an uploaded XLSX sheet.
package batch

import (
	"github.com/kcortes765/STRUCT-CALC/internal/calc/verify"
	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

type BeamBatchInput struct {
	Items []verify.BeamInput `json:"items"`
}

// Item pairs one member's verification with its position in the request so
// callers can correlate failures back to their input rows.
type Item struct {
	Index  int                `json:"index"`
	Input  verify.BeamInput   `json:"input"`
	Result *verify.BeamResult `json:"result,omitempty"`
	Error  string             `json:"error,omitempty"`
}

type BeamBatchResult struct {
	Items  []Item `json:"items"`
	Total  int    `json:"total"`
	Passed int    `json:"passed"`
	Failed int    `json:"failed"`
	Errors int    `json:"errors"`
}

// VerifyBeams checks every item. Per-item failures are reported in place
// rather than aborting the batch.
func VerifyBeams(in BeamBatchInput) (BeamBatchResult, error) {
	if len(in.Items) == 0 {
		return BeamBatchResult{}, errs.Validationf("batch has no items")
	}
	out := BeamBatchResult{Items: make([]Item, 0, len(in.Items)), Total: len(in.Items)}
	for i, beamIn := range in.Items {
		item := Item{Index: i, Input: beamIn}
		res, err := verify.Beam(beamIn)
		if err != nil {
			item.Error = err.Error()
			out.Errors++
		} else {
			item.Result = &res
			if res.OverallOK {
				out.Passed++
			} else {
				out.Failed++
			}
		}
		out.Items = append(out.Items, item)
	}
	return out, nil
}
