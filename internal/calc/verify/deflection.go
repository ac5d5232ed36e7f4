package verify

import (
	"fmt"
	"math"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// DefaultDeflectionLimits are the usual serviceability denominators: L/180
// (total load), L/240 and L/360 (live load).
var DefaultDeflectionLimits = []int{180, 240, 360}

// DeflectionCheck is one span/N limit result, in mm.
type DeflectionCheck struct {
	Limit  float64 `json:"limit"`
	Actual float64 `json:"actual"`
	OK     bool    `json:"ok"`
}

// Deflection checks the actual deflection [mm] of a span [m] against each
// configured denominator. Every limit is reported independently; the caller
// decides which ones are binding.
func Deflection(actualMM, spanM float64, denominators []int) (map[string]DeflectionCheck, error) {
	if spanM <= 0 {
		return nil, errs.Validation("span", spanM, "span must be positive")
	}
	if len(denominators) == 0 {
		denominators = DefaultDeflectionLimits
	}
	spanMM := spanM * 1000
	actual := math.Abs(actualMM)

	checks := make(map[string]DeflectionCheck, len(denominators))
	for _, den := range denominators {
		if den <= 0 {
			return nil, errs.Validation("limit_denominator", den, "denominator must be positive")
		}
		limit := spanMM / float64(den)
		checks[fmt.Sprintf("L/%d", den)] = DeflectionCheck{
			Limit:  limit,
			Actual: actual,
			OK:     actual <= limit+ratioTol,
		}
	}
	return checks, nil
}
