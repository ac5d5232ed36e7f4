// Package combos implements ASCE 7-16 load combinations for LRFD and ASD
// design and selects the governing (critical) combination for a load case.
package combos

import (
	"math"
	"sort"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Method selects the design philosophy.
type Method string

const (
	LRFD Method = "LRFD"
	ASD  Method = "ASD"
)

// Recognized load-type tags.
const (
	Dead        = "D"
	Live        = "L"
	RoofLive    = "Lr"
	Snow        = "S"
	Wind        = "W"
	Earthquake  = "E"
	Rain        = "R"
	Soil        = "H"
	Fluid       = "F"
	Temperature = "T"
)

// LoadTypeLabels maps each recognized tag to a display label.
var LoadTypeLabels = map[string]string{
	Dead:        "Dead load",
	Live:        "Live load",
	RoofLive:    "Roof live load",
	Snow:        "Snow load",
	Wind:        "Wind load",
	Earthquake:  "Earthquake load",
	Rain:        "Rain load",
	Soil:        "Soil weight",
	Fluid:       "Fluid load",
	Temperature: "Temperature load",
}

// Combination is one factored load rule: a name, a display description and a
// factor per load-type tag. Tags absent from Factors contribute nothing.
type Combination struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Factors     map[string]float64 `json:"factors"`
}

// LRFD combinations per ASCE 7-16 Table 2.3-1.
var lrfdCombinations = []Combination{
	{Name: "1.4D", Description: "Dead load only", Factors: map[string]float64{Dead: 1.4}},
	{Name: "1.2D + 1.6L + 0.5(Lr o S)", Description: "Dead + live + roof/snow", Factors: map[string]float64{Dead: 1.2, Live: 1.6, RoofLive: 0.5, Snow: 0.5}},
	{Name: "1.2D + 1.6(Lr o S) + (L o 0.5W)", Description: "Dead + roof/snow + live/wind", Factors: map[string]float64{Dead: 1.2, RoofLive: 1.6, Snow: 1.6, Live: 1.0, Wind: 0.5}},
	{Name: "1.2D + 1.0W + L + 0.5(Lr o S)", Description: "Dead + wind + live + roof/snow", Factors: map[string]float64{Dead: 1.2, Wind: 1.0, Live: 1.0, RoofLive: 0.5, Snow: 0.5}},
	{Name: "1.2D + 1.0E + L + 0.2S", Description: "Dead + earthquake + live + snow", Factors: map[string]float64{Dead: 1.2, Earthquake: 1.0, Live: 1.0, Snow: 0.2}},
	{Name: "0.9D + 1.0W", Description: "Minimum dead + wind (uplift)", Factors: map[string]float64{Dead: 0.9, Wind: 1.0}},
	{Name: "0.9D + 1.0E", Description: "Minimum dead + earthquake (uplift)", Factors: map[string]float64{Dead: 0.9, Earthquake: 1.0}},
}

// ASD combinations per ASCE 7-16 Table 2.4-1.
var asdCombinations = []Combination{
	{Name: "D", Description: "Dead load only", Factors: map[string]float64{Dead: 1.0}},
	{Name: "D + L", Description: "Dead + live", Factors: map[string]float64{Dead: 1.0, Live: 1.0}},
	{Name: "D + (Lr o S)", Description: "Dead + roof/snow", Factors: map[string]float64{Dead: 1.0, RoofLive: 1.0, Snow: 1.0}},
	{Name: "D + 0.75L + 0.75(Lr o S)", Description: "Dead + live + roof/snow", Factors: map[string]float64{Dead: 1.0, Live: 0.75, RoofLive: 0.75, Snow: 0.75}},
	{Name: "D + (0.6W o 0.7E)", Description: "Dead + wind or earthquake", Factors: map[string]float64{Dead: 1.0, Wind: 0.6, Earthquake: 0.7}},
	{Name: "D + 0.75L + 0.75(0.6W) + 0.75(Lr o S)", Description: "Dead + live + wind + roof/snow", Factors: map[string]float64{Dead: 1.0, Live: 0.75, Wind: 0.45, RoofLive: 0.75, Snow: 0.75}},
	{Name: "D + 0.75L + 0.75(0.7E) + 0.75S", Description: "Dead + live + earthquake + snow", Factors: map[string]float64{Dead: 1.0, Live: 0.75, Earthquake: 0.525, Snow: 0.75}},
	{Name: "0.6D + 0.6W", Description: "Minimum dead + wind (uplift)", Factors: map[string]float64{Dead: 0.6, Wind: 0.6}},
	{Name: "0.6D + 0.7E", Description: "Minimum dead + earthquake (uplift)", Factors: map[string]float64{Dead: 0.6, Earthquake: 0.7}},
}

// Combinations returns the rule catalog for the given method, in code order.
func Combinations(method Method) ([]Combination, error) {
	switch method {
	case LRFD:
		return lrfdCombinations, nil
	case ASD:
		return asdCombinations, nil
	default:
		return nil, errs.Validation("method", string(method), "use LRFD or ASD")
	}
}

// ValidateLoads rejects unrecognized tags and negative magnitudes. Direction
// reversal is modeled by the 0.9D/0.6D uplift rules, not by signed inputs.
func ValidateLoads(loads map[string]float64) error {
	for tag, v := range loads {
		if _, ok := LoadTypeLabels[tag]; !ok {
			return errs.Validation("load_types", tag, "unrecognized load type")
		}
		if v < 0 {
			return errs.Validation("load_types."+tag, v, "load magnitude cannot be negative")
		}
	}
	return nil
}

// Apply computes the factored value of one combination over a load case.
// Tags missing from loads contribute zero.
func Apply(loads map[string]float64, combo Combination) float64 {
	total := 0.0
	for tag, factor := range combo.Factors {
		total += factor * loads[tag]
	}
	return total
}

// ComboResult is a single evaluated combination for reporting.
type ComboResult struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Value       float64            `json:"value"`
	FactorsUsed map[string]float64 `json:"factors_used"`
}

// Critical returns the governing combination and its factored value. The
// comparison is by absolute value; ties go to the earlier catalog entry, so an
// all-zero load case reports the first rule at value 0.
func Critical(loads map[string]float64, method Method) (Combination, float64, error) {
	if err := ValidateLoads(loads); err != nil {
		return Combination{}, 0, err
	}
	combinations, err := Combinations(method)
	if err != nil {
		return Combination{}, 0, err
	}
	best := combinations[0]
	bestValue := Apply(loads, best)
	for _, combo := range combinations[1:] {
		v := Apply(loads, combo)
		if math.Abs(v) > math.Abs(bestValue) {
			best = combo
			bestValue = v
		}
	}
	return best, bestValue, nil
}

// All evaluates every combination in the catalog and returns the results
// sorted by absolute factored value, descending. FactorsUsed carries only the
// tags actually present with nonzero magnitude, for display.
func All(loads map[string]float64, method Method) ([]ComboResult, error) {
	if err := ValidateLoads(loads); err != nil {
		return nil, err
	}
	combinations, err := Combinations(method)
	if err != nil {
		return nil, err
	}
	results := make([]ComboResult, 0, len(combinations))
	for _, combo := range combinations {
		used := make(map[string]float64)
		for tag, factor := range combo.Factors {
			if loads[tag] != 0 {
				used[tag] = factor
			}
		}
		results = append(results, ComboResult{
			Name:        combo.Name,
			Description: combo.Description,
			Value:       Apply(loads, combo),
			FactorsUsed: used,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].Value) > math.Abs(results[j].Value)
	})
	return results, nil
}

// FactoredLoads returns the per-tag factored magnitudes under one combination.
func FactoredLoads(loads map[string]float64, combo Combination) map[string]float64 {
	out := make(map[string]float64, len(loads))
	for tag, v := range loads {
		out[tag] = v * combo.Factors[tag]
	}
	return out
}

// Selection bundles the combination outcome attached to analysis responses.
type Selection struct {
	Method          Method             `json:"method"`
	UnfactoredLoads map[string]float64 `json:"unfactored_loads"`
	Critical        CriticalInfo       `json:"critical_combination"`
	AllCombinations []ComboResult      `json:"all_combinations"`
}

type CriticalInfo struct {
	Name         string             `json:"name"`
	Description  string             `json:"description"`
	FactoredLoad float64            `json:"factored_load"`
	Factors      map[string]float64 `json:"factors"`
}

// Select runs the full selection: governing combination plus the top-ranked
// list (at most top entries, 0 meaning all).
func Select(loads map[string]float64, method Method, top int) (Selection, error) {
	critical, value, err := Critical(loads, method)
	if err != nil {
		return Selection{}, err
	}
	all, err := All(loads, method)
	if err != nil {
		return Selection{}, err
	}
	if top > 0 && len(all) > top {
		all = all[:top]
	}
	return Selection{
		Method:          method,
		UnfactoredLoads: loads,
		Critical: CriticalInfo{
			Name:         critical.Name,
			Description:  critical.Description,
			FactoredLoad: value,
			Factors:      critical.Factors,
		},
		AllCombinations: all,
	}, nil
}
