// Package catalog holds the static steel section and material reference
// tables. The tables are immutable after init and safe for concurrent reads.
package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Section types.
const (
	TypeW        = "W"
	TypeHSSRect  = "HSS_RECT"
	TypeHSSRound = "HSS_ROUND"
	TypeChannel  = "C"
	TypeAngle    = "L"
)

// Catalog origins.
const (
	CatalogAISC    = "AISC"
	CatalogChilean = "CHILEAN"
)

// SectionTypes lists the supported profile families.
var SectionTypes = []string{TypeW, TypeHSSRect, TypeHSSRound, TypeChannel, TypeAngle}

// Section is an immutable steel profile record. Geometry in mm, areas in mm²,
// inertias in mm⁴, moduli in mm³, weight in kg/m. Rx and Ry are recomputed as
// sqrt(I/A) at init so they are always consistent with Ix, Iy and A.
type Section struct {
	ID      string  `json:"id"`
	Type    string  `json:"type"`
	Catalog string  `json:"catalog"`
	D       float64 `json:"d"`  // overall depth (or OD for round HSS)
	Bf      float64 `json:"bf"` // flange width (or B for rect HSS)
	Tf      float64 `json:"tf"` // flange thickness (or wall for HSS)
	Tw      float64 `json:"tw"` // web thickness (or wall for HSS)
	A       float64 `json:"A"`
	Ix      float64 `json:"Ix"`
	Iy      float64 `json:"Iy"`
	Sx      float64 `json:"Sx"`
	Zx      float64 `json:"Zx"`
	J       float64 `json:"J"`
	Weight  float64 `json:"weight"`
	Rx      float64 `json:"rx"`
	Ry      float64 `json:"ry"`
}

// WebShearArea returns Aw for AISC G2. Flanged rolled shapes use d·tw; for
// hollow and angle shapes the 0.6·A approximation from the verification
// procedure is kept.
func (s Section) WebShearArea() float64 {
	if s.Type == TypeW || s.Type == TypeChannel {
		return s.D * s.Tw
	}
	return 0.6 * s.A
}

// ClearWebDepth returns h for the G2 web slenderness check.
func (s Section) ClearWebDepth() float64 {
	if s.Type == TypeW || s.Type == TypeChannel {
		return s.D - 2*s.Tf
	}
	return s.D
}

var sections = []Section{
	// AISC W shapes (metric designations).
	{ID: "W150X13", Type: TypeW, Catalog: CatalogAISC, D: 150, Bf: 100, Tf: 5.5, Tw: 4.3, A: 1729, Ix: 6.83e6, Iy: 0.916e6, Sx: 91.1e3, Zx: 102e3, J: 16.9e3, Weight: 13.4},
	{ID: "W200X15", Type: TypeW, Catalog: CatalogAISC, D: 200, Bf: 100, Tf: 5.2, Tw: 4.3, A: 1910, Ix: 12.8e6, Iy: 0.870e6, Sx: 128e3, Zx: 145e3, J: 17.7e3, Weight: 14.9},
	{ID: "W250X18", Type: TypeW, Catalog: CatalogAISC, D: 251, Bf: 101, Tf: 5.3, Tw: 4.8, A: 2284, Ix: 22.4e6, Iy: 0.907e6, Sx: 179e3, Zx: 206e3, J: 22.8e3, Weight: 17.9},
	{ID: "W250X33", Type: TypeW, Catalog: CatalogAISC, D: 258, Bf: 146, Tf: 9.1, Tw: 6.1, A: 4187, Ix: 49.1e6, Iy: 4.75e6, Sx: 380e3, Zx: 426e3, J: 99.5e3, Weight: 32.7},
	{ID: "W310X21", Type: TypeW, Catalog: CatalogAISC, D: 303, Bf: 101, Tf: 5.7, Tw: 5.1, A: 2684, Ix: 36.9e6, Iy: 0.982e6, Sx: 244e3, Zx: 285e3, J: 29.3e3, Weight: 20.9},
	{ID: "W310X39", Type: TypeW, Catalog: CatalogAISC, D: 310, Bf: 165, Tf: 9.7, Tw: 5.8, A: 4935, Ix: 84.9e6, Iy: 7.20e6, Sx: 547e3, Zx: 610e3, J: 125e3, Weight: 38.7},
	{ID: "W360X44", Type: TypeW, Catalog: CatalogAISC, D: 352, Bf: 171, Tf: 9.8, Tw: 6.9, A: 5710, Ix: 121e6, Iy: 8.16e6, Sx: 688e3, Zx: 775e3, J: 158e3, Weight: 44.6},
	{ID: "W410X54", Type: TypeW, Catalog: CatalogAISC, D: 403, Bf: 178, Tf: 10.9, Tw: 7.5, A: 6839, Ix: 186e6, Iy: 10.2e6, Sx: 926e3, Zx: 1049e3, J: 227e3, Weight: 53.5},
	{ID: "W460X60", Type: TypeW, Catalog: CatalogAISC, D: 455, Bf: 153, Tf: 13.3, Tw: 8.0, A: 7613, Ix: 254.7e6, Iy: 7.95e6, Sx: 1121e3, Zx: 1285e3, J: 337e3, Weight: 59.5},
	{ID: "W530X74", Type: TypeW, Catalog: CatalogAISC, D: 529, Bf: 166, Tf: 13.6, Tw: 9.7, A: 9484, Ix: 409.5e6, Iy: 10.4e6, Sx: 1549e3, Zx: 1803e3, J: 474e3, Weight: 74.4},
	{ID: "W610X101", Type: TypeW, Catalog: CatalogAISC, D: 603, Bf: 228, Tf: 14.9, Tw: 10.5, A: 12968, Ix: 761.7e6, Iy: 29.3e6, Sx: 2524e3, Zx: 2900e3, J: 778e3, Weight: 101},
	// AISC hollow structural sections.
	{ID: "HSS102X102X6.4", Type: TypeHSSRect, Catalog: CatalogAISC, D: 102, Bf: 102, Tf: 5.9, Tw: 5.9, A: 2174, Ix: 3.25e6, Iy: 3.25e6, Sx: 63.9e3, Zx: 76.9e3, J: 5.33e6, Weight: 18.2},
	{ID: "HSS152X102X6.4", Type: TypeHSSRect, Catalog: CatalogAISC, D: 152, Bf: 102, Tf: 5.9, Tw: 5.9, A: 2774, Ix: 8.70e6, Iy: 4.62e6, Sx: 114e3, Zx: 140e3, J: 9.82e6, Weight: 23.2},
	{ID: "HSS168X4.8", Type: TypeHSSRound, Catalog: CatalogAISC, D: 168, Bf: 168, Tf: 4.4, Tw: 4.4, A: 2277, Ix: 7.82e6, Iy: 7.82e6, Sx: 92.9e3, Zx: 121.6e3, J: 15.65e6, Weight: 19.3},
	// AISC channels and angles.
	{ID: "C200X17", Type: TypeChannel, Catalog: CatalogAISC, D: 203, Bf: 57, Tf: 9.9, Tw: 5.6, A: 2174, Ix: 13.5e6, Iy: 0.545e6, Sx: 133e3, Zx: 158e3, J: 54.1e3, Weight: 17.1},
	{ID: "C250X30", Type: TypeChannel, Catalog: CatalogAISC, D: 254, Bf: 70, Tf: 11.1, Tw: 9.6, A: 3787, Ix: 32.8e6, Iy: 1.17e6, Sx: 259e3, Zx: 316e3, J: 153e3, Weight: 29.8},
	{ID: "L102X102X9.5", Type: TypeAngle, Catalog: CatalogAISC, D: 102, Bf: 102, Tf: 9.5, Tw: 9.5, A: 1845, Ix: 1.81e6, Iy: 1.81e6, Sx: 24.9e3, Zx: 40.6e3, J: 18.0e3, Weight: 14.6},
	// Chilean welded beams (NCh 427 IN series).
	{ID: "IN250X32.6", Type: TypeW, Catalog: CatalogChilean, D: 250, Bf: 150, Tf: 10, Tw: 6, A: 4380, Ix: 48.3e6, Iy: 5.63e6, Sx: 386e3, Zx: 428e3, J: 120e3, Weight: 32.6},
	{ID: "IN300X41.3", Type: TypeW, Catalog: CatalogChilean, D: 300, Bf: 150, Tf: 12, Tw: 6, A: 5260, Ix: 81.1e6, Iy: 6.75e6, Sx: 541e3, Zx: 601e3, J: 190e3, Weight: 41.3},
	{ID: "IN350X49.3", Type: TypeW, Catalog: CatalogChilean, D: 350, Bf: 175, Tf: 12, Tw: 7, A: 6280, Ix: 131e6, Iy: 10.7e6, Sx: 749e3, Zx: 833e3, J: 230e3, Weight: 49.3},
}

var sectionsByID = make(map[string]int, len(sections))

func init() {
	for i := range sections {
		s := &sections[i]
		if s.A <= 0 || s.Ix <= 0 || s.Iy <= 0 {
			panic(fmt.Sprintf("catalog: section %s has non-positive A/Ix/Iy", s.ID))
		}
		s.Rx = math.Sqrt(s.Ix / s.A)
		s.Ry = math.Sqrt(s.Iy / s.A)
		sectionsByID[strings.ToUpper(s.ID)] = i
	}
}

// SectionByID looks a profile up by identifier (case-insensitive).
func SectionByID(id string) (Section, error) {
	i, ok := sectionsByID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Section{}, errs.NotFound("section", id)
	}
	return sections[i], nil
}

// Sections returns up to limit profiles, optionally filtered by type and
// catalog origin. Empty strings match everything.
func Sections(sectionType, catalogName string, limit int) []Section {
	if limit <= 0 {
		limit = len(sections)
	}
	out := make([]Section, 0, limit)
	for _, s := range sections {
		if sectionType != "" && s.Type != sectionType {
			continue
		}
		if catalogName != "" && s.Catalog != catalogName {
			continue
		}
		out = append(out, s)
		if len(out) >= limit {
			break
		}
	}
	return out
}

// SearchSections matches profile names containing the query (case-insensitive).
func SearchSections(query, catalogName string) []Section {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []Section
	for _, s := range sections {
		if catalogName != "" && s.Catalog != catalogName {
			continue
		}
		if strings.Contains(strings.ToUpper(s.ID), q) {
			out = append(out, s)
		}
	}
	return out
}

// SectionFilter holds optional bounds for the advanced search. Nil means
// unconstrained.
type SectionFilter struct {
	Type      string
	Catalog   string
	DMin      *float64
	DMax      *float64
	WeightMin *float64
	WeightMax *float64
	IxMin     *float64
	IyMin     *float64
	ZxMin     *float64
	RxMin     *float64
	RyMin     *float64
	Limit     int
}

// FilterSections applies every bound in f and returns matches sorted by
// weight ascending.
func FilterSections(f SectionFilter) []Section {
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	var out []Section
	for _, s := range sections {
		if f.Type != "" && s.Type != f.Type {
			continue
		}
		if f.Catalog != "" && s.Catalog != f.Catalog {
			continue
		}
		if f.DMin != nil && s.D < *f.DMin {
			continue
		}
		if f.DMax != nil && s.D > *f.DMax {
			continue
		}
		if f.WeightMin != nil && s.Weight < *f.WeightMin {
			continue
		}
		if f.WeightMax != nil && s.Weight > *f.WeightMax {
			continue
		}
		if f.IxMin != nil && s.Ix < *f.IxMin {
			continue
		}
		if f.IyMin != nil && s.Iy < *f.IyMin {
			continue
		}
		if f.ZxMin != nil && s.Zx < *f.ZxMin {
			continue
		}
		if f.RxMin != nil && s.Rx < *f.RxMin {
			continue
		}
		if f.RyMin != nil && s.Ry < *f.RyMin {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
