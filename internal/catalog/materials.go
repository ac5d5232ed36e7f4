package catalog

import (
	"strings"

	"github.com/kcortes765/STRUCT-CALC/internal/errs"
)

// Material is an immutable steel grade record. Strengths and moduli in MPa,
// density in kg/m³, thermal expansion in 1/°C.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Fy          float64 `json:"Fy"`
	Fu          float64 `json:"Fu"`
	E           float64 `json:"E"`
	G           float64 `json:"G"`
	Nu          float64 `json:"nu"`
	Rho         float64 `json:"rho"`
	Alpha       float64 `json:"alpha"`
}

var materials = []Material{
	{ID: "A36", Name: "ASTM A36", Description: "Carbon structural steel", Fy: 250, Fu: 400, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A572_GR50", Name: "ASTM A572 Grade 50", Description: "High-strength low-alloy steel", Fy: 345, Fu: 450, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A992", Name: "ASTM A992", Description: "Steel for W shapes", Fy: 345, Fu: 450, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A500_GR_B", Name: "ASTM A500 Grade B", Description: "Steel for structural tubing", Fy: 290, Fu: 400, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A500_GR_C", Name: "ASTM A500 Grade C", Description: "High-strength structural tubing", Fy: 317, Fu: 427, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A42_27ES", Name: "A42-27ES (NCh 203)", Description: "Chilean structural steel (A36 equivalent)", Fy: 270, Fu: 420, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
	{ID: "A52_34ES", Name: "A52-34ES (NCh 203)", Description: "Chilean high-strength structural steel", Fy: 340, Fu: 520, E: 200000, G: 77000, Nu: 0.3, Rho: 7850, Alpha: 1.2e-5},
}

var materialsByID = make(map[string]int, len(materials))

func init() {
	for i, m := range materials {
		materialsByID[strings.ToUpper(m.ID)] = i
	}
}

// MaterialByID looks a steel grade up by identifier (case-insensitive).
func MaterialByID(id string) (Material, error) {
	i, ok := materialsByID[strings.ToUpper(strings.TrimSpace(id))]
	if !ok {
		return Material{}, errs.NotFound("material", id)
	}
	return materials[i], nil
}

// Materials returns every available steel grade.
func Materials() []Material {
	out := make([]Material, len(materials))
	copy(out, materials)
	return out
}
