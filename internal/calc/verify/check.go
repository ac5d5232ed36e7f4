// Package verify implements AISC 360 member verification: flexure (Chapter F),
// shear (Chapter G), compression (Chapter E), combined axial-flexure
// interaction (Chapter H) and serviceability deflection limits.
//
// Units follow the analysis convention throughout: forces in kN, moments in
// kN·m, lengths in m at the API, stresses in MPa and section geometry in mm
// internally. All functions are pure and safe for concurrent use.
package verify

// ratioTol keeps a demand exactly at capacity (ratio == 1.0) passing despite
// floating-point noise.
const ratioTol = 1e-9

func pass(ratio float64) bool { return ratio <= 1.0+ratioTol }
