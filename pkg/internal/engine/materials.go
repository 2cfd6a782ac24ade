package engine

import "strings"

// Material is the constant-coefficient medium used by the update equations.
// Conductivity is in engine units (c = eps0 = 1).
type Material struct {
	Name         string
	Epsilon      float64
	Conductivity float64
}

// Metals are modelled as lossy conductors; the values set the relative skin
// depth at the default resolution rather than reproduce a Drude fit.
var materials = map[string]Material{
	"au":     {Name: "Au", Epsilon: 1.0, Conductivity: 400},
	"cr":     {Name: "Cr", Epsilon: 1.0, Conductivity: 80},
	"w":      {Name: "W", Epsilon: 1.0, Conductivity: 180},
	"sio2":   {Name: "SiO2", Epsilon: 2.1316, Conductivity: 0},
	"vacuum": {Name: "Vacuum", Epsilon: 1.0, Conductivity: 0},
}

// LookupMaterial resolves a material name case-insensitively.
func LookupMaterial(name string) (Material, bool) {
	m, ok := materials[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}
