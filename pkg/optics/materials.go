package optics

import "strings"

// DefaultRefractiveIndex is used when a material name is not in the
// catalog
const DefaultRefractiveIndex = 1.5

// refractiveIndices maps material names to indices at visible wavelengths
var refractiveIndices = map[string]float64{
	"air":          1.0,
	"vacuum":       1.0,
	"water":        1.333,
	"bk7":          1.5168,
	"fused-silica": 1.458,
	"sapphire":     1.768,
	"diamond":      2.417,
}

// LookupRefractiveIndex resolves a material name to its refractive index.
// Unknown names fall back to DefaultRefractiveIndex with ok=false so the
// caller can surface a warning; the trace itself proceeds.
func LookupRefractiveIndex(name string) (index float64, ok bool) {
	if index, ok := refractiveIndices[strings.ToLower(strings.TrimSpace(name))]; ok {
		return index, true
	}
	return DefaultRefractiveIndex, false
}
