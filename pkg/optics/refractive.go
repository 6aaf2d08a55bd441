package optics

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformRefractive applies Snell's law at the index boundary. Side
// assignment follows the segment convention: standing at A facing B, n1
// is the medium to the right (the side the forward normal points into),
// n2 to the left. Past the critical angle the ray totally internally
// reflects; otherwise a single refracted child leaves with power and
// polarization unchanged. Partial Fresnel reflection at sub-critical
// angles is deliberately not modeled.
func (e *Element) transformRefractive(in core.Ray, hit geometry.Hit) []core.Ray {
	// Face the normal against the incoming ray and pick the index ratio
	// for the side the ray arrives from
	normal := hit.Normal
	ratio := e.N1 / e.N2
	if in.Direction.Dot(normal) > 0 {
		// Arriving from the n2 side
		normal = normal.Negate()
		ratio = e.N2 / e.N1
	}

	cosTheta := math.Min(-in.Direction.Dot(normal), 1.0)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	// Total internal reflection; exactly critical or grazing incidence
	// clamps to this branch rather than risking a domain error
	if ratio*sinTheta >= 1.0 {
		reflected := in.Direction.Reflect(normal)
		return []core.Ray{in.Child(hit.Point, reflected, in.Intensity, in.Polarization)}
	}

	perp := in.Direction.Add(normal.Multiply(cosTheta)).Multiply(ratio)
	parallel := normal.Multiply(-math.Sqrt(math.Abs(1.0 - perp.LengthSquared())))
	refracted := perp.Add(parallel)

	return []core.Ray{in.Child(hit.Point, refracted, in.Intensity, in.Polarization)}
}
