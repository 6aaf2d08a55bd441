package optics

import (
	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformLens redirects the ray using the thin-lens ray-transfer rule:
// the slope relative to the optical axis changes by -h/f, where h is the
// hit height above the lens center and f the effective focal length.
// Power and polarization pass through unchanged.
func (e *Element) transformLens(in core.Ray, hit geometry.Hit) []core.Ray {
	axis := e.Tangent()

	// Orient the lens normal along the propagation direction so the rule
	// works for rays arriving from either side
	normal := hit.Normal
	if in.Direction.Dot(normal) < 0 {
		normal = normal.Negate()
	}

	h := hit.Point.Subtract(e.Center()).Dot(axis)

	along := in.Direction.Dot(normal)
	if along < geometry.Epsilon {
		// Grazing incidence along the lens plane, pass straight through
		return []core.Ray{in.Child(hit.Point, in.Direction, in.Intensity, in.Polarization)}
	}

	slope := in.Direction.Dot(axis) / along
	slope -= h / e.FocalLength

	out := normal.Add(axis.Multiply(slope)).Normalize()
	return []core.Ray{in.Child(hit.Point, out, in.Intensity, in.Polarization)}
}
