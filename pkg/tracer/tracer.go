package tracer

import (
	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
	"github.com/opticslab/go-beamtrace/pkg/optics"
)

const (
	// DefaultMaxEvents bounds interaction events per source ray's
	// descendant tree, guaranteeing termination in cyclic geometries
	DefaultMaxEvents = 80

	// MaxRayLength is how far an unobstructed ray is extended before its
	// path terminates, in mm (a 10 m bench)
	MaxRayLength = 10000.0
)

// lineage is one active branch of a source ray's descendant tree. Points
// holds the full polyline from the source origin, so a split copies the
// prefix into each child and the finished tree yields exactly one path
// per leaf branch.
type lineage struct {
	ray    core.Ray
	points []core.Vec2
}

// TraceRay traces one source ray's entire descendant tree against the
// element snapshot and returns the resulting paths in deterministic
// depth-first order (transmitted branch before reflected). The returned
// event count is the number of ray-element interactions consumed.
//
// maxEvents bounds the whole tree; once exhausted, remaining branches are
// emitted truncated in place. This is a designed termination policy for
// reflective cycles, not an error.
func TraceRay(elements []optics.Element, source core.Ray, maxEvents int) ([]core.RayPath, int) {
	if maxEvents <= 0 {
		maxEvents = DefaultMaxEvents
	}

	stack := []lineage{{ray: source, points: []core.Vec2{source.Origin}}}
	var paths []core.RayPath
	events := 0

	for len(stack) > 0 {
		ln := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if events >= maxEvents {
			paths = append(paths, finishPath(ln, ln.points, true))
			continue
		}

		hit, element := nearestHit(elements, ln.ray)
		if element == nil {
			// Nothing in the way: extend to the bench limit and terminate
			end := ln.ray.At(MaxRayLength)
			paths = append(paths, finishPath(ln, append(ln.points, end), false))
			continue
		}

		events++
		children := element.Transform(ln.ray, *hit)
		if len(children) == 0 {
			// Fully absorbed: the path ends at the element
			paths = append(paths, finishPath(ln, append(ln.points, hit.Point), false))
			continue
		}

		// Push children in reverse so the first (transmitted) branch is
		// traced first, keeping output order deterministic
		for i := len(children) - 1; i >= 0; i-- {
			pts := make([]core.Vec2, len(ln.points), len(ln.points)+2)
			copy(pts, ln.points)
			pts = append(pts, hit.Point)
			stack = append(stack, lineage{ray: children[i], points: pts})
		}
	}

	return paths, events
}

// nearestHit runs the ray against every element and returns the globally
// nearest valid intersection. Ties are broken by element declaration
// order (strict less-than keeps the first). Degenerate segments never
// intersect and are skipped inside geometry.Intersect.
func nearestHit(elements []optics.Element, ray core.Ray) (*geometry.Hit, *optics.Element) {
	var best *geometry.Hit
	var bestElement *optics.Element

	for i := range elements {
		hit, ok := geometry.Intersect(ray.Origin, ray.Direction, elements[i].A, elements[i].B)
		if !ok {
			continue
		}
		if best == nil || hit.T < best.T {
			h := hit
			best = &h
			bestElement = &elements[i]
		}
	}

	return best, bestElement
}

// finishPath seals a lineage into an immutable RayPath carrying the
// branch's terminal state
func finishPath(ln lineage, points []core.Vec2, truncated bool) core.RayPath {
	return core.RayPath{
		Points:       points,
		Wavelength:   ln.ray.Wavelength,
		Intensity:    ln.ray.Intensity,
		Polarization: ln.ray.Polarization,
		Truncated:    truncated,
	}
}
