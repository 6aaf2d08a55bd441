package geometry

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

const (
	// Epsilon guards near-parallel rays and near-degenerate segments
	Epsilon = 1e-9

	// MinHitDistance rejects self-intersection of a ray spawned on a segment
	MinHitDistance = 1e-6
)

// Hit describes a ray/segment intersection
type Hit struct {
	T      float64   // distance along the ray, in mm
	Point  core.Vec2 // intersection point
	Normal core.Vec2 // segment normal, fixed convention (see SegmentNormal)
}

// SegmentNormal returns the unit normal of segment A->B under the fixed
// convention: the tangent rotated so the normal points to the right of an
// observer standing at A facing B. For refractive interfaces this is the
// n1 side; for waveplates it is the forward sense.
func SegmentNormal(a, b core.Vec2) core.Vec2 {
	tangent := b.Subtract(a)
	return core.NewVec2(tangent.Y, -tangent.X).Normalize()
}

// Intersect tests a ray against the finite segment A->B and returns the
// intersection with the smallest positive distance, or false if the ray
// misses. Misses include near-parallel lines, intersections outside the
// segment extent, hits behind the origin, and degenerate segments.
func Intersect(origin, dir, a, b core.Vec2) (Hit, bool) {
	seg := b.Subtract(a)
	if seg.LengthSquared() < Epsilon*Epsilon {
		return Hit{}, false
	}

	// Solve origin + t*dir == a + u*seg via 2D cross products
	denom := dir.Cross(seg)
	if math.Abs(denom) < Epsilon {
		return Hit{}, false // parallel, or grazing along the segment
	}

	ao := a.Subtract(origin)
	t := ao.Cross(seg) / denom
	u := ao.Cross(dir) / denom

	if t <= MinHitDistance || u < 0 || u > 1 {
		return Hit{}, false
	}

	return Hit{
		T:      t,
		Point:  origin.Add(dir.Multiply(t)),
		Normal: SegmentNormal(a, b),
	}, true
}
