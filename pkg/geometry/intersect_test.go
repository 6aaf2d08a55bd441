package geometry

import (
	"math"
	"testing"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

func TestIntersect_Hit(t *testing.T) {
	origin := core.NewVec2(0, 0)
	dir := core.NewVec2(1, 0)
	a := core.NewVec2(10, -5)
	b := core.NewVec2(10, 5)

	hit, ok := Intersect(origin, dir, a, b)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.T-10) > 1e-12 {
		t.Errorf("T = %f, expected 10", hit.T)
	}
	if math.Abs(hit.Point.X-10) > 1e-12 || math.Abs(hit.Point.Y) > 1e-12 {
		t.Errorf("Point = %v, expected (10, 0)", hit.Point)
	}
	// Standing at A facing B (up), the normal points right (+X)
	if math.Abs(hit.Normal.X-1) > 1e-12 || math.Abs(hit.Normal.Y) > 1e-12 {
		t.Errorf("Normal = %v, expected (1, 0)", hit.Normal)
	}
}

func TestIntersect_Parallel(t *testing.T) {
	origin := core.NewVec2(0, 0)
	dir := core.NewVec2(0, 1)
	a := core.NewVec2(5, -5)
	b := core.NewVec2(5, 5)

	if _, ok := Intersect(origin, dir, a, b); ok {
		t.Error("parallel ray should miss")
	}
}

func TestIntersect_Behind(t *testing.T) {
	origin := core.NewVec2(0, 0)
	dir := core.NewVec2(-1, 0)
	a := core.NewVec2(10, -5)
	b := core.NewVec2(10, 5)

	if _, ok := Intersect(origin, dir, a, b); ok {
		t.Error("segment behind the origin should miss")
	}
}

func TestIntersect_OutsideExtent(t *testing.T) {
	origin := core.NewVec2(0, 10)
	dir := core.NewVec2(1, 0)
	a := core.NewVec2(10, -5)
	b := core.NewVec2(10, 5)

	if _, ok := Intersect(origin, dir, a, b); ok {
		t.Error("ray passing beyond the segment end should miss")
	}
}

func TestIntersect_DegenerateSegment(t *testing.T) {
	origin := core.NewVec2(0, 0)
	dir := core.NewVec2(1, 0)
	p := core.NewVec2(10, 0)

	if _, ok := Intersect(origin, dir, p, p); ok {
		t.Error("zero-length segment should never intersect")
	}
}

func TestIntersect_OnSegmentOrigin(t *testing.T) {
	// A ray spawned on the segment must not re-hit it at t = 0
	origin := core.NewVec2(10, 0)
	dir := core.NewVec2(1, 0)
	a := core.NewVec2(10, -5)
	b := core.NewVec2(10, 5)

	if _, ok := Intersect(origin, dir, a, b); ok {
		t.Error("ray starting on the segment should not self-intersect")
	}
}

func TestIntersect_Oblique(t *testing.T) {
	origin := core.NewVec2(0, 0)
	dir := core.NewVec2(1, 1).Normalize()
	a := core.NewVec2(0, 6)
	b := core.NewVec2(6, 0)

	hit, ok := Intersect(origin, dir, a, b)
	if !ok {
		t.Fatal("expected a hit")
	}
	if math.Abs(hit.Point.X-3) > 1e-12 || math.Abs(hit.Point.Y-3) > 1e-12 {
		t.Errorf("Point = %v, expected (3, 3)", hit.Point)
	}
	if math.Abs(hit.T-3*math.Sqrt2) > 1e-12 {
		t.Errorf("T = %f, expected %f", hit.T, 3*math.Sqrt2)
	}
}

func TestSegmentNormal_Unit(t *testing.T) {
	n := SegmentNormal(core.NewVec2(1, 2), core.NewVec2(7, -3))
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("normal length %f, expected 1", n.Length())
	}
	// Orthogonal to the tangent
	tangent := core.NewVec2(6, -5)
	if math.Abs(n.Dot(tangent)) > 1e-12 {
		t.Errorf("normal not orthogonal to tangent: dot = %f", n.Dot(tangent))
	}
}
