package optics

import (
	"math"
	"testing"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

func TestLens_ParallelRaysConverge(t *testing.T) {
	lens := NewLens(core.NewVec2(0, -20), core.NewVec2(0, 20), 50)

	// Parallel rays at different heights all cross the axis at the focal
	// point, 50mm behind the lens
	for _, height := range []float64{-8, -2, 3, 10} {
		ray := core.NewRay(core.NewVec2(-30, height), core.NewVec2(1, 0))
		children := lens.Transform(ray, hitOn(t, &lens, ray))
		if len(children) != 1 {
			t.Fatalf("height %f: got %d children, expected 1", height, len(children))
		}

		out := children[0]
		// Distance along x to reach y = 0
		if math.Abs(out.Direction.X) < 1e-12 {
			t.Fatalf("height %f: output direction parallel to lens", height)
		}
		crossing := -out.Origin.Y / (out.Direction.Y / out.Direction.X)
		if math.Abs(crossing-50) > 1e-9 {
			t.Errorf("height %f: axis crossing at x = %f, expected 50", height, crossing)
		}
	}
}

func TestLens_AxialRayUndeviated(t *testing.T) {
	lens := NewLens(core.NewVec2(0, -20), core.NewVec2(0, 20), 50)
	ray := core.NewRay(core.NewVec2(-30, 0), core.NewVec2(1, 0))

	children := lens.Transform(ray, hitOn(t, &lens, ray))
	dir := children[0].Direction
	if math.Abs(dir.X-1) > 1e-12 || math.Abs(dir.Y) > 1e-12 {
		t.Errorf("axial ray deviated: %v", dir)
	}
}

func TestLens_DivergingLens(t *testing.T) {
	lens := NewLens(core.NewVec2(0, -20), core.NewVec2(0, 20), -50)
	ray := core.NewRay(core.NewVec2(-30, 10), core.NewVec2(1, 0))

	children := lens.Transform(ray, hitOn(t, &lens, ray))
	// A diverging lens bends the ray away from the axis
	if children[0].Direction.Y <= 0 {
		t.Errorf("diverging lens bent ray toward the axis: %v", children[0].Direction)
	}
}

func TestLens_PreservesIntensityAndPolarization(t *testing.T) {
	lens := NewLens(core.NewVec2(0, -20), core.NewVec2(0, 20), 50)
	ray := core.NewRay(core.NewVec2(-30, 5), core.NewVec2(1, 0))
	ray.Intensity = 0.7
	ray.Polarization = core.NewLinearJones(math.Pi/3, 0.7)

	children := lens.Transform(ray, hitOn(t, &lens, ray))
	if children[0].Intensity != 0.7 {
		t.Errorf("intensity %f, expected 0.7", children[0].Intensity)
	}
	if children[0].Polarization != ray.Polarization {
		t.Error("polarization should pass through a lens untouched")
	}
}

func TestLens_ReverseDirection(t *testing.T) {
	// The thin-lens rule is symmetric: rays from the other side converge
	// at the mirror-image focal point
	lens := NewLens(core.NewVec2(0, -20), core.NewVec2(0, 20), 50)
	ray := core.NewRay(core.NewVec2(30, 6), core.NewVec2(-1, 0))

	children := lens.Transform(ray, hitOn(t, &lens, ray))
	out := children[0]
	crossing := -out.Origin.Y / (out.Direction.Y / out.Direction.X)
	if math.Abs(crossing-(-50)) > 1e-9 {
		t.Errorf("axis crossing at x = %f, expected -50", crossing)
	}
}
