package optics

import (
	"math"
	"testing"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

func TestBeamsplitter_FiftyFifty(t *testing.T) {
	// 45 degree splitter: transmitted continues straight, reflected
	// turns 90 degrees, each with half the power
	bs := NewBeamsplitter(core.NewVec2(5, -5), core.NewVec2(15, 5), 0.5, 0.5)
	ray := core.NewRay(core.NewVec2(0, 0), core.NewVec2(1, 0))

	children := bs.Transform(ray, hitOn(t, &bs, ray))
	if len(children) != 2 {
		t.Fatalf("got %d children, expected 2", len(children))
	}

	transmitted, reflected := children[0], children[1]
	if math.Abs(transmitted.Direction.X-1) > 1e-12 || math.Abs(transmitted.Direction.Y) > 1e-12 {
		t.Errorf("transmitted direction %v, expected (1, 0)", transmitted.Direction)
	}
	if math.Abs(reflected.Direction.X) > 1e-12 || math.Abs(reflected.Direction.Y-1) > 1e-12 {
		t.Errorf("reflected direction %v, expected (0, 1)", reflected.Direction)
	}
	if math.Abs(transmitted.Intensity-0.5) > 1e-12 {
		t.Errorf("transmitted intensity %f, expected 0.5", transmitted.Intensity)
	}
	if math.Abs(reflected.Intensity-0.5) > 1e-12 {
		t.Errorf("reflected intensity %f, expected 0.5", reflected.Intensity)
	}
}

func TestBeamsplitter_EnergyConservation(t *testing.T) {
	ratios := []struct{ splitT, splitR float64 }{
		{0.5, 0.5}, {0.7, 0.3}, {0.9, 0.1}, {0.3, 0.7},
	}

	for _, ratio := range ratios {
		bs := NewBeamsplitter(core.NewVec2(5, -5), core.NewVec2(15, 5), ratio.splitT, ratio.splitR)
		ray := core.NewRay(core.NewVec2(0, 0), core.NewVec2(1, 0))
		ray.Intensity = 0.85
		ray.Polarization = core.NewLinearJones(math.Pi/5, 0.85)

		children := bs.Transform(ray, hitOn(t, &bs, ray))

		var total, jonesTotal float64
		for _, child := range children {
			total += child.Intensity
			jonesTotal += child.Polarization.Intensity()
		}
		if math.Abs(total-0.85) > 1e-6 {
			t.Errorf("split %v: child intensities sum to %f, expected 0.85", ratio, total)
		}
		if math.Abs(jonesTotal-0.85) > 1e-6 {
			t.Errorf("split %v: Jones norms sum to %f, expected 0.85", ratio, jonesTotal)
		}
	}
}

func TestBeamsplitter_ReflectedPhaseFlip(t *testing.T) {
	bs := NewBeamsplitter(core.NewVec2(5, -5), core.NewVec2(15, 5), 0.5, 0.5)
	ray := core.NewRay(core.NewVec2(0, 0), core.NewVec2(1, 0))
	ray.Polarization = core.NewLinearJones(0, 1.0) // Ex = 1

	children := bs.Transform(ray, hitOn(t, &bs, ray))
	transmitted, reflected := children[0], children[1]

	if real(transmitted.Polarization.Ex) <= 0 {
		t.Errorf("transmitted field flipped sign: %v", transmitted.Polarization.Ex)
	}
	if real(reflected.Polarization.Ex) >= 0 {
		t.Errorf("reflected field missing pi phase flip: %v", reflected.Polarization.Ex)
	}
}

func TestBeamsplitter_TinyBranchOmitted(t *testing.T) {
	bs := NewBeamsplitter(core.NewVec2(5, -5), core.NewVec2(15, 5), 1.0, 1e-12)
	ray := core.NewRay(core.NewVec2(0, 0), core.NewVec2(1, 0))

	children := bs.Transform(ray, hitOn(t, &bs, ray))
	if len(children) != 1 {
		t.Fatalf("got %d children, expected the near-zero branch omitted", len(children))
	}
}
