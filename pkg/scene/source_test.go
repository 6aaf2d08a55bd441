package scene

import (
	"math"
	"testing"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

func TestSource_SingleRayDefaults(t *testing.T) {
	s := Source{Origin: core.NewVec2(10, 20), Angle: math.Pi / 2}

	rays := s.Rays()
	if len(rays) != 1 {
		t.Fatalf("got %d rays, expected 1", len(rays))
	}
	ray := rays[0]
	if ray.Origin != s.Origin {
		t.Errorf("origin %v, expected %v", ray.Origin, s.Origin)
	}
	if math.Abs(ray.Direction.X) > 1e-12 || math.Abs(ray.Direction.Y-1) > 1e-12 {
		t.Errorf("direction %v, expected (0, 1)", ray.Direction)
	}
	if ray.Intensity != 1.0 {
		t.Errorf("intensity %f, expected 1.0", ray.Intensity)
	}
	if ray.Polarization != nil {
		t.Error("default source should be unpolarized")
	}
}

func TestSource_ApertureSpacing(t *testing.T) {
	s := Source{Origin: core.NewVec2(0, 0), Angle: 0, Aperture: 10, RayCount: 5}

	rays := s.Rays()
	if len(rays) != 5 {
		t.Fatalf("got %d rays, expected 5", len(rays))
	}

	// Evenly spaced across the aperture, perpendicular to the beam axis
	for i, ray := range rays {
		expected := -5 + 2.5*float64(i)
		if math.Abs(ray.Origin.Y-expected) > 1e-12 {
			t.Errorf("ray %d origin y = %f, expected %f", i, ray.Origin.Y, expected)
		}
		if math.Abs(ray.Origin.X) > 1e-12 {
			t.Errorf("ray %d origin x = %f, expected 0", i, ray.Origin.X)
		}
	}
}

func TestSource_AngularSpread(t *testing.T) {
	spread := 30 * math.Pi / 180
	s := Source{Origin: core.NewVec2(0, 0), Angle: 0, RayCount: 3, Spread: spread}

	rays := s.Rays()
	angles := make([]float64, len(rays))
	for i, ray := range rays {
		angles[i] = math.Atan2(ray.Direction.Y, ray.Direction.X)
	}

	expected := []float64{-spread / 2, 0, spread / 2}
	for i := range angles {
		if math.Abs(angles[i]-expected[i]) > 1e-12 {
			t.Errorf("ray %d at angle %f, expected %f", i, angles[i], expected[i])
		}
	}
}

func TestSource_UnitDirections(t *testing.T) {
	s := Source{Origin: core.NewVec2(0, 0), Angle: 1.1, RayCount: 7, Spread: 0.5, Aperture: 3}
	for i, ray := range s.Rays() {
		if math.Abs(ray.Direction.Length()-1) > 1e-12 {
			t.Errorf("ray %d direction not unit length: %f", i, ray.Direction.Length())
		}
	}
}

func TestSource_PolarizationDescriptors(t *testing.T) {
	cases := []struct {
		kind    PolarizationKind
		q, u, v float64
	}{
		{Horizontal, 1, 0, 0},
		{Vertical, -1, 0, 0},
		{Diagonal, 0, 1, 0},
		{Circular, 0, 0, 1},
	}

	for _, tc := range cases {
		s := Source{RayCount: 1, Polarization: tc.kind}
		pol := s.Rays()[0].Polarization
		if pol == nil {
			t.Fatalf("%s: no polarization", tc.kind)
		}
		i, q, u, v := pol.Stokes()
		if math.Abs(i-1) > 1e-12 {
			t.Errorf("%s: I = %f, expected 1", tc.kind, i)
		}
		if math.Abs(q-tc.q) > 1e-12 || math.Abs(u-tc.u) > 1e-12 || math.Abs(v-tc.v) > 1e-12 {
			t.Errorf("%s: (Q,U,V) = (%f,%f,%f), expected (%f,%f,%f)",
				tc.kind, q, u, v, tc.q, tc.u, tc.v)
		}
	}
}

func TestSource_CustomJonesNormalized(t *testing.T) {
	s := Source{
		RayCount:     1,
		Polarization: CustomJones,
		Jones:        core.NewJones(complex(3, 0), complex(0, 4)),
	}

	pol := s.Rays()[0].Polarization
	if pol == nil {
		t.Fatal("no polarization")
	}
	if math.Abs(pol.Intensity()-1.0) > 1e-12 {
		t.Errorf("custom Jones not normalized to unit intensity: %f", pol.Intensity())
	}
}

func TestScene_SourceRayOrder(t *testing.T) {
	s := &Scene{
		Sources: []Source{
			{Origin: core.NewVec2(0, 0), RayCount: 2, Aperture: 4, Wavelength: 450},
			{Origin: core.NewVec2(0, 50), RayCount: 3, Aperture: 4, Wavelength: 650},
		},
	}

	rays := s.SourceRays()
	if len(rays) != 5 {
		t.Fatalf("got %d rays, expected 5", len(rays))
	}
	for i, ray := range rays {
		expected := 450.0
		if i >= 2 {
			expected = 650.0
		}
		if ray.Wavelength != expected {
			t.Errorf("ray %d wavelength %f, expected %f (source order broken)", i, ray.Wavelength, expected)
		}
	}
}
