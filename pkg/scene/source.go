package scene

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
)

// PolarizationKind names the initial polarization of a source's rays
type PolarizationKind string

const (
	Unpolarized PolarizationKind = "unpolarized"
	Horizontal  PolarizationKind = "horizontal"
	Vertical    PolarizationKind = "vertical"
	Diagonal    PolarizationKind = "diagonal" // linear at +45 degrees
	Circular    PolarizationKind = "circular" // left circular
	CustomJones PolarizationKind = "custom"
)

// Source emits a fan of rays from an aperture. Rays leave evenly spaced
// across the aperture (perpendicular to the beam axis) and evenly fanned
// across the angular spread, so repeated traces of the same source are
// bit-for-bit reproducible.
type Source struct {
	Origin       core.Vec2        // aperture center, mm
	Angle        float64          // beam axis, radians from +X
	Aperture     float64          // aperture width, mm
	RayCount     int              // rays emitted per trace
	Spread       float64          // full angular spread, radians
	Wavelength   float64          // nm, 0 = unspecified
	Polarization PolarizationKind // initial polarization descriptor
	Jones        *core.Jones      // custom initial state (CustomJones only)
}

// Rays generates the source's rays in emission order. Each ray carries
// intensity 1.0 and the source's initial polarization state.
func (s *Source) Rays() []core.Ray {
	count := s.RayCount
	if count <= 0 {
		count = 1
	}

	axis := core.AngleVec2(s.Angle)
	across := axis.Perp()

	rays := make([]core.Ray, 0, count)
	for i := 0; i < count; i++ {
		// Evenly spaced position and fan fraction in [-0.5, 0.5]
		frac := 0.0
		if count > 1 {
			frac = float64(i)/float64(count-1) - 0.5
		}

		origin := s.Origin.Add(across.Multiply(frac * s.Aperture))
		dir := core.AngleVec2(s.Angle + frac*s.Spread)

		rays = append(rays, core.Ray{
			Origin:       origin,
			Direction:    dir,
			Wavelength:   s.Wavelength,
			Intensity:    1.0,
			Polarization: s.initialJones(),
		})
	}

	return rays
}

// initialJones builds the Jones vector for one emitted ray, or nil for
// unpolarized light
func (s *Source) initialJones() *core.Jones {
	switch s.Polarization {
	case Horizontal:
		return core.NewLinearJones(0, 1.0)
	case Vertical:
		return core.NewLinearJones(math.Pi/2, 1.0)
	case Diagonal:
		return core.NewLinearJones(math.Pi/4, 1.0)
	case Circular:
		return core.NewCircularJones(1.0, +1)
	case CustomJones:
		if s.Jones == nil {
			return nil
		}
		return s.Jones.Normalize(1.0)
	}
	return nil
}
