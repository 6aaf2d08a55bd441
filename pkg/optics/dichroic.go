package optics

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// DefaultWavelength is assumed when a ray carries no wavelength and hits
// a wavelength-dependent element, in nm
const DefaultWavelength = 550.0

// Transmittance returns the dichroic's smooth transmitted power fraction
// T(lambda) for the given wavelength in nm. The transition is a smoothstep
// centered on the cutoff and spanning the transition width, so T is
// continuous rather than a hard step; exactly at the cutoff T = 0.5.
func (e *Element) Transmittance(wavelength float64) float64 {
	width := e.TransitionWidth
	var x float64
	if width < geometry.Epsilon {
		// Degenerate width collapses to a step with T=0.5 at the cutoff
		switch {
		case wavelength > e.Cutoff:
			x = 1
		case wavelength < e.Cutoff:
			x = 0
		default:
			x = 0.5
		}
	} else {
		x = (wavelength-e.Cutoff)/width + 0.5
		x = math.Max(0, math.Min(1, x))
		x = x * x * (3 - 2*x)
	}

	if e.Pass == Shortpass {
		return 1 - x
	}
	return x
}

// transformDichroic splits the ray by wavelength: the transmitted child
// continues straight with power fraction T(lambda), the reflected child
// mirrors about the normal with the remainder. Polarization state passes
// through unchanged on both branches.
func (e *Element) transformDichroic(in core.Ray, hit geometry.Hit) []core.Ray {
	wavelength := in.Wavelength
	if wavelength == 0 {
		wavelength = DefaultWavelength
	}
	frac := e.Transmittance(wavelength)

	children := make([]core.Ray, 0, 2)

	if t := in.Intensity * frac; t >= BranchEpsilon {
		var pol *core.Jones
		if in.Polarization != nil {
			pol = in.Polarization.Scale(complex(math.Sqrt(frac), 0))
		}
		children = append(children, in.Child(hit.Point, in.Direction, t, pol))
	}

	if r := in.Intensity * (1 - frac); r >= BranchEpsilon {
		var pol *core.Jones
		if in.Polarization != nil {
			pol = in.Polarization.Scale(complex(math.Sqrt(1-frac), 0))
		}
		reflected := in.Direction.Reflect(hit.Normal)
		children = append(children, in.Child(hit.Point, reflected, r, pol))
	}

	return children
}
