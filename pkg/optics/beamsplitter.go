package optics

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformBeamsplitter splits the ray into a transmitted child that
// continues straight and a reflected child mirrored about the normal,
// with powers scaled by the element's split fractions. The reflected
// field picks up a pi phase flip (sign change), the standard convention
// for reflection off the coated face.
func (e *Element) transformBeamsplitter(in core.Ray, hit geometry.Hit) []core.Ray {
	children := make([]core.Ray, 0, 2)

	if t := in.Intensity * e.SplitT; t >= BranchEpsilon {
		var pol *core.Jones
		if in.Polarization != nil {
			pol = in.Polarization.Scale(complex(math.Sqrt(e.SplitT), 0))
		}
		children = append(children, in.Child(hit.Point, in.Direction, t, pol))
	}

	if r := in.Intensity * e.SplitR; r >= BranchEpsilon {
		var pol *core.Jones
		if in.Polarization != nil {
			pol = in.Polarization.Scale(complex(-math.Sqrt(e.SplitR), 0))
		}
		reflected := in.Direction.Reflect(hit.Normal)
		children = append(children, in.Child(hit.Point, reflected, r, pol))
	}

	return children
}
