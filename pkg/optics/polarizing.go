package optics

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformPolarizing splits the ray by polarization component. The
// transmission axis is an absolute lab-frame angle, independent of the
// segment's own orientation (which only sets the splitting geometry).
// The incoming field is projected onto the orthonormal p-axis
// (cos a, sin a) and s-axis (-sin a, cos a); the p component transmits
// straight through, the s component reflects with a pi phase flip.
// Energy is conserved exactly because the axes are orthonormal.
//
// An unpolarized ray splits 50/50 and each branch leaves fully polarized
// along its axis.
func (e *Element) transformPolarizing(in core.Ray, hit geometry.Hit) []core.Ray {
	sin, cos := math.Sincos(e.Axis)
	pAxis := core.NewVec2(cos, sin)
	sAxis := core.NewVec2(-sin, cos)

	var cp, cs complex128
	if in.Polarization != nil {
		cp = in.Polarization.Project(pAxis)
		cs = in.Polarization.Project(sAxis)
	} else {
		half := complex(math.Sqrt(in.Intensity/2), 0)
		cp, cs = half, half
	}

	children := make([]core.Ray, 0, 2)

	// Transmitted branch: scalar p component re-expanded along the p-axis
	iT := real(cp)*real(cp) + imag(cp)*imag(cp)
	if iT >= BranchEpsilon {
		pol := &core.Jones{
			Ex: cp * complex(pAxis.X, 0),
			Ey: cp * complex(pAxis.Y, 0),
		}
		children = append(children, in.Child(hit.Point, in.Direction, iT, pol))
	}

	// Reflected branch: s component along the s-axis, pi phase flip
	iR := real(cs)*real(cs) + imag(cs)*imag(cs)
	if iR >= BranchEpsilon {
		pol := &core.Jones{
			Ex: -cs * complex(sAxis.X, 0),
			Ey: -cs * complex(sAxis.Y, 0),
		}
		reflected := in.Direction.Reflect(hit.Normal)
		children = append(children, in.Child(hit.Point, reflected, iR, pol))
	}

	return children
}
