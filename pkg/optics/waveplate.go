package optics

import (
	"math/cmplx"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformWaveplate applies a phase retardation between the field
// components along the fast axis and the orthogonal slow axis, via the
// Jones matrix R(-theta) * diag(1, e^{i*delta}) * R(theta).
//
// Direction matters: the effective retardation is +PhaseShift when the
// ray travels in the element's forward sense and -PhaseShift when it
// travels backward. The sense is derived purely from geometry at the hit,
// the sign of dot(direction, forward normal); no per-element state is
// kept. Half-wave plates are direction-invariant since e^{i*pi} equals
// e^{-i*pi}; quarter-wave plates flip circular handedness when reversed.
func (e *Element) transformWaveplate(in core.Ray, hit geometry.Hit) []core.Ray {
	delta := e.PhaseShift
	if in.Direction.Dot(e.Normal()) > 0 {
		delta = -delta
	}

	pol := in.Polarization
	if pol != nil {
		pol = ApplyRetarder(pol, e.FastAxis, delta)
	}

	return []core.Ray{in.Child(hit.Point, in.Direction, in.Intensity, pol)}
}

// ApplyRetarder applies the retarder Jones matrix
// R(-theta) * diag(1, e^{i*delta}) * R(theta) to a field, where theta is
// the fast-axis angle. The transform is unitary, so intensity is
// preserved.
func ApplyRetarder(j *core.Jones, theta, delta float64) *core.Jones {
	fast := core.AngleVec2(theta)
	slow := fast.Perp()

	cf := j.Project(fast)
	cs := j.Project(slow) * cmplx.Exp(complex(0, delta))

	return &core.Jones{
		Ex: cf*complex(fast.X, 0) + cs*complex(slow.X, 0),
		Ey: cf*complex(fast.Y, 0) + cs*complex(slow.Y, 0),
	}
}
