package core

import (
	"math"
	"math/cmplx"
)

// Jones represents the polarization state of a fully polarized field as a
// two-component complex amplitude vector [Ex, Ey]. The squared norm
// |Ex|^2 + |Ey|^2 equals the carrying ray's intensity.
type Jones struct {
	Ex, Ey complex128
}

// NewJones creates a Jones vector from complex field amplitudes
func NewJones(ex, ey complex128) *Jones {
	return &Jones{Ex: ex, Ey: ey}
}

// NewLinearJones creates a linearly polarized Jones vector at the given
// lab-frame angle (radians from +X), carrying the given intensity
func NewLinearJones(angle, intensity float64) *Jones {
	amp := math.Sqrt(intensity)
	sin, cos := math.Sincos(angle)
	return &Jones{Ex: complex(amp*cos, 0), Ey: complex(amp*sin, 0)}
}

// NewCircularJones creates a circularly polarized Jones vector with the
// given intensity. Positive handedness is left circular ([1, i]/sqrt2 in
// this convention), negative is right circular.
func NewCircularJones(intensity float64, handedness int) *Jones {
	amp := math.Sqrt(intensity / 2)
	if handedness < 0 {
		return &Jones{Ex: complex(amp, 0), Ey: complex(0, -amp)}
	}
	return &Jones{Ex: complex(amp, 0), Ey: complex(0, amp)}
}

// Intensity returns the total power carried by the field, |Ex|^2 + |Ey|^2
func (j *Jones) Intensity() float64 {
	return real(j.Ex)*real(j.Ex) + imag(j.Ex)*imag(j.Ex) +
		real(j.Ey)*real(j.Ey) + imag(j.Ey)*imag(j.Ey)
}

// Scale returns the Jones vector with both amplitudes multiplied by the
// complex factor f. Intensity scales by |f|^2.
func (j *Jones) Scale(f complex128) *Jones {
	return &Jones{Ex: j.Ex * f, Ey: j.Ey * f}
}

// Normalize returns the Jones vector rescaled so its intensity equals the
// given target. A zero vector is returned unchanged.
func (j *Jones) Normalize(intensity float64) *Jones {
	cur := j.Intensity()
	if cur == 0 {
		return &Jones{}
	}
	s := complex(math.Sqrt(intensity/cur), 0)
	return j.Scale(s)
}

// Stokes returns the Stokes parameters (I, Q, U, V) of the field.
// I is total power, Q horizontal-vs-vertical, U +45-vs-45, V circular.
func (j *Jones) Stokes() (i, q, u, v float64) {
	ix := real(j.Ex)*real(j.Ex) + imag(j.Ex)*imag(j.Ex)
	iy := real(j.Ey)*real(j.Ey) + imag(j.Ey)*imag(j.Ey)
	cross := j.Ex * cmplx.Conj(j.Ey)
	i = ix + iy
	q = ix - iy
	u = 2 * real(cross)
	v = -2 * imag(cross)
	return i, q, u, v
}

// DegreeOfPolarization returns sqrt(Q^2+U^2+V^2)/I, which is 1.0 for any
// pure Jones state. Returns 0 for a zero field.
func (j *Jones) DegreeOfPolarization() float64 {
	i, q, u, v := j.Stokes()
	if i <= 0 {
		return 0
	}
	return math.Sqrt(q*q+u*u+v*v) / i
}

// LinearAngle returns the orientation of the linear polarization component
// in radians from +X, in [-pi/2, pi/2)
func (j *Jones) LinearAngle() float64 {
	_, q, u, _ := j.Stokes()
	return 0.5 * math.Atan2(u, q)
}

// Project returns the complex amplitude of the field along the unit axis
// (cos a, sin a) for axis angle a
func (j *Jones) Project(axis Vec2) complex128 {
	return j.Ex*complex(axis.X, 0) + j.Ey*complex(axis.Y, 0)
}
