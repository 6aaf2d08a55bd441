package core

// Ray represents a single beam segment traveling across the bench.
// Direction must be unit length. Wavelength is in nanometers; zero means
// unspecified (broadband/monochromatic-agnostic source). Intensity is the
// power fraction carried by this ray, in [0, 1]. A nil Polarization means
// the ray is unpolarized.
type Ray struct {
	Origin       Vec2
	Direction    Vec2
	Wavelength   float64
	Intensity    float64
	Polarization *Jones
	Depth        int // generation depth: 0 at the source, +1 per interaction
}

// NewRay creates a new ray with a normalized direction
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize(), Intensity: 1.0}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Child derives a ray continuing from the given point in a new direction,
// carrying the given intensity and polarization. Wavelength is inherited
// and the generation depth is incremented.
func (r Ray) Child(origin, direction Vec2, intensity float64, pol *Jones) Ray {
	return Ray{
		Origin:       origin,
		Direction:    direction.Normalize(),
		Wavelength:   r.Wavelength,
		Intensity:    intensity,
		Polarization: pol,
		Depth:        r.Depth + 1,
	}
}

// RayPath is the polyline walked by one ray lineage from the source origin
// to its termination point, with the terminal state of that lineage.
// One source ray produces one path per branch created by splitting events.
type RayPath struct {
	Points       []Vec2
	Wavelength   float64
	Intensity    float64
	Polarization *Jones
	Truncated    bool // event budget ran out before the lineage terminated
}
