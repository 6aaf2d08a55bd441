package optics

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// transformMirror reflects the ray about the segment normal and scales
// its power by the mirror's reflectivity. No differential s/p phase is
// modeled for plain mirrors, so the polarization state is unchanged; the
// field amplitude only rescales to match the reflected power.
func (e *Element) transformMirror(in core.Ray, hit geometry.Hit) []core.Ray {
	intensity := in.Intensity * e.Reflectivity
	if intensity < BranchEpsilon {
		return nil
	}

	var pol *core.Jones
	if in.Polarization != nil {
		pol = in.Polarization.Scale(complex(math.Sqrt(e.Reflectivity), 0))
	}

	reflected := in.Direction.Reflect(hit.Normal)
	return []core.Ray{in.Child(hit.Point, reflected, intensity, pol)}
}
