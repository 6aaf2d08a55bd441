package scene

import (
	"math"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/optics"
)

// NewDefaultScene builds the default bench: a laser into a 50/50
// beamsplitter, with a fold mirror on the reflected arm and a focusing
// lens on the transmitted arm
func NewDefaultScene() *Scene {
	return &Scene{
		Name: "default",
		Elements: []optics.Element{
			optics.NewBeamsplitter(core.NewVec2(95, 95), core.NewVec2(105, 105), 0.5, 0.5),
			optics.NewMirror(core.NewVec2(80, 160), core.NewVec2(120, 160), 0.99),
			optics.NewLens(core.NewVec2(150, 80), core.NewVec2(150, 120), 50),
		},
		Sources: []Source{{
			Origin:       core.NewVec2(20, 100),
			Angle:        0,
			Aperture:     10,
			RayCount:     5,
			Wavelength:   632.8,
			Polarization: Horizontal,
		}},
	}
}

// NewMichelsonScene builds a Michelson interferometer: a beamsplitter
// with a retroreflecting mirror on each arm, recombining at the splitter
func NewMichelsonScene() *Scene {
	return &Scene{
		Name: "michelson",
		Elements: []optics.Element{
			optics.NewBeamsplitter(core.NewVec2(92, 92), core.NewVec2(108, 108), 0.5, 0.5),
			optics.NewMirror(core.NewVec2(180, 85), core.NewVec2(180, 115), 0.99),
			optics.NewMirror(core.NewVec2(85, 180), core.NewVec2(115, 180), 0.99),
		},
		Sources: []Source{{
			Origin:       core.NewVec2(20, 100),
			Angle:        0,
			RayCount:     1,
			Wavelength:   532,
			Polarization: Diagonal,
		}},
	}
}

// NewPolarimeterScene builds a polarization bench: a quarter-wave plate
// and a half-wave plate ahead of a polarizing beamsplitter
func NewPolarimeterScene() *Scene {
	return &Scene{
		Name: "polarimeter",
		Elements: []optics.Element{
			optics.NewWaveplate(core.NewVec2(60, 80), core.NewVec2(60, 120), math.Pi/2, math.Pi/4),
			optics.NewWaveplate(core.NewVec2(100, 80), core.NewVec2(100, 120), math.Pi, math.Pi/8),
			optics.NewPolarizingBeamsplitter(core.NewVec2(135, 95), core.NewVec2(145, 105), 0),
		},
		Sources: []Source{{
			Origin:       core.NewVec2(20, 100),
			Angle:        0,
			RayCount:     1,
			Wavelength:   632.8,
			Polarization: Horizontal,
		}},
	}
}

// NewRefractionScene builds a glass-to-air boundary with one source past
// the critical angle (totally internally reflected) and one below it
// (refracted)
func NewRefractionScene() *Scene {
	return &Scene{
		Name: "refraction",
		Elements: []optics.Element{
			// Air to the right of A->B, glass to the left
			optics.NewRefractiveInterface(core.NewVec2(100, 20), core.NewVec2(100, 180), 1.0, 1.5),
		},
		Sources: []Source{
			{
				Origin:       core.NewVec2(30, 40),
				Angle:        radians(50), // past the ~41.8 degree critical angle
				RayCount:     1,
				Wavelength:   473,
				Polarization: Unpolarized,
			},
			{
				Origin:       core.NewVec2(30, 100),
				Angle:        radians(20),
				RayCount:     1,
				Wavelength:   632.8,
				Polarization: Unpolarized,
			},
		},
	}
}

// NewCavityScene builds two parallel facing mirrors with a ray bouncing
// between them until the event budget truncates the lineage
func NewCavityScene() *Scene {
	return &Scene{
		Name: "cavity",
		Elements: []optics.Element{
			optics.NewMirror(core.NewVec2(50, 40), core.NewVec2(50, 160), 1.0),
			optics.NewMirror(core.NewVec2(150, 40), core.NewVec2(150, 160), 1.0),
		},
		Sources: []Source{{
			Origin:       core.NewVec2(60, 95),
			Angle:        radians(2),
			RayCount:     1,
			Wavelength:   780,
			Polarization: Unpolarized,
		}},
	}
}
