package scene

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/optics"
)

// Config is the on-disk JSON form of a scene. Angles are in degrees
// (friendlier than radians for hand-written files) and are converted on
// load.
type Config struct {
	Name     string       `json:"name,omitempty"`
	Elements []ElementCfg `json:"elements"`
	Sources  []SourceCfg  `json:"sources"`
}

// PointCfg is a bench coordinate in mm
type PointCfg struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ElementCfg describes one optical element. Type selects the variant and
// which of the remaining fields apply.
type ElementCfg struct {
	Type string   `json:"type"`
	A    PointCfg `json:"a"`
	B    PointCfg `json:"b"`

	Reflectivity    *float64 `json:"reflectivity,omitempty"`    // mirror, default 1.0
	FocalLength     float64  `json:"focalLength,omitempty"`     // lens, mm
	SplitT          *float64 `json:"splitT,omitempty"`          // beamsplitter, default 0.5
	SplitR          *float64 `json:"splitR,omitempty"`          // beamsplitter, default 0.5
	AxisDeg         float64  `json:"axisDeg,omitempty"`         // PBS transmission axis
	Cutoff          float64  `json:"cutoff,omitempty"`          // dichroic, nm
	TransitionWidth float64  `json:"transitionWidth,omitempty"` // dichroic, nm
	Pass            string   `json:"pass,omitempty"`            // "longpass" (default) or "shortpass"
	PhaseShiftDeg   float64  `json:"phaseShiftDeg,omitempty"`   // waveplate retardation
	FastAxisDeg     float64  `json:"fastAxisDeg,omitempty"`     // waveplate fast axis
	N1              float64  `json:"n1,omitempty"`              // refractive index, right of A->B
	N2              float64  `json:"n2,omitempty"`              // refractive index, left of A->B
	Material1       string   `json:"material1,omitempty"`       // named medium alternative to n1
	Material2       string   `json:"material2,omitempty"`       // named medium alternative to n2
}

// SourceCfg describes one ray source
type SourceCfg struct {
	Origin       PointCfg  `json:"origin"`
	AngleDeg     float64   `json:"angleDeg"`
	Aperture     float64   `json:"aperture,omitempty"`
	Rays         int       `json:"rays,omitempty"`
	SpreadDeg    float64   `json:"spreadDeg,omitempty"`
	Wavelength   float64   `json:"wavelength,omitempty"`
	Polarization string    `json:"polarization,omitempty"`
	Jones        *JonesCfg `json:"jones,omitempty"`
}

// JonesCfg is a custom Jones vector as [re, im] pairs
type JonesCfg struct {
	Ex [2]float64 `json:"ex"`
	Ey [2]float64 `json:"ey"`
}

// LoadConfig reads and builds a scene from a JSON file. Recoverable
// issues (unknown materials, suspicious split ratios) come back as
// warnings; only a malformed file or an unknown element type is an error.
func LoadConfig(path string) (*Scene, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read scene file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parse scene file %s: %w", path, err)
	}

	return BuildScene(&cfg)
}

// BuildScene converts a parsed config into a scene snapshot
func BuildScene(cfg *Config) (*Scene, []string, error) {
	var warnings []string

	s := &Scene{Name: cfg.Name}

	for i, ec := range cfg.Elements {
		element, elementWarnings, err := buildElement(i, ec)
		if err != nil {
			return nil, nil, err
		}
		warnings = append(warnings, elementWarnings...)
		s.Elements = append(s.Elements, element)
	}

	for i, sc := range cfg.Sources {
		source, err := buildSource(i, sc)
		if err != nil {
			return nil, nil, err
		}
		s.Sources = append(s.Sources, source)
	}

	return s, warnings, nil
}

func buildElement(index int, ec ElementCfg) (optics.Element, []string, error) {
	a := core.NewVec2(ec.A.X, ec.A.Y)
	b := core.NewVec2(ec.B.X, ec.B.Y)
	var warnings []string

	switch ec.Type {
	case "mirror":
		reflectivity := 1.0
		if ec.Reflectivity != nil {
			reflectivity = *ec.Reflectivity
		}
		return optics.NewMirror(a, b, reflectivity), warnings, nil

	case "lens":
		if ec.FocalLength == 0 {
			return optics.Element{}, nil, fmt.Errorf("element %d: lens requires a non-zero focalLength", index)
		}
		return optics.NewLens(a, b, ec.FocalLength), warnings, nil

	case "beamsplitter":
		splitT, splitR := 0.5, 0.5
		if ec.SplitT != nil {
			splitT = *ec.SplitT
		}
		if ec.SplitR != nil {
			splitR = *ec.SplitR
		}
		if splitT+splitR > 1+1e-9 {
			warnings = append(warnings, fmt.Sprintf(
				"element %d: beamsplitter splitT+splitR = %.3f exceeds 1, trace will gain energy", index, splitT+splitR))
		}
		return optics.NewBeamsplitter(a, b, splitT, splitR), warnings, nil

	case "polarizing-beamsplitter":
		return optics.NewPolarizingBeamsplitter(a, b, radians(ec.AxisDeg)), warnings, nil

	case "dichroic":
		pass := optics.Longpass
		switch ec.Pass {
		case "", "longpass":
		case "shortpass":
			pass = optics.Shortpass
		default:
			return optics.Element{}, nil, fmt.Errorf("element %d: unknown dichroic pass %q", index, ec.Pass)
		}
		return optics.NewDichroic(a, b, ec.Cutoff, ec.TransitionWidth, pass), warnings, nil

	case "waveplate":
		return optics.NewWaveplate(a, b, radians(ec.PhaseShiftDeg), radians(ec.FastAxisDeg)), warnings, nil

	case "refractive-interface":
		n1, w1 := resolveIndex(index, ec.N1, ec.Material1)
		n2, w2 := resolveIndex(index, ec.N2, ec.Material2)
		warnings = append(warnings, w1...)
		warnings = append(warnings, w2...)
		return optics.NewRefractiveInterface(a, b, n1, n2), warnings, nil
	}

	return optics.Element{}, nil, fmt.Errorf("element %d: unknown element type %q", index, ec.Type)
}

// resolveIndex picks a refractive index from an explicit value or a
// material name. Unknown names fall back to the default index with a
// warning rather than failing the load.
func resolveIndex(elementIndex int, explicit float64, material string) (float64, []string) {
	if explicit > 0 {
		return explicit, nil
	}
	if material == "" {
		return optics.DefaultRefractiveIndex, nil
	}
	index, ok := optics.LookupRefractiveIndex(material)
	if !ok {
		return index, []string{fmt.Sprintf(
			"element %d: unknown material %q, using n=%.2f", elementIndex, material, index)}
	}
	return index, nil
}

func buildSource(index int, sc SourceCfg) (Source, error) {
	polarization := PolarizationKind(sc.Polarization)
	if sc.Polarization == "" {
		polarization = Unpolarized
	}

	var jones *core.Jones
	switch polarization {
	case Unpolarized, Horizontal, Vertical, Diagonal, Circular:
	case CustomJones:
		if sc.Jones == nil {
			return Source{}, fmt.Errorf("source %d: custom polarization requires a jones vector", index)
		}
		jones = core.NewJones(
			complex(sc.Jones.Ex[0], sc.Jones.Ex[1]),
			complex(sc.Jones.Ey[0], sc.Jones.Ey[1]),
		)
	default:
		return Source{}, fmt.Errorf("source %d: unknown polarization %q", index, sc.Polarization)
	}

	return Source{
		Origin:       core.NewVec2(sc.Origin.X, sc.Origin.Y),
		Angle:        radians(sc.AngleDeg),
		Aperture:     sc.Aperture,
		RayCount:     sc.Rays,
		Spread:       radians(sc.SpreadDeg),
		Wavelength:   sc.Wavelength,
		Polarization: polarization,
		Jones:        jones,
	}, nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
