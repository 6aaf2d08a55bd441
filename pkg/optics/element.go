package optics

import (
	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/geometry"
)

// ElementKind identifies one of the closed set of optical element variants
type ElementKind int

const (
	Mirror ElementKind = iota
	Lens
	Beamsplitter
	PolarizingBeamsplitter
	Dichroic
	Waveplate
	RefractiveInterface
)

// String returns the JSON/scene-file name of the element kind
func (k ElementKind) String() string {
	switch k {
	case Mirror:
		return "mirror"
	case Lens:
		return "lens"
	case Beamsplitter:
		return "beamsplitter"
	case PolarizingBeamsplitter:
		return "polarizing-beamsplitter"
	case Dichroic:
		return "dichroic"
	case Waveplate:
		return "waveplate"
	case RefractiveInterface:
		return "refractive-interface"
	}
	return "unknown"
}

// DichroicPass selects which side of the cutoff a dichroic transmits
type DichroicPass int

const (
	Longpass  DichroicPass = iota // transmits wavelengths above the cutoff
	Shortpass                     // transmits wavelengths below the cutoff
)

// BranchEpsilon is the intensity below which a split branch is omitted
// rather than producing a zero-length path
const BranchEpsilon = 1e-9

// Element is one optical element on the bench: a finite line segment from
// A to B (mm) tagged with a variant kind and that variant's parameters.
// Elements are immutable for the duration of a trace pass.
type Element struct {
	Kind ElementKind
	A, B core.Vec2

	Reflectivity    float64      // Mirror: fraction of power reflected, 0..1
	FocalLength     float64      // Lens: effective focal length in mm, negative diverges
	SplitT, SplitR  float64      // Beamsplitter: transmitted/reflected power fractions
	Axis            float64      // PolarizingBeamsplitter: lab-frame transmission axis, radians
	Cutoff          float64      // Dichroic: cutoff wavelength in nm
	TransitionWidth float64      // Dichroic: width of the transmittance transition in nm
	Pass            DichroicPass // Dichroic: longpass or shortpass
	PhaseShift      float64      // Waveplate: retardation delta in radians (pi = half-wave)
	FastAxis        float64      // Waveplate: lab-frame fast axis angle, radians
	N1, N2          float64      // RefractiveInterface: indices on the right/left of A->B
}

// NewMirror creates a mirror segment with the given reflectivity
func NewMirror(a, b core.Vec2, reflectivity float64) Element {
	return Element{Kind: Mirror, A: a, B: b, Reflectivity: reflectivity}
}

// NewLens creates a thin lens segment with the given focal length in mm
func NewLens(a, b core.Vec2, focalLength float64) Element {
	return Element{Kind: Lens, A: a, B: b, FocalLength: focalLength}
}

// NewBeamsplitter creates a non-polarizing splitter with the given
// transmitted and reflected power fractions
func NewBeamsplitter(a, b core.Vec2, splitT, splitR float64) Element {
	return Element{Kind: Beamsplitter, A: a, B: b, SplitT: splitT, SplitR: splitR}
}

// NewPolarizingBeamsplitter creates a PBS with the given lab-frame
// transmission axis angle in radians
func NewPolarizingBeamsplitter(a, b core.Vec2, axis float64) Element {
	return Element{Kind: PolarizingBeamsplitter, A: a, B: b, Axis: axis}
}

// NewDichroic creates a dichroic filter with the given cutoff wavelength
// and transition width in nm
func NewDichroic(a, b core.Vec2, cutoff, transitionWidth float64, pass DichroicPass) Element {
	return Element{Kind: Dichroic, A: a, B: b, Cutoff: cutoff, TransitionWidth: transitionWidth, Pass: pass}
}

// NewWaveplate creates a waveplate with the given retardation and
// fast-axis angle in radians
func NewWaveplate(a, b core.Vec2, phaseShift, fastAxis float64) Element {
	return Element{Kind: Waveplate, A: a, B: b, PhaseShift: phaseShift, FastAxis: fastAxis}
}

// NewRefractiveInterface creates a refractive boundary. n1 is the medium
// to the right of A->B, n2 to the left.
func NewRefractiveInterface(a, b core.Vec2, n1, n2 float64) Element {
	return Element{Kind: RefractiveInterface, A: a, B: b, N1: n1, N2: n2}
}

// Center returns the midpoint of the element segment
func (e *Element) Center() core.Vec2 {
	return e.A.Add(e.B).Multiply(0.5)
}

// Tangent returns the unit vector from A toward B
func (e *Element) Tangent() core.Vec2 {
	return e.B.Subtract(e.A).Normalize()
}

// Normal returns the element's forward normal under the fixed segment
// convention (right side of A->B)
func (e *Element) Normal() core.Vec2 {
	return geometry.SegmentNormal(e.A, e.B)
}

// Degenerate reports whether the segment is too short to intersect.
// Degenerate elements are skipped by the tracer with a warning.
func (e *Element) Degenerate() bool {
	return e.B.Subtract(e.A).LengthSquared() < geometry.Epsilon*geometry.Epsilon
}

// Transform applies the element's physics to an incoming ray at the given
// hit, producing zero, one, or two child rays. Zero children means full
// absorption; two children come from splitting variants. The switch is
// exhaustive over the closed variant set.
func (e *Element) Transform(in core.Ray, hit geometry.Hit) []core.Ray {
	switch e.Kind {
	case Mirror:
		return e.transformMirror(in, hit)
	case Lens:
		return e.transformLens(in, hit)
	case Beamsplitter:
		return e.transformBeamsplitter(in, hit)
	case PolarizingBeamsplitter:
		return e.transformPolarizing(in, hit)
	case Dichroic:
		return e.transformDichroic(in, hit)
	case Waveplate:
		return e.transformWaveplate(in, hit)
	case RefractiveInterface:
		return e.transformRefractive(in, hit)
	}
	return nil
}
