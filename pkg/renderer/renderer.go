package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/opticslab/go-beamtrace/pkg/core"
	"github.com/opticslab/go-beamtrace/pkg/optics"
	"github.com/opticslab/go-beamtrace/pkg/scene"
)

// Config controls how a traced scene is drawn
type Config struct {
	Width, Height int
	Padding       float64 // border around the bench bounds, in pixels
	BeamWidth     float64 // stroke width of beam paths, in pixels
	ElementWidth  float64 // stroke width of element segments, in pixels
	Background    color.RGBA
}

// DefaultConfig returns sensible rendering defaults
func DefaultConfig(width, height int) Config {
	return Config{
		Width:        width,
		Height:       height,
		Padding:      24,
		BeamWidth:    1.5,
		ElementWidth: 3,
		Background:   color.RGBA{R: 16, G: 18, B: 24, A: 255},
	}
}

// Renderer draws element segments and traced beam paths into an RGBA
// image. It consumes trace output read-only.
type Renderer struct {
	config Config
}

// NewRenderer creates a renderer with the given config
func NewRenderer(config Config) *Renderer {
	return &Renderer{config: config}
}

// Render draws the scene's elements and the traced paths. Bench
// coordinates (mm, y up) are fitted to the image with uniform scale and
// a flipped y axis.
func (r *Renderer) Render(s *scene.Scene, paths []core.RayPath) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.config.Width, r.config.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.config.Background), image.Point{}, draw.Src)

	project := r.projection(s, paths)

	// Elements under the beams
	for i := range s.Elements {
		e := &s.Elements[i]
		r.strokeLine(img, project(e.A), project(e.B), r.config.ElementWidth, elementColor(e.Kind))
	}

	for i := range paths {
		r.drawPath(img, &paths[i], project)
	}

	return img
}

// projection computes the mm-to-pixel mapping that fits every element and
// path point inside the padded image
func (r *Renderer) projection(s *scene.Scene, paths []core.RayPath) func(core.Vec2) core.Vec2 {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	grow := func(p core.Vec2) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for i := range s.Elements {
		grow(s.Elements[i].A)
		grow(s.Elements[i].B)
	}
	for i := range s.Sources {
		grow(s.Sources[i].Origin)
	}
	for i := range paths {
		for _, p := range paths[i].Points {
			grow(p)
		}
	}

	if minX > maxX {
		minX, minY, maxX, maxY = 0, 0, 1, 1
	}

	spanX := math.Max(maxX-minX, 1e-6)
	spanY := math.Max(maxY-minY, 1e-6)
	scaleX := (float64(r.config.Width) - 2*r.config.Padding) / spanX
	scaleY := (float64(r.config.Height) - 2*r.config.Padding) / spanY
	scale := math.Min(scaleX, scaleY)

	// Center the bench in the image, y flipped
	offsetX := (float64(r.config.Width) - spanX*scale) / 2
	offsetY := (float64(r.config.Height) - spanY*scale) / 2

	return func(p core.Vec2) core.Vec2 {
		return core.Vec2{
			X: offsetX + (p.X-minX)*scale,
			Y: float64(r.config.Height) - offsetY - (p.Y-minY)*scale,
		}
	}
}

// drawPath strokes one traced polyline, colored by wavelength and faded
// by terminal intensity
func (r *Renderer) drawPath(img *image.RGBA, path *core.RayPath, project func(core.Vec2) core.Vec2) {
	if len(path.Points) < 2 {
		return
	}

	c := WavelengthToRGB(path.Wavelength)
	// Fade by amplitude rather than power so dim branches stay legible
	fade := math.Sqrt(math.Max(0, math.Min(1, path.Intensity)))
	c.A = uint8(math.Round(255 * (0.25 + 0.75*fade)))

	for i := 1; i < len(path.Points); i++ {
		r.strokeLine(img, project(path.Points[i-1]), project(path.Points[i]), r.config.BeamWidth, c)
	}
}

// strokeLine rasterizes one antialiased line segment as a quad
func (r *Renderer) strokeLine(img *image.RGBA, a, b core.Vec2, width float64, c color.RGBA) {
	dir := b.Subtract(a)
	if dir.LengthSquared() == 0 {
		return
	}
	offset := dir.Normalize().Perp().Multiply(width / 2)

	p0 := a.Add(offset)
	p1 := b.Add(offset)
	p2 := b.Subtract(offset)
	p3 := a.Subtract(offset)

	ras := vector.NewRasterizer(r.config.Width, r.config.Height)
	ras.DrawOp = draw.Over
	ras.MoveTo(float32(p0.X), float32(p0.Y))
	ras.LineTo(float32(p1.X), float32(p1.Y))
	ras.LineTo(float32(p2.X), float32(p2.Y))
	ras.LineTo(float32(p3.X), float32(p3.Y))
	ras.ClosePath()
	ras.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
}

// elementColor picks a fixed draw color per element kind
func elementColor(kind optics.ElementKind) color.RGBA {
	switch kind {
	case optics.Mirror:
		return color.RGBA{R: 200, G: 205, B: 215, A: 255}
	case optics.Lens:
		return color.RGBA{R: 120, G: 200, B: 255, A: 255}
	case optics.Beamsplitter:
		return color.RGBA{R: 235, G: 210, B: 120, A: 255}
	case optics.PolarizingBeamsplitter:
		return color.RGBA{R: 240, G: 160, B: 90, A: 255}
	case optics.Dichroic:
		return color.RGBA{R: 220, G: 120, B: 220, A: 255}
	case optics.Waveplate:
		return color.RGBA{R: 140, G: 220, B: 150, A: 255}
	case optics.RefractiveInterface:
		return color.RGBA{R: 110, G: 140, B: 235, A: 255}
	}
	return color.RGBA{R: 255, G: 255, B: 255, A: 255}
}
