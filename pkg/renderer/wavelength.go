package renderer

import (
	"image/color"
	"math"
)

// WavelengthToRGB approximates the visible color of light at the given
// wavelength in nm, using the common piecewise linear fit over 380-780 nm
// with intensity falloff at the spectrum edges. Wavelengths outside the
// visible band (and the zero "unspecified" wavelength) render as a warm
// white so infrared/broadband beams stay visible on the canvas.
func WavelengthToRGB(wavelength float64) color.RGBA {
	if wavelength < 380 || wavelength > 780 {
		return color.RGBA{R: 255, G: 244, B: 224, A: 255}
	}

	var r, g, b float64
	switch {
	case wavelength < 440:
		r = -(wavelength - 440) / (440 - 380)
		b = 1
	case wavelength < 490:
		g = (wavelength - 440) / (490 - 440)
		b = 1
	case wavelength < 510:
		g = 1
		b = -(wavelength - 510) / (510 - 490)
	case wavelength < 580:
		r = (wavelength - 510) / (580 - 510)
		g = 1
	case wavelength < 645:
		r = 1
		g = -(wavelength - 645) / (645 - 580)
	default:
		r = 1
	}

	// Fade toward the edges of the visible band
	factor := 1.0
	switch {
	case wavelength < 420:
		factor = 0.3 + 0.7*(wavelength-380)/(420-380)
	case wavelength > 700:
		factor = 0.3 + 0.7*(780-wavelength)/(780-700)
	}

	return color.RGBA{
		R: channel(r * factor),
		G: channel(g * factor),
		B: channel(b * factor),
		A: 255,
	}
}

// channel gamma-adjusts and quantizes one color channel
func channel(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	return uint8(math.Round(255 * math.Pow(v, 0.8)))
}
