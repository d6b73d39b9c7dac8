package config

import (
	"image/color"
	"math"
)

// Color is an RGBA color with float channels in [0, 1]
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

// Common colors
var (
	White = Color{1, 1, 1, 1}
	Clear = Color{}
)

// RGBA builds a color from float channels
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts any image color
func FromColor(c color.Color) Color {
	if c == nil {
		return Clear
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// NRGBA converts to a non-premultiplied 8-bit color
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A),
	}
}

// RGBA implements color.Color
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Mul multiplies two colors channel by channel
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A * o.A}
}

// Approx reports whether every channel of c and o is within tolerance
func (c Color) Approx(o Color) bool {
	return approxEqual(c.R, o.R) && approxEqual(c.G, o.G) &&
		approxEqual(c.B, o.B) && approxEqual(c.A, o.A)
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(float64(v) * 255))
}
