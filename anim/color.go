package anim

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA colour. The RGB channels are a colorful.Color so the
// usual blending and conversion operations are available; A is alpha in
// [0,1].
type Color struct {
	C colorful.Color
	A float64
}

// RGB creates an opaque colour from channels in [0,1].
func RGB(r, g, b float64) Color {
	return Color{colorful.Color{R: r, G: g, B: b}, 1.0}
}

// RGBA creates a colour from channels in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{colorful.Color{R: r, G: g, B: b}, a}
}

// Hex parses #rgb, #rgba, #rrggbb and #rrggbbaa colour strings.
func Hex(s string) (Color, error) {
	h := s
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}

	alpha := 1.0
	switch len(h) {
	case 3, 6:
		// Opaque forms.
	case 4, 8:
		digits := len(h) / 4
		v, err := strconv.ParseUint(h[len(h)-digits:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid hex color %q", s)
		}
		if digits == 1 {
			v = v*16 + v
		}
		alpha = float64(v) / 255.0
		h = h[:len(h)-digits]
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	if len(h) == 3 {
		h = fmt.Sprintf("%c%c%c%c%c%c", h[0], h[0], h[1], h[1], h[2], h[2])
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, err
	}
	return Color{c, alpha}, nil
}

// Lerp linearly blends towards another colour, alpha included. The RGB
// channels blend in linear RGB space.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		C: c.C.BlendRgb(o.C, t),
		A: c.A + (o.A-c.A)*t,
	}
}

// RGBA255 returns the colour as 8-bit channels, clamping out-of-gamut
// values first.
func (c Color) RGBA255() (r, g, b, a uint8) {
	r, g, b = c.C.Clamped().RGB255()
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}
	a = uint8(alpha*255.0 + 0.5)
	return r, g, b, a
}
