package style

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGBA color with float channels in the range [0,1].
// The float representation matches what GPU render backends expect,
// so colors flow from the stylesheet to the renderer without further
// conversion. Color is an immutable value type; operations like
// WithAlpha or Blend return a new value.
type Color struct {
	R, G, B, A float32
}

// Predefined colors used as defaults throughout the engine.
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Red         = Color{1, 0, 0, 1}
	Green       = Color{0, 1, 0, 1}
	Blue        = Color{0, 0, 1, 1}
	Transparent = Color{0, 0, 0, 0}
)

// RGB creates an opaque color from 0–255 channel values.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// RGBA creates a color from 0–255 channel values, including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// FromF32 creates a color from already-normalized channel values.
// Channels are clamped into [0,1].
func FromF32(r, g, b, a float32) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// FromHex parses a hex color string. Accepted forms are #rgb, #rgba,
// #rrggbb and #rrggbbaa; the leading '#' is optional. Short forms expand
// each nibble n to n*17, so "#abc" equals "#aabbcc". Without an alpha
// component the color is fully opaque.
func FromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3, 4:
		var n [4]uint8
		n[3] = 255 / 17
		for i := 0; i < len(h); i++ {
			d, err := hexDigit(h[i])
			if err != nil {
				return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
			}
			n[i] = d
		}
		return RGBA(n[0]*17, n[1]*17, n[2]*17, n[3]*17), nil
	case 6, 8:
		var n [4]uint8
		n[3] = 255
		for i := 0; i*2 < len(h); i++ {
			b, err := strconv.ParseUint(h[i*2:i*2+2], 16, 8)
			if err != nil {
				return Color{}, fmt.Errorf("invalid hex color %q", hex)
			}
			n[i] = uint8(b)
		}
		return RGBA(n[0], n[1], n[2], n[3]), nil
	}
	return Color{}, fmt.Errorf("invalid hex color %q", hex)
}

// ToHex formats c as a lower-case hex string with leading '#'.
// The alpha pair is omitted when the color is fully opaque.
func (c Color) ToHex() string {
	r, g, b, a := c.bytes()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// ToARGB packs c into a 32-bit integer in ARGB channel order.
func (c Color) ToARGB() uint32 {
	r, g, b, a := c.bytes()
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a float32) Color {
	c.A = clamp01(a)
	return c
}

// Blend linearly interpolates between c and other. t is clamped into
// [0,1]; t=0 yields c, t=1 yields other. All four channels blend.
func (c Color) Blend(other Color, t float32) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Lighten moves the RGB channels toward white by the given factor.
// Alpha is preserved.
func (c Color) Lighten(factor float32) Color {
	factor = clamp01(factor)
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// Darken scales the RGB channels toward black by the given factor.
// Alpha is preserved.
func (c Color) Darken(factor float32) Color {
	factor = clamp01(factor)
	return Color{
		R: c.R * (1 - factor),
		G: c.G * (1 - factor),
		B: c.B * (1 - factor),
		A: c.A,
	}
}

func (c Color) String() string {
	return c.ToHex()
}

func (c Color) bytes() (r, g, b, a uint8) {
	return uint8(clamp01(c.R)*255 + 0.5),
		uint8(clamp01(c.G)*255 + 0.5),
		uint8(clamp01(c.B)*255 + 0.5),
		uint8(clamp01(c.A)*255 + 0.5)
}

func hexDigit(b byte) (uint8, error) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', nil
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, nil
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, nil
	}
	return 0, fmt.Errorf("not a hex digit: %q", string(rune(b)))
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
