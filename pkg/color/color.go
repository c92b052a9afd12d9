// Package color parses CSS colour syntaxes into a canonical RGBA
// representation and converts between sRGB and the OKLCH perceptual space.
package color

import (
	"errors"
	"fmt"
)

// ErrUnparsableColor is returned when a raw token matches no known colour syntax.
var ErrUnparsableColor = errors.New("unparsable color")

// RGBA is a canonical 8-bit-per-channel colour with an alpha in [0,1].
type RGBA struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// OKLCH holds cylindrical OKLab coordinates: lightness L in [0,1],
// chroma C >= 0, hue H in [0,360).
type OKLCH struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// Hex formats the colour as lowercase #rrggbb, or #rrggbbaa when the
// alpha is not fully opaque.
func (c RGBA) Hex() string {
	if c.A < 1.0 {
		a := uint8(c.A*255 + 0.5)
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, a)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS formats the colour as an oklch() CSS function for the given
// perceptual coordinates.
func (o OKLCH) CSS() string {
	return fmt.Sprintf("oklch(%.1f%% %.3f %.1fdeg)", o.L*100, o.C, o.H)
}

// clamp8 clamps a float channel value to the 8-bit range.
func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// clamp01 clamps a float to [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
