package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOKLCH_KnownValues(t *testing.T) {
	white := ToOKLCH(RGBA{R: 255, G: 255, B: 255, A: 1})
	assert.InDelta(t, 1.0, white.L, 1e-3)
	assert.InDelta(t, 0.0, white.C, 1e-3)

	black := ToOKLCH(RGBA{A: 1})
	assert.InDelta(t, 0.0, black.L, 1e-3)
	assert.InDelta(t, 0.0, black.C, 1e-3)

	// Reference OKLab values for sRGB red: L≈0.628, C≈0.258, H≈29.2°.
	red := ToOKLCH(RGBA{R: 255, A: 1})
	assert.InDelta(t, 0.628, red.L, 5e-3)
	assert.InDelta(t, 0.258, red.C, 5e-3)
	assert.InDelta(t, 29.2, red.H, 0.5)
}

func TestRoundTrip_WithinOneChannelStep(t *testing.T) {
	// Exhaustive round-tripping of all 16.7M triples is too slow for a unit
	// test; a 17-step lattice per channel plus the cube corners covers the
	// gamut boundary and interior evenly.
	var steps []uint8
	for v := 0; v <= 255; v += 15 {
		steps = append(steps, uint8(v))
	}

	for _, r := range steps {
		for _, g := range steps {
			for _, b := range steps {
				in := RGBA{R: r, G: g, B: b, A: 1}
				out := ToOKLCH(in).ToRGBA(1)
				require.InDelta(t, float64(in.R), float64(out.R), 1, "red channel for %v", in)
				require.InDelta(t, float64(in.G), float64(out.G), 1, "green channel for %v", in)
				require.InDelta(t, float64(in.B), float64(out.B), 1, "blue channel for %v", in)
			}
		}
	}
}

func TestDistance_CircularHue(t *testing.T) {
	a := OKLCH{L: 0.5, C: 0.1, H: 359}
	b := OKLCH{L: 0.5, C: 0.1, H: 1}
	c := OKLCH{L: 0.5, C: 0.1, H: 180}

	assert.Less(t, Distance(a, b), Distance(a, c))
}

func TestDistance_AchromaticHueIrrelevant(t *testing.T) {
	// Near-zero chroma: hue is numerically arbitrary and must not separate greys.
	a := OKLCH{L: 0.5, C: 0.0001, H: 10}
	b := OKLCH{L: 0.5, C: 0.0001, H: 250}
	assert.Less(t, Distance(a, b), 0.001)
}

func TestDistance_NearDuplicateChannels(t *testing.T) {
	// Two colours one RGB step apart sit well inside a 0.02 tolerance.
	a := ToOKLCH(RGBA{R: 100, G: 150, B: 200, A: 1})
	b := ToOKLCH(RGBA{R: 101, G: 150, B: 200, A: 1})
	assert.Less(t, Distance(a, b), 0.02)
}

func TestHueDelta(t *testing.T) {
	assert.InDelta(t, 2, HueDelta(359, 1), 1e-9)
	assert.InDelta(t, 180, HueDelta(0, 180), 1e-9)
	assert.InDelta(t, 0, HueDelta(90, 90), 1e-9)
}

func TestOKLCH_CSS(t *testing.T) {
	s := OKLCH{L: 0.543, C: 0.227, H: 252.5}.CSS()
	assert.Equal(t, "oklch(54.3% 0.227 252.5deg)", s)
}

func TestToRGBA_OutOfGamutClamps(t *testing.T) {
	// Maximal chroma at mid lightness falls outside sRGB; channels clamp
	// instead of wrapping, so the hue family is still recognizable.
	c := OKLCH{L: 0.5, C: 0.4, H: 150}.ToRGBA(1)
	assert.Greater(t, c.G, c.R)
	assert.Greater(t, c.G, c.B)
}
