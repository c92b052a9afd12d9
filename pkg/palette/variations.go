package palette

import (
	"math"

	"github.com/huespec/huespec/pkg/color"
)

// Variant is a derived colour state for one semantic role. Variants are
// recomputed from their base whenever the set changes and are never
// persisted independently.
type Variant struct {
	Role       Role        `json:"role"`
	Name       string      `json:"name"`
	Perceptual color.OKLCH `json:"oklch"`
	RGBA       color.RGBA  `json:"rgba"`
	Hex        string      `json:"hex"`
}

// variantSpec fixes the generated variant names and their lightness
// direction so output order is deterministic.
type variantSpec struct {
	name string
	sign float64
	big  bool // uses LightDelta rather than HoverDelta
}

var variantSpecs = []variantSpec{
	{name: "light", sign: +1, big: true},
	{name: "dark", sign: -1, big: true},
	{name: "hover", sign: +1},
	{name: "active", sign: -1},
}

// Variations derives the variant set for every assigned role, iterating
// roles in their fixed order.
func Variations(set SemanticSet, opts Options) []Variant {
	var out []Variant
	for _, role := range roleOrder {
		base, ok := set.Roles[role]
		if !ok {
			continue
		}
		for _, spec := range variantSpecs {
			delta := opts.HoverDelta
			if spec.big {
				delta = opts.LightDelta
			}
			p := offsetLightness(base.Perceptual, spec.sign*delta)
			rgba := p.ToRGBA(base.RGBA.A)
			out = append(out, Variant{
				Role:       role,
				Name:       spec.name,
				Perceptual: p,
				RGBA:       rgba,
				Hex:        rgba.Hex(),
			})
		}
	}
	return out
}

// offsetLightness shifts lightness by delta, clamping to [0,1]. When the
// clamp bites, chroma shrinks in proportion to the lost offset so the
// re-projected RGB does not land far out of gamut.
func offsetLightness(p color.OKLCH, delta float64) color.OKLCH {
	raw := p.L + delta
	clamped := raw
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}

	c := p.C
	if excess := math.Abs(raw - clamped); excess > 0 && delta != 0 {
		factor := 1 - excess/math.Abs(delta)
		if factor < 0 {
			factor = 0
		}
		c *= factor
	}

	return color.OKLCH{L: clamped, C: c, H: p.H}
}
