package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huespec/huespec/pkg/color"
)

func classifySamples(t *testing.T, samples []Sample) SemanticSet {
	t.Helper()
	opts := DefaultOptions()
	return Classify(Dedupe(Normalize(samples, nil), opts.DedupeTolerance), opts)
}

func TestClassify_BackgroundFlagOverridesFrequency(t *testing.T) {
	set := classifySamples(t, []Sample{
		{Raw: "#ffffff", Weight: 1, Count: 50},
		{Raw: "#0d1117", Weight: 5, Count: 1, Background: true},
	})

	bg := set.Roles[RoleBackground]
	require.NotNil(t, bg)
	assert.Equal(t, "#0d1117", bg.Hex)

	txt := set.Roles[RoleText]
	require.NotNil(t, txt)
	assert.Equal(t, "#ffffff", txt.Hex)
}

func TestClassify_ExtremeLightnessBackground(t *testing.T) {
	set := classifySamples(t, []Sample{
		{Raw: "#3366cc", Weight: 1, Count: 20}, // dominant mid-lightness blue
		{Raw: "#fafafa", Weight: 1, Count: 5},  // near-white
		{Raw: "#222222", Weight: 1, Count: 3},
	})

	bg := set.Roles[RoleBackground]
	require.NotNil(t, bg)
	assert.Equal(t, "#fafafa", bg.Hex)
}

func TestClassify_HueSeparation(t *testing.T) {
	set := classifySamples(t, []Sample{
		{Raw: "#ffffff", Weight: 5, Count: 10, Background: true},
		{Raw: "#111111", Weight: 3, Count: 9},
		{Raw: "#cc2200", Weight: 1, Count: 8}, // red
		{Raw: "#dd3311", Weight: 1, Count: 7}, // near-identical hue to the red
		{Raw: "#2266cc", Weight: 1, Count: 6}, // blue
		{Raw: "#22aa44", Weight: 1, Count: 5}, // green
	})

	primary := set.Roles[RolePrimary]
	secondary := set.Roles[RoleSecondary]
	accent := set.Roles[RoleAccent]
	require.NotNil(t, primary)
	require.NotNil(t, secondary)
	require.NotNil(t, accent)

	assert.Equal(t, "#cc2200", primary.Hex)
	// The second red is skipped for hue proximity; blue and green advance.
	assert.Equal(t, "#2266cc", secondary.Hex)
	assert.Equal(t, "#22aa44", accent.Hex)

	// The skipped near-red lands in extras.
	require.Len(t, set.Extras, 1)
	assert.Equal(t, "#dd3311", set.Extras[0].Hex)
}

func TestClassify_RelaxedFillWhenFewHues(t *testing.T) {
	// Only one distinct hue available: secondary/accent fill from rank order.
	set := classifySamples(t, []Sample{
		{Raw: "#ffffff", Weight: 5, Count: 10, Background: true},
		{Raw: "#111111", Weight: 3, Count: 9},
		{Raw: "#cc2200", Weight: 1, Count: 8},
		{Raw: "#dd3311", Weight: 1, Count: 7},
		{Raw: "#771100", Weight: 1, Count: 6},
	})

	require.NotNil(t, set.Roles[RolePrimary])
	require.NotNil(t, set.Roles[RoleSecondary])
	require.NotNil(t, set.Roles[RoleAccent])
	assert.Empty(t, set.Extras)
}

func TestClassify_EmptyInput(t *testing.T) {
	set := Classify(nil, DefaultOptions())
	assert.True(t, set.Empty())
	assert.Empty(t, set.Roles)
	assert.Empty(t, set.Extras)
}

func TestClassify_SingleColor(t *testing.T) {
	set := classifySamples(t, []Sample{{Raw: "#ffffff", Weight: 1, Count: 1}})

	require.NotNil(t, set.Roles[RoleBackground])
	assert.Equal(t, "#ffffff", set.Roles[RoleBackground].Hex)
	assert.Nil(t, set.Roles[RoleText])
	assert.Empty(t, set.Extras)
}

func TestVariations_ClampAndChromaReduction(t *testing.T) {
	opts := DefaultOptions()
	near := color.RGBA{R: 250, G: 250, B: 250, A: 1}
	set := SemanticSet{Roles: map[Role]*Canonical{
		RolePrimary: {RGBA: near, Hex: near.Hex(), Perceptual: color.ToOKLCH(near)},
	}}

	vars := Variations(set, opts)
	require.Len(t, vars, 4)

	byName := make(map[string]Variant)
	for _, v := range vars {
		byName[v.Name] = v
	}

	light := byName["light"]
	assert.InDelta(t, 1.0, light.Perceptual.L, 1e-9)
	// Lightness clamped: chroma must not exceed the base's.
	base := color.ToOKLCH(near)
	assert.LessOrEqual(t, light.Perceptual.C, base.C)

	dark := byName["dark"]
	assert.InDelta(t, base.L-opts.LightDelta, dark.Perceptual.L, 1e-9)
	assert.InDelta(t, base.C, dark.Perceptual.C, 1e-9)
	assert.InDelta(t, base.H, dark.Perceptual.H, 1e-9)

	hover := byName["hover"]
	assert.InDelta(t, base.L+opts.HoverDelta, hover.Perceptual.L, 1e-9)
}

func TestVariations_EmptySet(t *testing.T) {
	vars := Variations(SemanticSet{Roles: map[Role]*Canonical{}}, DefaultOptions())
	assert.Empty(t, vars)
}

func TestVariations_DeterministicOrder(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 1}
	blue := color.RGBA{B: 200, A: 1}
	set := SemanticSet{Roles: map[Role]*Canonical{
		RolePrimary:    {RGBA: blue, Hex: blue.Hex(), Perceptual: color.ToOKLCH(blue)},
		RoleBackground: {RGBA: white, Hex: white.Hex(), Perceptual: color.ToOKLCH(white)},
	}}

	a := Variations(set, DefaultOptions())
	b := Variations(set, DefaultOptions())
	assert.Equal(t, a, b)

	require.Len(t, a, 8)
	// Fixed role order: background before primary.
	assert.Equal(t, RoleBackground, a[0].Role)
	assert.Equal(t, "light", a[0].Name)
	assert.Equal(t, RolePrimary, a[4].Role)
}
