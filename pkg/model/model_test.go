package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/palette"
)

func TestBuild_FullPipeline(t *testing.T) {
	colors := []palette.Sample{
		{Raw: "#ffffff", Weight: 1, Count: 50},
		{Raw: "#0d1117", Weight: 5, Count: 1, Background: true},
		{Raw: "#2266cc", Weight: 2, Count: 10},
	}
	fonts := []font.Sample{
		{Raw: "Arial, sans-serif", Weight: 3},
		{Raw: "Georgia, serif", Weight: 1},
	}

	m := Build(colors, fonts, DefaultOptions(), nil)

	require.NotNil(t, m.Colors.Roles[palette.RoleBackground])
	assert.Equal(t, "#0d1117", m.Colors.Roles[palette.RoleBackground].Hex)
	require.NotNil(t, m.Colors.Roles[palette.RoleText])
	assert.Equal(t, "#ffffff", m.Colors.Roles[palette.RoleText].Hex)

	assert.NotEmpty(t, m.Variations)

	require.NotNil(t, m.Fonts.Roles[font.RoleBody])
	assert.Equal(t, "Arial", m.Fonts.Roles[font.RoleBody].Primary)

	assert.Len(t, m.Scale, 7)
	assert.False(t, m.Empty())
}

func TestBuild_EmptyInput(t *testing.T) {
	m := Build(nil, nil, DefaultOptions(), nil)

	assert.True(t, m.Colors.Empty())
	assert.True(t, m.Fonts.Empty())
	assert.Empty(t, m.Variations)
	// The scale does not depend on extracted fonts.
	assert.Len(t, m.Scale, 7)
	assert.True(t, m.Empty())
}

func TestBuild_MalformedSamplesSkipped(t *testing.T) {
	m := Build(
		[]palette.Sample{
			{Raw: "#112233", Weight: 1, Count: 1},
			{Raw: "definitely-not-a-color", Weight: 9, Count: 9},
		},
		[]font.Sample{
			{Raw: `"Broken`, Weight: 9},
			{Raw: "Georgia, serif", Weight: 1},
		},
		DefaultOptions(), nil)

	require.NotNil(t, m.Colors.Roles[palette.RoleBackground])
	require.NotNil(t, m.Fonts.Roles[font.RoleBody])
	assert.Equal(t, "Georgia", m.Fonts.Roles[font.RoleBody].Primary)
}

func TestBuild_Deterministic(t *testing.T) {
	colors := []palette.Sample{
		{Raw: "#ffffff", Weight: 1, Count: 20},
		{Raw: "#cc2200", Weight: 2, Count: 5},
		{Raw: "#2266cc", Weight: 1, Count: 8},
		{Raw: "#22aa44", Weight: 1, Count: 3},
	}
	fonts := []font.Sample{
		{Raw: "Inter, sans-serif", Weight: 5},
		{Raw: "'Fira Code', monospace", Weight: 1},
	}

	a, err := json.Marshal(Build(colors, fonts, DefaultOptions(), nil))
	require.NoError(t, err)
	b, err := json.Marshal(Build(colors, fonts, DefaultOptions(), nil))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
