package render

import (
	"encoding/json"
	"fmt"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// Design-token document shapes. Maps marshal with sorted keys, so the
// output is deterministic for a given model.
type tokenDocument struct {
	DesignSystem tokenSystem `json:"designSystem"`
}

type tokenSystem struct {
	Colors     tokenColors     `json:"colors"`
	Typography tokenTypography `json:"typography"`
	Metadata   tokenMetadata   `json:"metadata"`
}

type tokenColors struct {
	Semantic   map[string]colorToken `json:"semantic"`
	Variations map[string]colorToken `json:"variations,omitempty"`
	Palette    []colorToken          `json:"palette,omitempty"`
}

type colorToken struct {
	Value string  `json:"value"`
	OKLCH string  `json:"oklch"`
	Alpha float64 `json:"alpha"`
	Type  string  `json:"type"`
}

type tokenTypography struct {
	FontFamilies map[string]fontToken `json:"fontFamilies"`
	FontSizes    map[string]sizeToken `json:"fontSizes"`
}

type fontToken struct {
	Value    []string `json:"value"`
	Category string   `json:"category"`
	Type     string   `json:"type"`
}

type sizeToken struct {
	Value string `json:"value"`
	Fluid string `json:"fluid"`
	Type  string `json:"type"`
}

type tokenMetadata struct {
	Source    string `json:"source,omitempty"`
	Generator string `json:"generator"`
	Version   string `json:"version"`
}

func renderJSON(m *model.Model) ([]byte, error) {
	doc := tokenDocument{
		DesignSystem: tokenSystem{
			Colors: tokenColors{
				Semantic:   make(map[string]colorToken),
				Variations: make(map[string]colorToken),
			},
			Typography: tokenTypography{
				FontFamilies: make(map[string]fontToken),
				FontSizes:    make(map[string]sizeToken),
			},
			Metadata: tokenMetadata{
				Source:    m.Source,
				Generator: "huespec",
				Version:   "1.0",
			},
		},
	}

	for _, role := range palette.RoleOrder() {
		c, ok := m.Colors.Roles[role]
		if !ok {
			continue
		}
		doc.DesignSystem.Colors.Semantic[string(role)] = colorToken{
			Value: c.Hex,
			OKLCH: c.Perceptual.CSS(),
			Alpha: c.RGBA.A,
			Type:  "color",
		}
	}

	for _, v := range m.Variations {
		name := fmt.Sprintf("%s-%s", v.Role, v.Name)
		doc.DesignSystem.Colors.Variations[name] = colorToken{
			Value: v.Hex,
			OKLCH: v.Perceptual.CSS(),
			Alpha: v.RGBA.A,
			Type:  "color",
		}
	}

	for _, c := range m.Colors.Extras {
		doc.DesignSystem.Colors.Palette = append(doc.DesignSystem.Colors.Palette, colorToken{
			Value: c.Hex,
			OKLCH: c.Perceptual.CSS(),
			Alpha: c.RGBA.A,
			Type:  "color",
		})
	}

	for _, role := range font.RoleOrder() {
		f, ok := m.Fonts.Roles[role]
		if !ok {
			continue
		}
		doc.DesignSystem.Typography.FontFamilies[string(role)] = fontToken{
			Value:    f.Stack,
			Category: string(f.Category),
			Type:     "fontFamily",
		}
	}

	for _, step := range m.Scale {
		doc.DesignSystem.Typography.FontSizes[step.Name] = sizeToken{
			Value: trimRem(step.Rem) + "rem",
			Fluid: step.Fluid,
			Type:  "fontSize",
		}
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling tokens: %w", err)
	}
	return append(out, '\n'), nil
}
