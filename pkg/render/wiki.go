package render

import (
	"fmt"
	"strings"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// renderMediaWiki emits a style-guide page with colour swatch tables
// and font documentation in MediaWiki markup.
func renderMediaWiki(m *model.Model) []byte {
	var b strings.Builder

	b.WriteString("= Style Guide =\n\n")
	if m.Source != "" {
		fmt.Fprintf(&b, "Extracted from [%s %s].\n\n", m.Source, m.Source)
	}

	b.WriteString("== Colour Palette ==\n\n")
	b.WriteString("{| class=\"wikitable\"\n")
	b.WriteString("! Role !! Swatch !! Hex !! OKLCH\n")
	for _, role := range palette.RoleOrder() {
		c, ok := m.Colors.Roles[role]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "|-\n| %s || style=\"background:%s\" | || <code>%s</code> || <code>%s</code>\n",
			role, c.Hex, c.Hex, c.Perceptual.CSS())
	}
	for i, c := range m.Colors.Extras {
		fmt.Fprintf(&b, "|-\n| palette-%d || style=\"background:%s\" | || <code>%s</code> || <code>%s</code>\n",
			i+1, c.Hex, c.Hex, c.Perceptual.CSS())
	}
	b.WriteString("|}\n\n")

	if len(m.Variations) > 0 {
		b.WriteString("== Colour Variants ==\n\n")
		b.WriteString("{| class=\"wikitable\"\n")
		b.WriteString("! Base !! Variant !! Swatch !! Hex\n")
		for _, v := range m.Variations {
			fmt.Fprintf(&b, "|-\n| %s || %s || style=\"background:%s\" | || <code>%s</code>\n",
				v.Role, v.Name, v.Hex, v.Hex)
		}
		b.WriteString("|}\n\n")
	}

	b.WriteString("== Typography ==\n\n")
	if m.Fonts.Empty() {
		b.WriteString("No fonts were extracted.\n\n")
	} else {
		b.WriteString("{| class=\"wikitable\"\n")
		b.WriteString("! Role !! Family !! Category !! Stack\n")
		for _, role := range font.RoleOrder() {
			f, ok := m.Fonts.Roles[role]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "|-\n| %s || %s || %s || <code>%s</code>\n",
				role, f.Primary, f.Category, cssFontStack(f.Stack))
		}
		b.WriteString("|}\n\n")
	}

	b.WriteString("== Type Scale ==\n\n")
	b.WriteString("{| class=\"wikitable\"\n")
	b.WriteString("! Step !! Static !! Fluid\n")
	for _, step := range m.Scale {
		fmt.Fprintf(&b, "|-\n| %s || %srem || <code>%s</code>\n",
			step.Name, trimRem(step.Rem), step.Fluid)
	}
	b.WriteString("|}\n")

	return []byte(b.String())
}
