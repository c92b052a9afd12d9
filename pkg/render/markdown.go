package render

import (
	"fmt"
	"strings"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// renderMarkdown emits the style guide as a GFM document. The HTML
// preview renderer feeds on this output.
func renderMarkdown(m *model.Model) []byte {
	var b strings.Builder

	b.WriteString("# Style Guide\n\n")
	if m.Source != "" {
		fmt.Fprintf(&b, "Extracted from <%s>.\n\n", m.Source)
	}

	b.WriteString("## Colour Palette\n\n")
	if m.Colors.Empty() {
		b.WriteString("No colours were extracted.\n\n")
	} else {
		b.WriteString("| Role | Hex | OKLCH |\n|------|-----|-------|\n")
		for _, role := range palette.RoleOrder() {
			c, ok := m.Colors.Roles[role]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | `%s` | `%s` |\n", role, c.Hex, c.Perceptual.CSS())
		}
		for i, c := range m.Colors.Extras {
			fmt.Fprintf(&b, "| palette-%d | `%s` | `%s` |\n", i+1, c.Hex, c.Perceptual.CSS())
		}
		b.WriteString("\n")
	}

	if len(m.Variations) > 0 {
		b.WriteString("## Colour Variants\n\n")
		b.WriteString("| Base | Variant | Hex |\n|------|---------|-----|\n")
		for _, v := range m.Variations {
			fmt.Fprintf(&b, "| %s | %s | `%s` |\n", v.Role, v.Name, v.Hex)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Typography\n\n")
	if m.Fonts.Empty() {
		b.WriteString("No fonts were extracted.\n\n")
	} else {
		b.WriteString("| Role | Family | Category | Stack |\n|------|--------|----------|-------|\n")
		for _, role := range font.RoleOrder() {
			f, ok := m.Fonts.Roles[role]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "| %s | %s | %s | `%s` |\n",
				role, f.Primary, f.Category, cssFontStack(f.Stack))
		}
		b.WriteString("\n")
	}

	b.WriteString("## Type Scale\n\n")
	b.WriteString("| Step | Static | Fluid |\n|------|--------|-------|\n")
	for _, step := range m.Scale {
		fmt.Fprintf(&b, "| %s | %srem | `%s` |\n", step.Name, trimRem(step.Rem), step.Fluid)
	}

	return []byte(b.String())
}
