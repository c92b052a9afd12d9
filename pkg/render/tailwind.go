package render

import (
	"fmt"
	"strings"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// renderTailwind emits a tailwind.config.js extending the theme with
// the extracted colours, font families and fluid type scale. Variant
// colours nest under their role as light/dark/hover/active keys with
// the base at DEFAULT.
func renderTailwind(m *model.Model) []byte {
	var b strings.Builder

	b.WriteString("// tailwind.config.js - generated design theme\n")
	if m.Source != "" {
		fmt.Fprintf(&b, "// Source: %s\n", m.Source)
	}
	b.WriteString("\nmodule.exports = {\n  theme: {\n    extend: {\n")

	variants := make(map[palette.Role][]string)
	for _, v := range m.Variations {
		variants[v.Role] = append(variants[v.Role],
			fmt.Sprintf("          %s: '%s',", v.Name, v.Hex))
	}

	b.WriteString("      colors: {\n")
	for _, role := range palette.RoleOrder() {
		c, ok := m.Colors.Roles[role]
		if !ok {
			continue
		}
		if lines, ok := variants[role]; ok {
			fmt.Fprintf(&b, "        %s: {\n          DEFAULT: '%s',\n%s\n        },\n",
				role, c.Hex, strings.Join(lines, "\n"))
		} else {
			fmt.Fprintf(&b, "        %s: '%s',\n", role, c.Hex)
		}
	}
	for i, c := range m.Colors.Extras {
		fmt.Fprintf(&b, "        'palette-%d': '%s',\n", i+1, c.Hex)
	}
	b.WriteString("      },\n")

	if !m.Fonts.Empty() {
		b.WriteString("      fontFamily: {\n")
		for _, role := range font.RoleOrder() {
			f, ok := m.Fonts.Roles[role]
			if !ok {
				continue
			}
			quoted := make([]string, len(f.Stack))
			for i, name := range f.Stack {
				quoted[i] = fmt.Sprintf("'%s'", name)
			}
			fmt.Fprintf(&b, "        %s: [%s],\n", role, strings.Join(quoted, ", "))
		}
		b.WriteString("      },\n")
	}

	b.WriteString("      fontSize: {\n")
	for _, step := range m.Scale {
		fmt.Fprintf(&b, "        '%s': '%s',\n", step.Name, step.Fluid)
	}
	b.WriteString("      },\n")

	b.WriteString("    }\n  },\n  plugins: []\n}\n")
	return []byte(b.String())
}
