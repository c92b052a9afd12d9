package render

import (
	"fmt"
	"strings"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// renderCSS emits CSS custom properties plus utility classes. Role
// colours come out both as hex and as modern oklch() values, variants
// as -light/-dark/-hover/-active suffixes, leftover palette colours as
// a numbered sequence.
func renderCSS(m *model.Model) []byte {
	var b strings.Builder

	b.WriteString("/*\n * CSS variables and utilities\n")
	if m.Source != "" {
		fmt.Fprintf(&b, " * Generated from: %s\n", m.Source)
	}
	b.WriteString(" */\n\n:root {\n")

	b.WriteString("    /* Semantic colours */\n")
	for _, role := range palette.RoleOrder() {
		c, ok := m.Colors.Roles[role]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "    --color-%s: %s;\n", role, c.Hex)
		fmt.Fprintf(&b, "    --color-%s-oklch: %s;\n", role, c.Perceptual.CSS())
	}

	if len(m.Variations) > 0 {
		b.WriteString("\n    /* Derived variants */\n")
		for _, v := range m.Variations {
			fmt.Fprintf(&b, "    --color-%s-%s: %s;\n", v.Role, v.Name, v.Hex)
		}
	}

	if len(m.Colors.Extras) > 0 {
		b.WriteString("\n    /* Remaining palette */\n")
		for i, c := range m.Colors.Extras {
			fmt.Fprintf(&b, "    --palette-%d: %s;\n", i+1, c.Hex)
		}
	}

	if !m.Fonts.Empty() {
		b.WriteString("\n    /* Typography */\n")
		for _, role := range font.RoleOrder() {
			f, ok := m.Fonts.Roles[role]
			if !ok {
				continue
			}
			fmt.Fprintf(&b, "    --font-%s: %s;\n", role, cssFontStack(f.Stack))
		}
	}

	b.WriteString("\n    /* Fluid type scale */\n")
	for _, step := range m.Scale {
		fmt.Fprintf(&b, "    --font-size-%s: %s;\n", step.Name, step.Fluid)
		fmt.Fprintf(&b, "    --font-size-%s-static: %srem;\n", step.Name, trimRem(step.Rem))
	}
	b.WriteString("}\n")

	b.WriteString("\n/* Colour utilities */\n")
	for _, role := range palette.RoleOrder() {
		if _, ok := m.Colors.Roles[role]; !ok {
			continue
		}
		fmt.Fprintf(&b, ".bg-%s { background-color: var(--color-%s); }\n", role, role)
		fmt.Fprintf(&b, ".text-%s { color: var(--color-%s); }\n", role, role)
	}

	if !m.Fonts.Empty() {
		b.WriteString("\n/* Typography utilities */\n")
		for _, role := range font.RoleOrder() {
			if _, ok := m.Fonts.Roles[role]; !ok {
				continue
			}
			fmt.Fprintf(&b, ".font-%s { font-family: var(--font-%s); }\n", role, role)
		}
	}

	b.WriteString("\n/* Type scale utilities */\n")
	for _, step := range m.Scale {
		fmt.Fprintf(&b, ".text-%s { font-size: var(--font-size-%s); }\n", step.Name, step.Name)
	}

	return []byte(b.String())
}

// cssFontStack renders a family stack, quoting names with spaces.
func cssFontStack(stack []string) string {
	parts := make([]string, len(stack))
	for i, name := range stack {
		if strings.ContainsAny(name, " \t") {
			parts[i] = fmt.Sprintf("%q", name)
		} else {
			parts[i] = name
		}
	}
	return strings.Join(parts, ", ")
}

func trimRem(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
