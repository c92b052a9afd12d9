package font

import "strings"

// genericCategories maps CSS generic family names to their category.
// system-ui and the ui-* generics behave like sans-serif for fallback
// purposes; cursive and fantasy bucket as display.
var genericCategories = map[string]Category{
	"serif":         CategorySerif,
	"sans-serif":    CategorySansSerif,
	"monospace":     CategoryMonospace,
	"cursive":       CategoryDisplay,
	"fantasy":       CategoryDisplay,
	"system-ui":     CategorySansSerif,
	"ui-sans-serif": CategorySansSerif,
	"ui-serif":      CategorySerif,
	"ui-monospace":  CategoryMonospace,
	"ui-rounded":    CategorySansSerif,
}

// Keyword tables for concrete family names. Matching is substring-based
// on the lowercased name, so "Roboto Mono" hits the monospace table
// before the sans table is consulted.
var (
	monospaceKeywords = []string{
		"mono", "consolas", "courier", "menlo", "inconsolata",
		"fira code", "source code", "jetbrains", "hack",
	}
	serifKeywords = []string{
		"georgia", "times", "garamond", "palatino", "baskerville",
		"cambria", "charter", "bookman", "didot", "rockwell",
		"merriweather", "playfair", "lora",
	}
	sansKeywords = []string{
		"arial", "helvetica", "verdana", "tahoma", "segoe", "calibri",
		"roboto", "open sans", "lato", "montserrat", "inter",
		"noto sans", "source sans", "futura", "gill sans", "geneva",
		"avenir", "nunito", "poppins", "ubuntu", "dejavu sans",
	}
	displayKeywords = []string{
		"impact", "comic sans", "papyrus", "brush", "script",
		"lobster", "pacifico", "display",
	}
)

// categoryOf classifies a single family name. Generic names resolve
// directly; concrete names go through the keyword tables, monospace
// first since names like "Liberation Mono" also contain sans keywords.
func categoryOf(name string) Category {
	lower := strings.ToLower(strings.TrimSpace(name))
	if cat, ok := genericCategories[lower]; ok {
		return cat
	}
	for _, kw := range monospaceKeywords {
		if strings.Contains(lower, kw) {
			return CategoryMonospace
		}
	}
	for _, kw := range serifKeywords {
		if strings.Contains(lower, kw) {
			return CategorySerif
		}
	}
	for _, kw := range sansKeywords {
		if strings.Contains(lower, kw) {
			return CategorySansSerif
		}
	}
	for _, kw := range displayKeywords {
		if strings.Contains(lower, kw) {
			return CategoryDisplay
		}
	}
	return CategoryUnknown
}

// isGeneric reports whether name is a CSS generic family.
func isGeneric(name string) bool {
	_, ok := genericCategories[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// genericFor picks the generic family appended to a stack of the given
// category. Display and unknown stacks get sans-serif, the safest
// render fallback.
func genericFor(cat Category) string {
	switch cat {
	case CategorySerif:
		return "serif"
	case CategoryMonospace:
		return "monospace"
	default:
		return "sans-serif"
	}
}

// Classify parses a font-family declaration and produces a classified,
// fallback-complete stack.
//
// The category comes from the first (preferred) family. When that name
// matches no keyword table, the rest of the stack is consulted: the
// category of the nearest classifiable neighbour, generics included,
// is adopted. A stack with no classifiable member stays unknown.
// Duplicate families collapse (first occurrence wins) and a generic is
// appended when the stack does not already end in one.
func Classify(raw string) (Classified, error) {
	families, err := ParseStack(raw)
	if err != nil {
		return Classified{}, err
	}

	seen := make(map[string]bool)
	stack := make([]string, 0, len(families))
	for _, f := range families {
		key := strings.ToLower(f)
		if seen[key] {
			continue
		}
		seen[key] = true
		stack = append(stack, f)
	}

	cat := categoryOf(stack[0])
	if cat == CategoryUnknown {
		for _, f := range stack[1:] {
			if c := categoryOf(f); c != CategoryUnknown {
				cat = c
				break
			}
		}
	}

	if !isGeneric(stack[len(stack)-1]) {
		generic := genericFor(cat)
		if !seen[generic] {
			stack = append(stack, generic)
		}
	}

	return Classified{
		Primary:  stack[0],
		Category: cat,
		Stack:    stack,
	}, nil
}

// Assign maps normalized stacks to typographic roles.
//
//   - body: the highest-weighted stack (first-seen wins ties).
//   - heading: the next stack with a distinct primary family that is
//     not monospace.
//   - monospace: the first monospace-category stack in weight order.
func Assign(fonts []Classified) Set {
	set := Set{Roles: make(map[Role]*Classified)}
	if len(fonts) == 0 {
		return set
	}

	ranked := make([]Classified, len(fonts))
	copy(ranked, fonts)
	// Stable sort by weight, descending; insertion keeps first-seen ties.
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].Weight > ranked[j-1].Weight; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}

	used := make([]bool, len(ranked))

	body := ranked[0]
	set.Roles[RoleBody] = &body
	used[0] = true

	for i, c := range ranked {
		if used[i] || c.Category == CategoryMonospace {
			continue
		}
		if strings.EqualFold(c.Primary, body.Primary) {
			continue
		}
		heading := c
		set.Roles[RoleHeading] = &heading
		used[i] = true
		break
	}

	// Monospace may double as body on code-heavy sites, so used entries
	// still qualify here.
	for _, c := range ranked {
		if c.Category != CategoryMonospace {
			continue
		}
		mono := c
		set.Roles[RoleMonospace] = &mono
		break
	}

	return set
}
