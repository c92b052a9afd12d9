// Package font normalizes raw font-family declarations into classified,
// render-safe stacks and assigns typographic roles.
package font

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnparsableFontStack is returned when a font-family declaration cannot
// be split into at least one family name.
var ErrUnparsableFontStack = errors.New("unparsable font stack")

// Category buckets a family for fallback selection.
type Category string

const (
	CategorySerif     Category = "serif"
	CategorySansSerif Category = "sans-serif"
	CategoryMonospace Category = "monospace"
	CategoryDisplay   Category = "display"
	CategoryUnknown   Category = "unknown"
)

// Role is a typographic slot in the design model.
type Role string

const (
	RoleBody      Role = "body"
	RoleHeading   Role = "heading"
	RoleMonospace Role = "monospace"
)

// roleOrder fixes iteration order wherever roles are emitted.
var roleOrder = []Role{RoleBody, RoleHeading, RoleMonospace}

// RoleOrder returns the fixed emission order for font roles.
func RoleOrder() []Role { return roleOrder }

// Sample is one raw font-family declaration with its source authority.
type Sample struct {
	Raw    string
	Weight int
}

// Classified is a normalized font stack: the preferred family, its
// category, and a fallback stack guaranteed to end in a generic family.
type Classified struct {
	Primary  string   `json:"primary"`
	Category Category `json:"category"`
	Stack    []string `json:"stack"`
	Weight   int      `json:"-"`
}

// Set maps roles to classified fonts. Roles without a qualifying stack
// are absent from the map.
type Set struct {
	Roles map[Role]*Classified `json:"roles"`
}

// Empty reports whether no role was assigned.
func (s Set) Empty() bool { return len(s.Roles) == 0 }

// ParseStack splits a font-family declaration into ordered family names.
// Quoted names are kept verbatim (minus the quotes); unquoted names are
// whitespace-trimmed. An unterminated quote or a declaration with no
// usable name fails with ErrUnparsableFontStack.
func ParseStack(raw string) ([]string, error) {
	var (
		families []string
		cur      strings.Builder
		quote    rune
	)

	// Interior spacing of quoted names survives; only the edges outside
	// the quotes are trimmed.
	flush := func() {
		if name := strings.TrimSpace(cur.String()); name != "" {
			families = append(families, name)
		}
		cur.Reset()
	}

	for _, r := range raw {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
		case r == ',':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	if quote != 0 {
		return nil, fmt.Errorf("%w: unterminated quote in %q", ErrUnparsableFontStack, raw)
	}
	flush()

	if len(families) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnparsableFontStack, raw)
	}
	return families, nil
}

// Normalize parses and classifies every sample, dropping malformed
// declarations with a log line. Stacks sharing a primary family fold
// together, summing weights. Order follows first appearance.
func Normalize(samples []Sample, log *slog.Logger) []Classified {
	if log == nil {
		log = slog.Default()
	}

	var out []Classified
	index := make(map[string]int)
	for _, s := range samples {
		c, err := Classify(s.Raw)
		if err != nil {
			log.Debug("skipping font sample", "raw", s.Raw, "error", err)
			continue
		}
		w := s.Weight
		if w < 1 {
			w = 1
		}
		key := strings.ToLower(c.Primary)
		if i, ok := index[key]; ok {
			out[i].Weight += w
			continue
		}
		c.Weight = w
		index[key] = len(out)
		out = append(out, c)
	}
	return out
}
