// Package palette turns raw colour samples into a ranked, deduplicated,
// semantically classified colour set with derived variations.
package palette

import (
	"log/slog"

	"github.com/huespec/huespec/pkg/color"
)

// Sample is one raw colour declaration gathered by a collector, with the
// authority weight the collector assigned to its source.
type Sample struct {
	Raw        string `json:"raw"`
	Weight     int    `json:"weight"`
	Count      int    `json:"count"`
	Background bool   `json:"background,omitempty"`
}

// Canonical is a colour normalized to RGB+alpha plus its perceptual
// coordinates and accumulated frequency score.
type Canonical struct {
	RGBA       color.RGBA  `json:"rgba"`
	Hex        string      `json:"hex"`
	Perceptual color.OKLCH `json:"oklch"`
	Score      int         `json:"score"`
	Background bool        `json:"background,omitempty"`

	// repScore is the score of the member whose RGB currently represents
	// a merged entry. Only meaningful during deduplication.
	repScore int
}

// Role is a design-meaning label assigned to exactly one colour.
type Role string

const (
	RoleBackground Role = "background"
	RoleText       Role = "text"
	RolePrimary    Role = "primary"
	RoleSecondary  Role = "secondary"
	RoleAccent     Role = "accent"
)

// roleOrder fixes the iteration order over roles so derived artefacts are
// deterministic.
var roleOrder = []Role{RoleBackground, RoleText, RolePrimary, RoleSecondary, RoleAccent}

// RoleOrder returns the fixed emission order for colour roles.
func RoleOrder() []Role { return roleOrder }

// SemanticSet maps roles to canonical colours. Colours that earned no role
// are retained in Extras, preserving rank order.
type SemanticSet struct {
	Roles  map[Role]*Canonical `json:"roles"`
	Extras []Canonical         `json:"extras,omitempty"`
}

// Empty reports whether no role was assigned and no extras remain.
func (s SemanticSet) Empty() bool {
	return len(s.Roles) == 0 && len(s.Extras) == 0
}

// Options holds the tunable constants of deduplication, classification,
// and variation generation. The thresholds have no single canonical value;
// DefaultOptions documents the defaults used when callers do not override.
type Options struct {
	// DedupeTolerance is the OKLab distance below which two colours merge.
	DedupeTolerance float64 `yaml:"dedupe_tolerance" json:"dedupe_tolerance"`
	// HueSeparation is the minimum angular distance in degrees between the
	// hues of distinct accent-like roles.
	HueSeparation float64 `yaml:"hue_separation" json:"hue_separation"`
	// ExtremeLightness marks how close to 0 or 1 a lightness must be for a
	// colour to qualify as a background candidate.
	ExtremeLightness float64 `yaml:"extreme_lightness" json:"extreme_lightness"`
	// LightDelta is the lightness offset of the light/dark variants.
	LightDelta float64 `yaml:"light_delta" json:"light_delta"`
	// HoverDelta is the smaller symmetric offset of hover/active variants.
	HoverDelta float64 `yaml:"hover_delta" json:"hover_delta"`
}

// DefaultOptions returns the documented default tuning.
func DefaultOptions() Options {
	return Options{
		DedupeTolerance:  0.02,
		HueSeparation:    30,
		ExtremeLightness: 0.15,
		LightDelta:       0.15,
		HoverDelta:       0.08,
	}
}

// Normalize parses raw samples into canonical colours in input order.
// Unparsable samples are logged and dropped, never fatal.
func Normalize(samples []Sample, log *slog.Logger) []Canonical {
	if log == nil {
		log = slog.Default()
	}

	out := make([]Canonical, 0, len(samples))
	for _, s := range samples {
		rgba, err := color.Parse(s.Raw)
		if err != nil {
			log.Warn("dropping unparsable color sample", "raw", s.Raw, "error", err)
			continue
		}

		count := s.Count
		if count < 1 {
			count = 1
		}
		weight := s.Weight
		if weight < 1 {
			weight = 1
		}

		score := weight * count
		out = append(out, Canonical{
			RGBA:       rgba,
			Hex:        rgba.Hex(),
			Perceptual: color.ToOKLCH(rgba),
			Score:      score,
			Background: s.Background,
			repScore:   score,
		})
	}
	return out
}
