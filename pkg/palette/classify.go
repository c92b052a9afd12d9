package palette

import (
	"math"

	"github.com/huespec/huespec/pkg/color"
)

// minChromaForHue is the chroma below which a colour is considered
// achromatic: its hue coordinate is numerical noise and must not
// participate in hue-separation decisions.
const minChromaForHue = 0.02

// Classify assigns semantic roles to a ranked, deduplicated colour list.
//
// The heuristics, in order:
//   - background: a collector-flagged sample wins outright; otherwise the
//     highest-scored colour whose lightness is extreme (near 0 or 1);
//     otherwise the top-ranked colour.
//   - text: the remaining colour maximizing score x lightness-contrast
//     against the background.
//   - primary/secondary/accent: remaining colours in rank order whose hue
//     clears the configured separation from already-assigned hues; when
//     fewer than three qualify, the next-ranked colours fill in regardless.
//
// Everything unassigned lands in Extras in rank order. An empty input
// yields an empty set, not an error.
func Classify(ranked []Canonical, opts Options) SemanticSet {
	set := SemanticSet{Roles: make(map[Role]*Canonical)}
	if len(ranked) == 0 {
		return set
	}

	assigned := make([]bool, len(ranked))

	bg := pickBackground(ranked, opts)
	if bg >= 0 {
		c := ranked[bg]
		set.Roles[RoleBackground] = &c
		assigned[bg] = true
	}

	if txt := pickText(ranked, assigned, set.Roles[RoleBackground]); txt >= 0 {
		c := ranked[txt]
		set.Roles[RoleText] = &c
		assigned[txt] = true
	}

	assignAccents(ranked, assigned, &set, opts)

	for i, c := range ranked {
		if !assigned[i] {
			set.Extras = append(set.Extras, c)
		}
	}
	return set
}

func pickBackground(ranked []Canonical, opts Options) int {
	// A collector flag (computed body background) overrides raw frequency.
	best := -1
	for i, c := range ranked {
		if c.Background && (best < 0 || c.Score > ranked[best].Score) {
			best = i
		}
	}
	if best >= 0 {
		return best
	}

	// Extreme lightness candidates, highest score first (rank order is
	// already score-descending, so the first match wins).
	for i, c := range ranked {
		if c.Perceptual.L >= 1-opts.ExtremeLightness || c.Perceptual.L <= opts.ExtremeLightness {
			return i
		}
	}

	// Nothing extreme: fall back to the dominant colour.
	return 0
}

func pickText(ranked []Canonical, assigned []bool, bg *Canonical) int {
	if bg == nil {
		return -1
	}

	best, bestScore := -1, 0.0
	for i, c := range ranked {
		if assigned[i] {
			continue
		}
		contrast := math.Abs(c.Perceptual.L - bg.Perceptual.L)
		s := float64(c.Score) * contrast
		if s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

func assignAccents(ranked []Canonical, assigned []bool, set *SemanticSet, opts Options) {
	accentRoles := []Role{RolePrimary, RoleSecondary, RoleAccent}
	next := 0

	assignedHues := func() []float64 {
		var hues []float64
		for _, role := range roleOrder {
			if c, ok := set.Roles[role]; ok && c.Perceptual.C >= minChromaForHue {
				hues = append(hues, c.Perceptual.H)
			}
		}
		return hues
	}

	// First pass: demand hue distinctness. Achromatic colours carry no
	// usable hue, so they only qualify in the relaxed pass.
	for i, c := range ranked {
		if next >= len(accentRoles) {
			return
		}
		if assigned[i] || c.Perceptual.C < minChromaForHue {
			continue
		}
		distinct := true
		for _, h := range assignedHues() {
			if color.HueDelta(c.Perceptual.H, h) < opts.HueSeparation {
				distinct = false
				break
			}
		}
		if distinct {
			cc := c
			set.Roles[accentRoles[next]] = &cc
			assigned[i] = true
			next++
		}
	}

	// Relaxed pass: fewer qualifying hues than roles, reuse the next-ranked
	// colours regardless of separation.
	for i, c := range ranked {
		if next >= len(accentRoles) {
			return
		}
		if assigned[i] {
			continue
		}
		cc := c
		set.Roles[accentRoles[next]] = &cc
		assigned[i] = true
		next++
	}
}
