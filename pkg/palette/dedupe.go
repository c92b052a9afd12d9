package palette

import (
	"sort"

	"github.com/huespec/huespec/pkg/color"
)

// Dedupe collapses near-duplicate colours and ranks the result.
//
// Two colours merge when their perceptual distance is below tolerance.
// A merged entry sums the frequency scores of its members and keeps the
// RGB of the highest-scored member (first-seen wins ties). The output is
// sorted descending by score with first-seen order breaking ties, and is
// stable under re-application: running Dedupe on its own output merges
// nothing further.
func Dedupe(colors []Canonical, tolerance float64) []Canonical {
	// Greedy clustering in first-seen order.
	out := make([]Canonical, 0, len(colors))
	for _, c := range colors {
		merged := false
		for i := range out {
			if color.Distance(out[i].Perceptual, c.Perceptual) < tolerance {
				mergeInto(&out[i], c)
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, c)
		}
	}

	// Representatives drift as members join, so clusters that started apart
	// can end up within tolerance of each other. Collapse until stable; this
	// is what makes the operation idempotent.
	for {
		changed := false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out); j++ {
				if color.Distance(out[i].Perceptual, out[j].Perceptual) < tolerance {
					mergeInto(&out[i], out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
					break
				}
			}
		}
		if !changed {
			break
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// mergeInto folds src into dst: scores accumulate, the background flag is
// sticky, and the representative RGB switches only when src's member
// outweighs dst's current representative (strictly, so first-seen wins ties).
func mergeInto(dst *Canonical, src Canonical) {
	if src.repScore > dst.repScore {
		dst.RGBA = src.RGBA
		dst.Hex = src.Hex
		dst.Perceptual = src.Perceptual
		dst.repScore = src.repScore
	}
	dst.Score += src.Score
	dst.Background = dst.Background || src.Background
}
