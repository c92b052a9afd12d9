// Package scale generates fluid typographic scales: geometric static
// sizes paired with viewport-responsive CSS clamp expressions.
package scale

import (
	"fmt"
	"math"
)

// Step is one named entry of a type scale. Rem is the static fallback
// size; Min/Max bound the fluid range and Fluid is the full clamp
// expression.
type Step struct {
	Name  string  `json:"name"`
	Rem   float64 `json:"rem"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Fluid string  `json:"fluid"`
}

// Options are the scale tunables. Zero values fall back to defaults,
// so Options{} behaves like DefaultOptions().
type Options struct {
	// BaseRem is the size of the "base" step in rem.
	BaseRem float64 `yaml:"base_rem" json:"base_rem"`
	// Ratio multiplies successive static steps.
	Ratio float64 `yaml:"ratio" json:"ratio"`
	// MinRatio and MaxRatio produce the fluid lower and upper bounds.
	// MinRatio < Ratio < MaxRatio.
	MinRatio float64 `yaml:"min_ratio" json:"min_ratio"`
	MaxRatio float64 `yaml:"max_ratio" json:"max_ratio"`
	// Steps is the total step count; BaseIndex is the zero-based index
	// of the base step within it.
	Steps     int `yaml:"steps" json:"steps"`
	BaseIndex int `yaml:"base_index" json:"base_index"`
	// ViewportMinPx and ViewportMaxPx bound the interpolation range of
	// the fluid preferred term.
	ViewportMinPx float64 `yaml:"viewport_min_px" json:"viewport_min_px"`
	ViewportMaxPx float64 `yaml:"viewport_max_px" json:"viewport_max_px"`
}

// DefaultOptions returns a seven-step scale (xs through 3xl) on a 1rem
// base with a major-third ratio, interpolated between 320px and 1280px.
func DefaultOptions() Options {
	return Options{
		BaseRem:       1.0,
		Ratio:         1.25,
		MinRatio:      1.2,
		MaxRatio:      1.333,
		Steps:         7,
		BaseIndex:     2,
		ViewportMinPx: 320,
		ViewportMaxPx: 1280,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BaseRem <= 0 {
		o.BaseRem = d.BaseRem
	}
	if o.Ratio <= 1 {
		o.Ratio = d.Ratio
	}
	if o.MinRatio <= 1 {
		o.MinRatio = d.MinRatio
	}
	if o.MaxRatio <= 1 {
		o.MaxRatio = d.MaxRatio
	}
	if o.Steps <= 0 {
		o.Steps = d.Steps
		o.BaseIndex = d.BaseIndex
	}
	if o.BaseIndex < 0 || o.BaseIndex >= o.Steps {
		o.BaseIndex = 0
	}
	if o.ViewportMinPx <= 0 || o.ViewportMaxPx <= o.ViewportMinPx {
		o.ViewportMinPx = d.ViewportMinPx
		o.ViewportMaxPx = d.ViewportMaxPx
	}
	return o
}

// Generate builds the scale. Static sizes grow geometrically from the
// base step and are rounded to three decimals. Each step's fluid bounds
// come from re-deriving the step at MinRatio and MaxRatio; for steps
// below the base a smaller ratio yields the LARGER value, so bounds are
// ordered after derivation. The preferred term interpolates linearly
// across the viewport range, which keeps min <= static <= max when all
// three are evaluated at the baseline viewport.
func Generate(opts Options) []Step {
	opts = opts.withDefaults()

	vwMinRem := opts.ViewportMinPx / 16
	vwMaxRem := opts.ViewportMaxPx / 16

	steps := make([]Step, 0, opts.Steps)
	for i := 0; i < opts.Steps; i++ {
		exp := float64(i - opts.BaseIndex)
		static := round3(opts.BaseRem * math.Pow(opts.Ratio, exp))
		a := round3(opts.BaseRem * math.Pow(opts.MinRatio, exp))
		b := round3(opts.BaseRem * math.Pow(opts.MaxRatio, exp))
		lo, hi := math.Min(a, b), math.Max(a, b)

		// size(v) = lo + slope*(v - vwMinRem), rewritten as rem + vw terms.
		slope := (hi - lo) / (vwMaxRem - vwMinRem)
		intercept := lo - slope*vwMinRem
		fluid := fmt.Sprintf("clamp(%srem, %srem + %svw, %srem)",
			trimNum(lo), trimNum(round4(intercept)), trimNum(round4(slope*100)), trimNum(hi))

		steps = append(steps, Step{
			Name:  stepName(i - opts.BaseIndex),
			Rem:   static,
			Min:   lo,
			Max:   hi,
			Fluid: fluid,
		})
	}
	return steps
}

// stepName maps a signed offset from the base step to a Tailwind-style
// size name: ... 2xs, xs, sm, base, lg, xl, 2xl ...
func stepName(offset int) string {
	switch {
	case offset == 0:
		return "base"
	case offset == -1:
		return "sm"
	case offset == -2:
		return "xs"
	case offset < -2:
		return fmt.Sprintf("%dxs", -offset-1)
	case offset == 1:
		return "lg"
	case offset == 2:
		return "xl"
	default:
		return fmt.Sprintf("%dxl", offset-1)
	}
}

func round3(v float64) float64 { return math.Round(v*1000) / 1000 }
func round4(v float64) float64 { return math.Round(v*10000) / 10000 }

// trimNum formats a rounded value without trailing zeros, matching how
// hand-written stylesheets spell sizes (1rem, 1.25rem, 0.8rem).
func trimNum(v float64) string {
	s := fmt.Sprintf("%.4f", v)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
