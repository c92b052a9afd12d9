// Package model assembles the design model: the semantic colour set,
// its variations, classified fonts, and the type scale, built once per
// extraction by a sequential pipeline.
package model

import (
	"log/slog"

	"github.com/huespec/huespec/pkg/font"
	"github.com/huespec/huespec/pkg/palette"
	"github.com/huespec/huespec/pkg/scale"
)

// Model is the aggregate root consumed by every renderer and MCP tool.
// It is read-only after Build returns.
type Model struct {
	Source     string             `json:"source,omitempty"`
	Colors     palette.SemanticSet `json:"colors"`
	Variations []palette.Variant  `json:"variations,omitempty"`
	Fonts      font.Set           `json:"fonts"`
	Scale      []scale.Step       `json:"scale"`
}

// Options collects every tunable of the pipeline. The zero value is not
// usable directly; start from DefaultOptions.
type Options struct {
	Palette palette.Options
	Scale   scale.Options
}

// DefaultOptions returns the documented defaults for every stage.
func DefaultOptions() Options {
	return Options{
		Palette: palette.DefaultOptions(),
		Scale:   scale.DefaultOptions(),
	}
}

// Build runs the full pipeline. Malformed samples are logged and
// skipped; empty inputs produce a valid empty model whose type scale is
// still generated. Given the same sample sequences the result is
// identical across runs.
func Build(colorSamples []palette.Sample, fontSamples []font.Sample, opts Options, log *slog.Logger) *Model {
	if log == nil {
		log = slog.Default()
	}

	ranked := palette.Dedupe(palette.Normalize(colorSamples, log), opts.Palette.DedupeTolerance)
	colors := palette.Classify(ranked, opts.Palette)
	variations := palette.Variations(colors, opts.Palette)

	fonts := font.Assign(font.Normalize(fontSamples, log))

	m := &Model{
		Colors:     colors,
		Variations: variations,
		Fonts:      fonts,
		Scale:      scale.Generate(opts.Scale),
	}

	log.Debug("design model built",
		"colors", len(ranked),
		"roles", len(colors.Roles),
		"extras", len(colors.Extras),
		"fonts", len(fonts.Roles),
		"scale_steps", len(m.Scale))
	return m
}

// Empty reports whether the model carries no extracted colours or fonts.
// The type scale alone does not count, since it is always generated.
func (m *Model) Empty() bool {
	return m.Colors.Empty() && m.Fonts.Empty()
}
