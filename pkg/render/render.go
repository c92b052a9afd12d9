// Package render turns a design model into concrete artefacts: CSS
// variables, design-token JSON, a Tailwind config, MediaWiki and
// Markdown style guides, and an HTML preview. Renderers are pure
// functions of the model.
package render

import (
	"fmt"
	"strings"

	"github.com/huespec/huespec/pkg/model"
)

// Format identifies an output artefact.
type Format string

const (
	FormatCSS       Format = "css"
	FormatJSON      Format = "json"
	FormatTailwind  Format = "tailwind"
	FormatMediaWiki Format = "mediawiki"
	FormatMarkdown  Format = "markdown"
	FormatHTML      Format = "html"
)

// Formats returns every supported format in emission order.
func Formats() []Format {
	return []Format{
		FormatCSS, FormatJSON, FormatTailwind,
		FormatMediaWiki, FormatMarkdown, FormatHTML,
	}
}

// ParseFormat resolves a format name, accepting a few common aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "css":
		return FormatCSS, nil
	case "json", "tokens":
		return FormatJSON, nil
	case "tailwind":
		return FormatTailwind, nil
	case "mediawiki", "wiki":
		return FormatMediaWiki, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "preview":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// FileName returns the conventional output file name for a format.
func FileName(f Format) string {
	switch f {
	case FormatCSS:
		return "styles.css"
	case FormatJSON:
		return "tokens.json"
	case FormatTailwind:
		return "tailwind.config.js"
	case FormatMediaWiki:
		return "styleguide.wiki"
	case FormatMarkdown:
		return "styleguide.md"
	case FormatHTML:
		return "preview.html"
	}
	return string(f) + ".txt"
}

// Render produces the artefact for one format.
func Render(m *model.Model, f Format) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("nil model")
	}
	switch f {
	case FormatCSS:
		return renderCSS(m), nil
	case FormatJSON:
		return renderJSON(m)
	case FormatTailwind:
		return renderTailwind(m), nil
	case FormatMediaWiki:
		return renderMediaWiki(m), nil
	case FormatMarkdown:
		return renderMarkdown(m), nil
	case FormatHTML:
		return renderHTML(m)
	}
	return nil, fmt.Errorf("unknown format %q", f)
}
