package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/palette"
)

// renderHTML converts the Markdown style guide into a standalone HTML
// preview page, styled with the extracted palette itself so the guide
// demonstrates the colours it documents.
func renderHTML(m *model.Model) ([]byte, error) {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	var body bytes.Buffer
	if err := md.Convert(renderMarkdown(m), &body); err != nil {
		return nil, fmt.Errorf("converting style guide: %w", err)
	}

	bg, fg := "#ffffff", "#111111"
	if c, ok := m.Colors.Roles[palette.RoleBackground]; ok {
		bg = c.Hex
	}
	if c, ok := m.Colors.Roles[palette.RoleText]; ok {
		fg = c.Hex
	}

	var page bytes.Buffer
	page.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	page.WriteString("<title>Style Guide</title>\n<style>\n")
	fmt.Fprintf(&page, "body { background: %s; color: %s; font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }\n", bg, fg)
	page.WriteString("table { border-collapse: collapse; margin: 1rem 0; }\n")
	page.WriteString("th, td { border: 1px solid currentColor; padding: 0.4rem 0.8rem; text-align: left; }\n")
	page.WriteString("code { font-family: monospace; }\n")
	page.WriteString("</style>\n</head>\n<body>\n")
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")

	return page.Bytes(), nil
}
