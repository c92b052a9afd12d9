package mcp

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huespec/huespec/pkg/render"
)

func extractSiteTool() mcp.Tool {
	return mcp.NewTool("extract_site",
		mcp.WithDescription("Extract the visual identity of a web page and cache the resulting design model. Returns a summary of what was found."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract, e.g. https://example.com"),
		),
	)
}

func getModelTool() mcp.Tool {
	return mcp.NewTool("get_model",
		mcp.WithDescription("Return the complete design model for a page: semantic colours, variants, font roles and the fluid type scale."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
	)
}

func getPaletteTool() mcp.Tool {
	return mcp.NewTool("get_palette",
		mcp.WithDescription("Return the semantic colour palette of a page (background, text, primary, secondary, accent plus extras)."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
	)
}

func getVariationsTool() mcp.Tool {
	return mcp.NewTool("get_variations",
		mcp.WithDescription("Return derived colour variants (light, dark, hover, active) for the interactive palette roles of a page."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
	)
}

func getFontsTool() mcp.Tool {
	return mcp.NewTool("get_fonts",
		mcp.WithDescription("Return the classified font roles of a page (body, heading, monospace) with full fallback stacks."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
	)
}

func getTypeScaleTool() mcp.Tool {
	return mcp.NewTool("get_type_scale",
		mcp.WithDescription("Return the fluid typographic scale (static rem sizes and CSS clamp() expressions) for a page."),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
	)
}

func renderArtifactTool() mcp.Tool {
	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}
	return mcp.NewTool("render_artifact",
		mcp.WithDescription(fmt.Sprintf("Render the design model of a page as an output artifact. Formats: %s.", strings.Join(formats, ", "))),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("Page URL to extract"),
		),
		mcp.WithString("format",
			mcp.Required(),
			mcp.Description("Output format, one of: "+strings.Join(formats, ", ")),
		),
	)
}
