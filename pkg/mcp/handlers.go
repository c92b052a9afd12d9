package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/huespec/huespec/pkg/model"
	"github.com/huespec/huespec/pkg/render"
)

// modelFor returns the design model for url, extracting the page on a
// cache miss. Cached models are shared across tools so an agent can
// drill into palette, fonts and scale without re-fetching the site.
func (s *Server) modelFor(ctx context.Context, url string) (*model.Model, error) {
	if m, ok := s.cache.Get(url); ok {
		return m, nil
	}

	result, err := s.collector.CollectURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("extracting %s: %w", url, err)
	}

	m := model.Build(result.Colors, result.Fonts, s.opts, s.logger)
	m.Source = url
	s.cache.Add(url, m)
	return m, nil
}

func urlArg(req mcp.CallToolRequest) (string, error) {
	url, err := req.RequireString("url")
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("url must not be empty")
	}
	return url, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleExtractSite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Force a fresh extraction so agents can pick up site changes.
	s.cache.Remove(url)

	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]any{
		"url":        url,
		"colors":     len(m.Colors.Roles) + len(m.Colors.Extras),
		"variations": len(m.Variations),
		"fonts":      len(m.Fonts.Roles),
		"scaleSteps": len(m.Scale),
	})
}

func (s *Server) handleGetModel(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m)
}

func (s *Server) handleGetPalette(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m.Colors)
}

func (s *Server) handleGetVariations(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m.Variations)
}

func (s *Server) handleGetFonts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m.Fonts)
}

func (s *Server) handleGetTypeScale(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(m.Scale)
}

func (s *Server) handleRenderArtifact(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := urlArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	formatArg, err := req.RequireString("format")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := render.ParseFormat(formatArg)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	m, err := s.modelFor(ctx, url)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	out, err := render.Render(m, format)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}
