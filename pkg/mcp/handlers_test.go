package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huespec/huespec/pkg/collector"
	"github.com/huespec/huespec/pkg/model"
)

// --- helpers ---

const testPage = `<!DOCTYPE html>
<html>
<head>
<link rel="stylesheet" href="/main.css">
<style>
body { background-color: #0d1117; color: #c9d1d9; font-family: "Segoe UI", Arial, sans-serif; }
</style>
</head>
<body>
<div style="color: #58a6ff">hello</div>
</body>
</html>`

const testCSS = `
.btn { background-color: #cc2200; }
.btn-alt { color: #2266cc; }
code { font-family: Consolas, monospace; }
`

func testSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(testPage))
	})
	mux.HandleFunc("/main.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css")
		_, _ = w.Write([]byte(testCSS))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T) *Server {
	t.Helper()
	col := collector.New(nil)
	t.Cleanup(func() { _ = col.Close() })

	s, err := NewServer(col, model.DefaultOptions(), nil, nil)
	require.NoError(t, err)
	return s
}

func callTool(t *testing.T, s *Server, req mcp.CallToolRequest) *mcp.CallToolResult {
	t.Helper()
	var handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

	switch req.Params.Name {
	case "extract_site":
		handler = s.handleExtractSite
	case "get_model":
		handler = s.handleGetModel
	case "get_palette":
		handler = s.handleGetPalette
	case "get_variations":
		handler = s.handleGetVariations
	case "get_fonts":
		handler = s.handleGetFonts
	case "get_type_scale":
		handler = s.handleGetTypeScale
	case "render_artifact":
		handler = s.handleRenderArtifact
	default:
		t.Fatalf("unknown tool: %s", req.Params.Name)
	}

	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func makeRequest(toolName string, args map[string]any) mcp.CallToolRequest {
	var arguments any
	if args != nil {
		arguments = args
	}
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      toolName,
			Arguments: arguments,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return textContent.Text
}

// --- extract_site ---

func TestHandleExtractSite(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("extract_site", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &summary))
	assert.Equal(t, srv.URL, summary["url"])
	assert.Greater(t, summary["colors"].(float64), float64(0))
	assert.Greater(t, summary["fonts"].(float64), float64(0))
	assert.Equal(t, float64(7), summary["scaleSteps"])
}

func TestHandleExtractSite_MissingURL(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("extract_site", nil))
	assert.True(t, result.IsError)
}

func TestHandleExtractSite_UnreachableSite(t *testing.T) {
	s := testServer(t)
	result := callTool(t, s, makeRequest("extract_site", map[string]any{
		"url": "http://127.0.0.1:1/nothing",
	}))
	assert.True(t, result.IsError)
}

// --- get_model ---

func TestHandleGetModel(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("get_model", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &m))
	assert.Equal(t, srv.URL, m["source"])
	assert.Contains(t, m, "colors")
	assert.Contains(t, m, "fonts")
	assert.Contains(t, m, "scale")
}

// --- get_palette ---

func TestHandleGetPalette(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("get_palette", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var colors map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &colors))
	roles := colors["roles"].(map[string]any)
	bg := roles["background"].(map[string]any)
	assert.Equal(t, "#0d1117", bg["hex"])
}

// --- get_variations ---

func TestHandleGetVariations(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("get_variations", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var variants []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &variants))
	assert.NotEmpty(t, variants)
}

// --- get_fonts ---

func TestHandleGetFonts(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("get_fonts", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var fonts map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &fonts))
	roles := fonts["roles"].(map[string]any)
	body := roles["body"].(map[string]any)
	assert.Equal(t, "Segoe UI", body["primary"])
	mono := roles["monospace"].(map[string]any)
	assert.Equal(t, "Consolas", mono["primary"])
}

// --- get_type_scale ---

func TestHandleGetTypeScale(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("get_type_scale", map[string]any{"url": srv.URL}))
	assert.False(t, result.IsError)

	var steps []map[string]any
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &steps))
	require.Len(t, steps, 7)
	assert.Equal(t, "base", steps[2]["name"])
	assert.Contains(t, steps[2]["fluid"], "clamp(")
}

// --- render_artifact ---

func TestHandleRenderArtifact_CSS(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("render_artifact", map[string]any{
		"url":    srv.URL,
		"format": "css",
	}))
	assert.False(t, result.IsError)

	css := resultText(t, result)
	assert.Contains(t, css, "--color-background: #0d1117;")
	assert.Contains(t, css, "--font-size-base: clamp(")
}

func TestHandleRenderArtifact_UnknownFormat(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("render_artifact", map[string]any{
		"url":    srv.URL,
		"format": "docx",
	}))
	assert.True(t, result.IsError)
}

func TestHandleRenderArtifact_MissingFormat(t *testing.T) {
	srv := testSite(t)
	s := testServer(t)

	result := callTool(t, s, makeRequest("render_artifact", map[string]any{"url": srv.URL}))
	assert.True(t, result.IsError)
}

// --- caching ---

func TestModelFor_CachesPerURL(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body style="background: #112233"></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := testServer(t)

	for i := 0; i < 3; i++ {
		result := callTool(t, s, makeRequest("get_palette", map[string]any{"url": srv.URL}))
		assert.False(t, result.IsError)
	}
	assert.Equal(t, 1, hits)
}

func TestHandleExtractSite_RefreshesCache(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`<html><body style="background: #112233"></body></html>`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	s := testServer(t)

	callTool(t, s, makeRequest("get_palette", map[string]any{"url": srv.URL}))
	require.Equal(t, 1, hits)

	// extract_site bypasses the cache.
	callTool(t, s, makeRequest("extract_site", map[string]any{"url": srv.URL}))
	assert.Equal(t, 2, hits)
}
