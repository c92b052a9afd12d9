package mcp

import (
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/mark3labs/mcp-go/server"

	"github.com/huespec/huespec/pkg/collector"
	"github.com/huespec/huespec/pkg/mcplog"
	"github.com/huespec/huespec/pkg/model"
)

const serverVersion = "0.1.0-dev"

// modelCacheSize bounds how many extracted sites stay resident. Agents
// typically iterate on one or two sites per session.
const modelCacheSize = 16

// Server exposes design-model extraction and rendering tools over MCP.
type Server struct {
	mcpServer *server.MCPServer
	collector *collector.Collector
	opts      model.Options
	cache     *lru.Cache[string, *model.Model]
	calls     *mcplog.Logger // may be nil when call logging is disabled
	logger    *slog.Logger
}

// NewServer creates an MCP server backed by the given collector. calls
// may be nil to disable per-call JSONL logging.
func NewServer(col *collector.Collector, opts model.Options, calls *mcplog.Logger, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cache, err := lru.New[string, *model.Model](modelCacheSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		collector: col,
		opts:      opts,
		cache:     cache,
		calls:     calls,
		logger:    logger,
	}

	var serverOpts []server.ServerOption
	serverOpts = append(serverOpts,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	if calls != nil {
		serverOpts = append(serverOpts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("huespec", serverVersion, serverOpts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: extractSiteTool(), Handler: s.handleExtractSite},
		server.ServerTool{Tool: getModelTool(), Handler: s.handleGetModel},
		server.ServerTool{Tool: getPaletteTool(), Handler: s.handleGetPalette},
		server.ServerTool{Tool: getVariationsTool(), Handler: s.handleGetVariations},
		server.ServerTool{Tool: getFontsTool(), Handler: s.handleGetFonts},
		server.ServerTool{Tool: getTypeScaleTool(), Handler: s.handleGetTypeScale},
		server.ServerTool{Tool: renderArtifactTool(), Handler: s.handleRenderArtifact},
	)

	return s, nil
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
