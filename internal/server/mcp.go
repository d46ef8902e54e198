package server

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// ServerName is the implementation name reported during initialization.
const ServerName = "google-calendar"

// NewMCPServer builds an MCP server whose tools are exactly the catalog
// entries, all routed through the ServerContext's dispatcher.
func NewMCPServer(sc *ServerContext, version string) *mcpserver.MCPServer {
	srv := mcpserver.NewMCPServer(ServerName, version,
		mcpserver.WithToolCapabilities(false),
	)

	handler := toolHandler(sc)
	for _, d := range sc.Catalog().List() {
		srv.AddTool(d.Tool(), handler)
	}
	return srv
}

func toolHandler(sc *ServerContext) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return sc.Dispatcher().Invoke(ctx, req.Params.Name, req.Params.Arguments), nil
	}
}
