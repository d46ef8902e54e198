package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// MessageHandler handles one JSON-RPC message and returns the response, or
// nil for notifications.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage
}

// Router sits in front of the MCP server. A tools/call for a name missing
// from the catalog is answered by the dispatcher with an error envelope
// instead of a JSON-RPC error; every other message goes to the MCP server.
type Router struct {
	sc  *ServerContext
	mcp *mcpserver.MCPServer
}

// NewRouter creates a Router.
func NewRouter(sc *ServerContext, srv *mcpserver.MCPServer) *Router {
	return &Router{sc: sc, mcp: srv}
}

type toolCallMessage struct {
	JSONRPC string         `json:"jsonrpc"`
	Method  string         `json:"method"`
	ID      *mcp.RequestId `json:"id"`
	Params  struct {
		Name      string `json:"name"`
		Arguments any    `json:"arguments"`
	} `json:"params"`
}

// HandleMessage implements MessageHandler.
func (r *Router) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	var msg toolCallMessage
	if err := json.Unmarshal(message, &msg); err == nil &&
		msg.JSONRPC == mcp.JSONRPC_VERSION &&
		msg.Method == string(mcp.MethodToolsCall) &&
		msg.ID != nil && !msg.ID.IsNil() {
		if _, ok := r.sc.Catalog().Resolve(msg.Params.Name); !ok {
			result := r.sc.Dispatcher().Invoke(ctx, msg.Params.Name, msg.Params.Arguments)
			return mcp.NewJSONRPCResultResponse(*msg.ID, result)
		}
	}
	return r.mcp.HandleMessage(ctx, message)
}
