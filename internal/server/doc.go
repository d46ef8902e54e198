// Package server wires the operation catalog to the MCP protocol.
//
// ServerContext holds the process-wide dependencies: the catalog, the
// dispatcher and the logger. NewMCPServer registers every catalog entry with
// an mcp-go server; Router answers tools/call requests for unknown names
// with an error envelope and forwards everything else to that server.
// ServeStdio runs the newline-delimited JSON-RPC loop over stdin/stdout,
// one message at a time.
//
// MetricsServer optionally exposes /metrics, /healthz and /readyz on a side
// address.
package server
