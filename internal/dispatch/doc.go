// Package dispatch runs tool invocations against the operation catalog.
//
// Dispatcher.Invoke is total: whatever the client sends, it returns exactly
// one *mcp.CallToolResult. Unknown names, invalid arguments, remote failures
// and handler panics all become error envelopes whose single text block
// reads "Error: {message}". Every invocation gets a fresh id that ties its
// tool.<name> span, its metrics and its audit record together.
package dispatch
