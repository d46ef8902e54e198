// Package cmd implements the command-line interface for gcalmcp.
//
// This package provides the following commands:
//   - serve: Start the MCP server on stdio (default)
//   - auth: Obtain a Google refresh token for GOOGLE_REFRESH_TOKEN
//   - tools: Print the tool reference as markdown or JSON
//   - version: Display version information
package cmd
