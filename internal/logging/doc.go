// Package logging provides structured logging utilities for gcalmcp.
//
// All logs are JSON records written to stderr; stdout carries the MCP
// protocol stream and must never receive log output.
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithTool(slog.Default(), "create_event")
//	logger.Info("event created",
//	    logging.EventID(id),
//	    logging.Status(logging.StatusSuccess))
//
// Tokens are never logged directly:
//
//	logger.Debug("refresh token loaded", "token", logging.SanitizeToken(tok))
package logging
