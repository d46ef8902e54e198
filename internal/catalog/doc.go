// Package catalog holds the fixed set of operations exposed to MCP clients.
//
// Each operation is a Descriptor: a unique name, a human description, the
// input Schema and a Handler. The catalog is populated once at startup and
// serves both discovery (Tools) and dispatch (Resolve).
package catalog
