// Package calendar_tools defines the MCP tools for Google Calendar events:
// create_event, get_event, update_event, delete_event and list_events.
//
// Each tool is a catalog.Descriptor whose schema mirrors the fields the
// Calendar API accepts and whose handler forwards the decoded request to an
// EventGateway.
package calendar_tools
