package calendar_tools

import (
	"context"
	"fmt"

	"github.com/samber/mo"

	"github.com/teemow/gcalmcp/internal/calendar"
	"github.com/teemow/gcalmcp/internal/catalog"
)

// Tool names
const (
	ToolCreateEvent = "create_event"
	ToolGetEvent    = "get_event"
	ToolUpdateEvent = "update_event"
	ToolDeleteEvent = "delete_event"
	ToolListEvents  = "list_events"
)

// EventGateway is the remote calendar the tools operate on.
// *calendar.Gateway satisfies it.
type EventGateway interface {
	CreateEvent(ctx context.Context, req calendar.CreateEventRequest) mo.Result[[]string]
	GetEvent(ctx context.Context, req calendar.GetEventRequest) mo.Result[[]string]
	UpdateEvent(ctx context.Context, req calendar.UpdateEventRequest) mo.Result[[]string]
	DeleteEvent(ctx context.Context, req calendar.DeleteEventRequest) mo.Result[[]string]
	ListEvents(ctx context.Context, req calendar.ListEventsRequest) mo.Result[[]string]
}

// RegisterCalendarTools registers the event tools in the catalog.
// In read-only mode only get_event and list_events are registered.
func RegisterCalendarTools(c *catalog.Catalog, gw EventGateway, readOnly bool) error {
	for _, d := range EventTools(gw) {
		if readOnly && !d.ReadOnly {
			continue
		}
		if err := c.Register(d); err != nil {
			return fmt.Errorf("failed to register calendar tool: %w", err)
		}
	}
	return nil
}
