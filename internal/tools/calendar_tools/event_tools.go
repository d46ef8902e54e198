package calendar_tools

import (
	"github.com/teemow/gcalmcp/internal/catalog"
	"github.com/teemow/gcalmcp/internal/schema"
)

const dateTimeFormat = "date-time"

// eventTimeFields declares a start or end object.
func eventTimeFields(what string) []schema.Field {
	return []schema.Field{
		schema.String("dateTime", what+" time (ISO format)", schema.Required(), schema.Format(dateTimeFormat)),
		schema.String("timeZone", "Time zone"),
	}
}

// Schemas of the five event operations.
var (
	CreateEventSchema = schema.New(
		schema.String("summary", "Event title", schema.Required()),
		schema.ObjectField("start", "Event start", eventTimeFields("Start"), schema.Required()),
		schema.ObjectField("end", "Event end", eventTimeFields("End"), schema.Required()),
		schema.String("description", "Event description"),
		schema.String("location", "Event location"),
	)

	GetEventSchema = schema.New(
		schema.String("eventId", "ID of the event to retrieve", schema.Required()),
	)

	UpdateEventSchema = schema.New(
		schema.String("eventId", "ID of the event to update", schema.Required()),
		schema.String("summary", "New event title"),
		schema.ObjectField("start", "New event start", eventTimeFields("New start")),
		schema.ObjectField("end", "New event end", eventTimeFields("New end")),
		schema.String("description", "New event description"),
		schema.String("location", "New event location"),
	)

	DeleteEventSchema = schema.New(
		schema.String("eventId", "ID of the event to delete", schema.Required()),
	)

	ListEventsSchema = schema.New(
		schema.String("timeMin", "Start of time range (ISO format)", schema.Required(), schema.Format(dateTimeFormat)),
		schema.String("timeMax", "End of time range (ISO format)", schema.Required(), schema.Format(dateTimeFormat)),
		schema.Integer("maxResults", "Maximum number of events to return", schema.Positive()),
		schema.String("orderBy", "Sort order", schema.Enum("startTime", "updated")),
	)
)

// EventTools returns the descriptors of all event operations bound to gw,
// in the order they are listed to clients.
func EventTools(gw EventGateway) []catalog.Descriptor {
	return []catalog.Descriptor{
		{
			Name:        ToolCreateEvent,
			Description: "Creates a new event in Google Calendar",
			Schema:      CreateEventSchema,
			Handler:     catalog.Bind(gw.CreateEvent),
		},
		{
			Name:        ToolGetEvent,
			Description: "Retrieves details of a specific event",
			Schema:      GetEventSchema,
			Handler:     catalog.Bind(gw.GetEvent),
			ReadOnly:    true,
		},
		{
			Name:        ToolUpdateEvent,
			Description: "Updates an existing event",
			Schema:      UpdateEventSchema,
			Handler:     catalog.Bind(gw.UpdateEvent),
		},
		{
			Name:        ToolDeleteEvent,
			Description: "Deletes an event from the calendar",
			Schema:      DeleteEventSchema,
			Handler:     catalog.Bind(gw.DeleteEvent),
			Destructive: true,
		},
		{
			Name:        ToolListEvents,
			Description: "Lists events within a specified time range",
			Schema:      ListEventsSchema,
			Handler:     catalog.Bind(gw.ListEvents),
			ReadOnly:    true,
		},
	}
}
