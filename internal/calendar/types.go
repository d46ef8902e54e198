package calendar

// PrimaryCalendarID addresses the authenticated user's default calendar.
const PrimaryCalendarID = "primary"

// List defaults applied when the caller omits the field.
const (
	DefaultMaxResults = 10
	DefaultOrderBy    = "startTime"
)

// EventTime is a start or end time as supplied by the client.
type EventTime struct {
	// DateTime is an RFC 3339 timestamp; it is passed to the API unparsed.
	DateTime string  `mapstructure:"dateTime"`
	TimeZone *string `mapstructure:"timeZone"`
}

// CreateEventRequest is the validated input of create_event.
type CreateEventRequest struct {
	Summary     string    `mapstructure:"summary"`
	Start       EventTime `mapstructure:"start"`
	End         EventTime `mapstructure:"end"`
	Description *string   `mapstructure:"description"`
	Location    *string   `mapstructure:"location"`
}

// GetEventRequest is the validated input of get_event.
type GetEventRequest struct {
	EventID string `mapstructure:"eventId"`
}

// UpdateEventRequest is the validated input of update_event.
// Nil fields are left untouched on the remote event.
type UpdateEventRequest struct {
	EventID     string     `mapstructure:"eventId"`
	Summary     *string    `mapstructure:"summary"`
	Start       *EventTime `mapstructure:"start"`
	End         *EventTime `mapstructure:"end"`
	Description *string    `mapstructure:"description"`
	Location    *string    `mapstructure:"location"`
}

// DeleteEventRequest is the validated input of delete_event.
type DeleteEventRequest struct {
	EventID string `mapstructure:"eventId"`
}

// ListEventsRequest is the validated input of list_events.
type ListEventsRequest struct {
	TimeMin    string  `mapstructure:"timeMin"`
	TimeMax    string  `mapstructure:"timeMax"`
	MaxResults *int64  `mapstructure:"maxResults"`
	OrderBy    *string `mapstructure:"orderBy"`
}
