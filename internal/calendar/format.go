package calendar

import (
	"encoding/json"
	"fmt"
	"strings"

	calendar "google.golang.org/api/calendar/v3"
)

const unchanged = "(unchanged)"

func formatCreated(id string, req CreateEventRequest) string {
	return fmt.Sprintf("Event created with ID: %s\nTitle: %s\nStart: %s\nEnd: %s",
		id, req.Summary, req.Start.DateTime, req.End.DateTime)
}

func formatUpdated(req UpdateEventRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event updated: %s\n", req.EventID)
	fmt.Fprintf(&b, "New title: %s\n", orUnchanged(req.Summary))
	fmt.Fprintf(&b, "New start: %s\n", timeOrUnchanged(req.Start))
	fmt.Fprintf(&b, "New end: %s\n", timeOrUnchanged(req.End))
	fmt.Fprintf(&b, "New description: %s\n", orUnchanged(req.Description))
	fmt.Fprintf(&b, "New location: %s", orUnchanged(req.Location))
	return b.String()
}

func orUnchanged(s *string) string {
	if s == nil || *s == "" {
		return unchanged
	}
	return *s
}

func timeOrUnchanged(t *EventTime) string {
	if t == nil || t.DateTime == "" {
		return unchanged
	}
	return t.DateTime
}

func formatList(items []*calendar.Event) (string, error) {
	if items == nil {
		items = []*calendar.Event{}
	}
	data, err := formatJSON(items)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Found %d events:\n%s", len(items), data), nil
}

func formatJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode event: %w", err)
	}
	return string(data), nil
}
