package calendar

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/mo"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/teemow/gcalmcp/internal/instrumentation"
	"github.com/teemow/gcalmcp/internal/logging"
)

// Gateway performs Calendar API calls against a single calendar.
// Every method issues exactly one remote call and returns its text payload.
// Remote failures are returned unchanged; there is no retry.
type Gateway struct {
	svc        *calendar.Service
	calendarID string
	metrics    *instrumentation.Metrics
	logger     *slog.Logger
}

// NewGateway returns a Gateway for the primary calendar.
// metrics and logger may be nil.
func NewGateway(svc *calendar.Service, metrics *instrumentation.Metrics, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{
		svc:        svc,
		calendarID: PrimaryCalendarID,
		metrics:    metrics,
		logger:     logging.WithComponent(logger, "calendar"),
	}
}

// CreateEvent inserts a new event.
func (g *Gateway) CreateEvent(ctx context.Context, req CreateEventRequest) mo.Result[[]string] {
	event := &calendar.Event{
		Summary: req.Summary,
		Start:   toEventDateTime(req.Start),
		End:     toEventDateTime(req.End),
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Location != nil {
		event.Location = *req.Location
	}

	var created *calendar.Event
	err := g.observe(ctx, instrumentation.OperationInsert, func(ctx context.Context) error {
		var err error
		created, err = g.svc.Events.Insert(g.calendarID, event).Context(ctx).Do()
		return err
	})
	if err != nil {
		return mo.Err[[]string](err)
	}

	g.logger.DebugContext(ctx, "event created", logging.EventID(created.Id))
	return mo.Ok([]string{formatCreated(created.Id, req)})
}

// GetEvent fetches one event and returns its full JSON representation.
func (g *Gateway) GetEvent(ctx context.Context, req GetEventRequest) mo.Result[[]string] {
	var event *calendar.Event
	err := g.observe(ctx, instrumentation.OperationGet, func(ctx context.Context) error {
		var err error
		event, err = g.svc.Events.Get(g.calendarID, req.EventID).Context(ctx).Do()
		return err
	})
	if err != nil {
		return mo.Err[[]string](err)
	}

	text, err := formatJSON(event)
	if err != nil {
		return mo.Err[[]string](err)
	}
	return mo.Ok([]string{text})
}

// UpdateEvent patches only the fields present in req.
func (g *Gateway) UpdateEvent(ctx context.Context, req UpdateEventRequest) mo.Result[[]string] {
	patch := patchBody(req)

	err := g.observe(ctx, instrumentation.OperationPatch, func(ctx context.Context) error {
		_, err := g.svc.Events.Patch(g.calendarID, req.EventID, patch).Context(ctx).Do()
		return err
	})
	if err != nil {
		return mo.Err[[]string](err)
	}

	g.logger.DebugContext(ctx, "event updated", logging.EventID(req.EventID))
	return mo.Ok([]string{formatUpdated(req)})
}

// DeleteEvent removes an event.
func (g *Gateway) DeleteEvent(ctx context.Context, req DeleteEventRequest) mo.Result[[]string] {
	err := g.observe(ctx, instrumentation.OperationDelete, func(ctx context.Context) error {
		return g.svc.Events.Delete(g.calendarID, req.EventID).Context(ctx).Do()
	})
	if err != nil {
		return mo.Err[[]string](err)
	}

	g.logger.DebugContext(ctx, "event deleted", logging.EventID(req.EventID))
	return mo.Ok([]string{"Event deleted: " + req.EventID})
}

// ListEvents lists events in [TimeMin, TimeMax], expanding recurring events
// into single instances.
func (g *Gateway) ListEvents(ctx context.Context, req ListEventsRequest) mo.Result[[]string] {
	maxResults := int64(DefaultMaxResults)
	if req.MaxResults != nil {
		maxResults = *req.MaxResults
	}
	orderBy := DefaultOrderBy
	if req.OrderBy != nil {
		orderBy = *req.OrderBy
	}

	var events *calendar.Events
	err := g.observe(ctx, instrumentation.OperationList, func(ctx context.Context) error {
		var err error
		events, err = g.svc.Events.List(g.calendarID).
			TimeMin(req.TimeMin).
			TimeMax(req.TimeMax).
			MaxResults(maxResults).
			OrderBy(orderBy).
			SingleEvents(true).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return mo.Err[[]string](err)
	}

	text, err := formatList(events.Items)
	if err != nil {
		return mo.Err[[]string](err)
	}
	return mo.Ok([]string{text})
}

// observe wraps one remote call with a client span and API metrics.
func (g *Gateway) observe(ctx context.Context, operation string, call func(ctx context.Context) error) error {
	ctx, span := instrumentation.StartCalendarSpan(ctx, operation, g.calendarID)
	defer span.End()
	logger := logging.WithOperation(g.logger, operation)

	start := time.Now()
	err := call(ctx)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
		instrumentation.SetSpanError(span, err)
		logger.DebugContext(ctx, "calendar call failed",
			logging.Status(status),
			logging.Err(err))
	} else {
		instrumentation.SetSpanSuccess(span)
	}
	g.metrics.RecordCalendarOperation(ctx, operation, status, duration)

	return err
}

func toEventDateTime(t EventTime) *calendar.EventDateTime {
	dt := &calendar.EventDateTime{DateTime: t.DateTime}
	if t.TimeZone != nil {
		dt.TimeZone = *t.TimeZone
	}
	return dt
}

// patchBody builds an Event carrying only the supplied fields. Explicitly
// empty strings are force-sent so that they clear the remote value.
func patchBody(req UpdateEventRequest) *calendar.Event {
	event := &calendar.Event{}
	if req.Summary != nil {
		event.Summary = *req.Summary
		if event.Summary == "" {
			event.ForceSendFields = append(event.ForceSendFields, "Summary")
		}
	}
	if req.Description != nil {
		event.Description = *req.Description
		if event.Description == "" {
			event.ForceSendFields = append(event.ForceSendFields, "Description")
		}
	}
	if req.Location != nil {
		event.Location = *req.Location
		if event.Location == "" {
			event.ForceSendFields = append(event.ForceSendFields, "Location")
		}
	}
	if req.Start != nil {
		event.Start = toEventDateTime(*req.Start)
	}
	if req.End != nil {
		event.End = toEventDateTime(*req.End)
	}
	return event
}
