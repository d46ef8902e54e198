// Package calendar is the gateway to the Google Calendar API v3.
//
// A Gateway translates one validated request into exactly one Events call
// against the caller's primary calendar and renders the result as text:
//
//	gw := calendar.NewGateway(svc, metrics, logger)
//	res := gw.ListEvents(ctx, calendar.ListEventsRequest{
//	    TimeMin: "2025-01-01T00:00:00Z",
//	    TimeMax: "2025-01-31T23:59:59Z",
//	})
//
// Errors from the API (googleapi.Error) are returned as-is. The gateway does
// not retry, interpret time zones or expand recurrences beyond asking the
// API for single events.
package calendar
