package google

import (
	calendar "google.golang.org/api/calendar/v3"
)

// CalendarScope grants read and write access to the user's calendars.
const CalendarScope = calendar.CalendarScope

// DefaultOAuthScopes are the scopes requested by the auth command and used
// when refreshing access tokens.
var DefaultOAuthScopes = []string{
	CalendarScope,
}
