package google

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// TokenSource returns a token source that mints access tokens from a
// long-lived refresh token. The first Token call always refreshes.
func TokenSource(ctx context.Context, conf *oauth2.Config, refreshToken string) oauth2.TokenSource {
	return conf.TokenSource(ctx, &oauth2.Token{
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Unix(1, 0),
	})
}

// NewCalendarService creates a Calendar API client authenticated by ts.
// Extra options are appended, so tests can redirect the endpoint.
func NewCalendarService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*calendar.Service, error) {
	opts = append([]option.ClientOption{option.WithTokenSource(ts)}, opts...)

	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return svc, nil
}
