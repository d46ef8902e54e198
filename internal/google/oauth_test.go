package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
)

func TestOAuthConfig(t *testing.T) {
	conf := OAuthConfig("id", "secret")

	assert.Equal(t, "id", conf.ClientID)
	assert.Equal(t, "secret", conf.ClientSecret)
	assert.Equal(t, "http://localhost", conf.RedirectURL)
	assert.Equal(t, []string{"https://www.googleapis.com/auth/calendar"}, conf.Scopes)
}

func TestAuthURL(t *testing.T) {
	raw := AuthURL(OAuthConfig("id", "secret"), "state-1")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "id", q.Get("client_id"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent", q.Get("prompt"))
	assert.Equal(t, "state-1", q.Get("state"))
	assert.Equal(t, "http://localhost", q.Get("redirect_uri"))
	assert.Equal(t, CalendarScope, q.Get("scope"))
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "bare code", input: "4/0Abc", want: "4/0Abc"},
		{name: "trims whitespace", input: "  4/0Abc\n", want: "4/0Abc"},
		{name: "redirect URL", input: "http://localhost/?code=4%2F0Abc&scope=x", want: "4/0Abc"},
		{name: "empty", input: "   ", wantErr: "authorization code is empty"},
		{name: "denied", input: "http://localhost/?error=access_denied", wantErr: "authorization failed: access_denied"},
		{name: "no code", input: "http://localhost/?scope=x", wantErr: "redirect URL has no code parameter"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractCode(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// newTokenServer serves the OAuth token endpoint and counts requests.
func newTokenServer(t *testing.T, refreshToken string) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/token" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		assert.NoError(t, r.ParseForm())
		w.Header().Set("Content-Type", "application/json")
		body := `{"access_token":"access-1","token_type":"Bearer","expires_in":3600`
		if refreshToken != "" {
			body += `,"refresh_token":"` + refreshToken + `"`
		}
		_, _ = w.Write([]byte(body + "}"))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func testConfig(tokenURL string) *oauth2.Config {
	conf := OAuthConfig("id", "secret")
	conf.Endpoint = oauth2.Endpoint{
		AuthURL:   "http://example.invalid/auth",
		TokenURL:  tokenURL,
		AuthStyle: oauth2.AuthStyleInParams,
	}
	return conf
}

func TestExchange(t *testing.T) {
	srv, hits := newTokenServer(t, "refresh-1")

	token, err := Exchange(context.Background(), testConfig(srv.URL+"/token"), "http://localhost/?code=abc")
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)
	assert.Equal(t, int32(1), hits.Load())
}

func TestExchange_NoRefreshToken(t *testing.T) {
	srv, _ := newTokenServer(t, "")

	_, err := Exchange(context.Background(), testConfig(srv.URL+"/token"), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no refresh token returned")
}

func TestExchange_EmptyCodeSkipsRequest(t *testing.T) {
	srv, hits := newTokenServer(t, "refresh-1")

	_, err := Exchange(context.Background(), testConfig(srv.URL+"/token"), "")
	require.Error(t, err)
	assert.Zero(t, hits.Load())
}

func TestTokenSource_RefreshesOnFirstUse(t *testing.T) {
	srv, hits := newTokenServer(t, "")

	ts := TokenSource(context.Background(), testConfig(srv.URL+"/token"), "refresh-1")

	token, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "access-1", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)

	_, err = ts.Token()
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNewCalendarService_SendsBearerToken(t *testing.T) {
	var auth atomic.Value
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/token":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"access-1","token_type":"Bearer","expires_in":3600}`))
		case "/calendars/primary/events/abc123":
			auth.Store(r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"abc123"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	ts := TokenSource(ctx, testConfig(srv.URL+"/token"), "refresh-1")
	svc, err := NewCalendarService(ctx, ts, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)

	event, err := svc.Events.Get("primary", "abc123").Context(ctx).Do()
	require.NoError(t, err)
	assert.Equal(t, "abc123", event.Id)
	assert.Equal(t, "Bearer access-1", auth.Load())
}
