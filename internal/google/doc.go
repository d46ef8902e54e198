// Package google provides OAuth2 authentication for the Google Calendar API.
//
// The server authenticates as a single user: an OAuth client id and secret
// plus a long-lived refresh token, all taken from the environment. The auth
// command uses AuthURL and Exchange once to obtain that refresh token.
package google
