// Package config reads the server configuration from environment variables.
//
// GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN must be
// set and non-empty; when any of them is missing, Load returns a
// *MissingError naming every missing variable.
package config
