package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environment variable names.
const (
	EnvClientID     = "GOOGLE_CLIENT_ID"
	EnvClientSecret = "GOOGLE_CLIENT_SECRET"
	EnvRefreshToken = "GOOGLE_REFRESH_TOKEN"
	EnvLogLevel     = "GCALMCP_LOG_LEVEL"
	EnvReadOnly     = "GCALMCP_READ_ONLY"
	EnvMetricsAddr  = "METRICS_ADDR"
)

// Credentials identify the Google OAuth client and the user it acts for.
type Credentials struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET,notEmpty"`
	RefreshToken string `env:"GOOGLE_REFRESH_TOKEN,notEmpty"`
}

// ClientCredentials are the subset of Credentials needed to obtain a
// refresh token in the first place.
type ClientCredentials struct {
	ClientID     string `env:"GOOGLE_CLIENT_ID,notEmpty"`
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET,notEmpty"`
}

// Config holds the serve command configuration read from the environment.
type Config struct {
	Credentials

	LogLevel    string `env:"GCALMCP_LOG_LEVEL" envDefault:"info"`
	ReadOnly    bool   `env:"GCALMCP_READ_ONLY" envDefault:"false"`
	MetricsAddr string `env:"METRICS_ADDR"`
}

// MissingError lists the environment variables that were required but not set.
type MissingError struct {
	Vars []string
}

func (e *MissingError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Vars, ", ")
}

// Load reads the full serve configuration.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, normalize(err)
	}
	return cfg, nil
}

// LoadClientCredentials reads only the OAuth client id and secret.
func LoadClientCredentials() (ClientCredentials, error) {
	creds, err := env.ParseAs[ClientCredentials]()
	if err != nil {
		return ClientCredentials{}, normalize(err)
	}
	return creds, nil
}

// normalize turns the env library's empty-variable errors into a single
// MissingError and wraps anything else.
func normalize(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) {
		return fmt.Errorf("failed to parse environment: %w", err)
	}

	var missing []string
	var other []error
	for _, e := range agg.Errors {
		var empty env.EmptyVarError
		var notSet env.VarIsNotSetError
		switch {
		case errors.As(e, &empty):
			missing = append(missing, empty.Key)
		case errors.As(e, &notSet):
			missing = append(missing, notSet.Key)
		default:
			other = append(other, e)
		}
	}

	if len(other) > 0 {
		return fmt.Errorf("failed to parse environment: %w", errors.Join(other...))
	}
	return &MissingError{Vars: missing}
}
