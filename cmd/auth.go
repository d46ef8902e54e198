package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"github.com/teemow/gcalmcp/internal/config"
	"github.com/teemow/gcalmcp/internal/google"
)

type authOptions struct {
	code string

	// endpoint overrides Google's OAuth endpoint when set.
	endpoint *oauth2.Endpoint
}

func newAuthCmd() *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Obtain a Google refresh token",
		Long: `Authorize gcalmcp to access your Google Calendar and print the refresh
token to use as GOOGLE_REFRESH_TOKEN.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET. The command prints a
consent URL; after approving, the browser is redirected to http://localhost.
Paste the full redirect URL (or just its code parameter) when prompted, or
pass it with --code.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd.Context(), authOptions{code: code}, streams{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				err: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code or redirect URL (skips the prompt)")

	return cmd
}

func runAuth(ctx context.Context, opts authOptions, s streams) error {
	creds, err := config.LoadClientCredentials()
	if err != nil {
		return err
	}

	conf := google.OAuthConfig(creds.ClientID, creds.ClientSecret)
	if opts.endpoint != nil {
		conf.Endpoint = *opts.endpoint
	}

	code := opts.code
	if code == "" {
		fmt.Fprintf(s.err, "Visit this URL to authorize gcalmcp:\n\n%s\n\n", google.AuthURL(conf, uuid.NewString()))
		fmt.Fprint(s.err, "Paste the redirect URL or authorization code: ")

		line, err := bufio.NewReader(s.in).ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			return fmt.Errorf("failed to read authorization code: %w", err)
		}
		code = line
	}

	token, err := google.Exchange(ctx, conf, code)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "%s=%s\n", config.EnvRefreshToken, token.RefreshToken)
	return nil
}
