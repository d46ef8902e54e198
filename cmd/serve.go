package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"google.golang.org/api/option"

	"github.com/teemow/gcalmcp/internal/calendar"
	"github.com/teemow/gcalmcp/internal/catalog"
	"github.com/teemow/gcalmcp/internal/config"
	"github.com/teemow/gcalmcp/internal/google"
	"github.com/teemow/gcalmcp/internal/instrumentation"
	"github.com/teemow/gcalmcp/internal/logging"
	"github.com/teemow/gcalmcp/internal/server"
	"github.com/teemow/gcalmcp/internal/tools/calendar_tools"
)

// serveOptions holds flag values. Pointer fields are nil when the flag was
// not given, so the environment value applies.
type serveOptions struct {
	debug       bool
	readOnly    *bool
	metricsAddr *string

	// calendarOptions are appended to the Calendar client options.
	calendarOptions []option.ClientOption
}

// streams are the process streams the server talks over.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newServeCmd() *cobra.Command {
	var (
		debugMode   bool
		readOnly    bool
		metricsAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server on stdio",
		Long: `Start the Model Context Protocol (MCP) server. Requests are read from
stdin and responses written to stdout, one JSON-RPC message per line.
Logs go to stderr.

Required environment:
  GOOGLE_CLIENT_ID       OAuth client id
  GOOGLE_CLIENT_SECRET   OAuth client secret
  GOOGLE_REFRESH_TOKEN   refresh token from "gcalmcp auth"

Optional environment:
  GCALMCP_LOG_LEVEL      debug, info, warn or error (default: info)
  GCALMCP_READ_ONLY      only expose get_event and list_events
  METRICS_ADDR           serve /metrics, /healthz and /readyz on this address
  INSTRUMENTATION_ENABLED, METRICS_EXPORTER, TRACING_EXPORTER,
  OTEL_EXPORTER_OTLP_ENDPOINT, AUDIT_LOGGING_ENABLED  see README`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := serveOptions{debug: debugMode}
			if cmd.Flags().Changed("read-only") {
				opts.readOnly = &readOnly
			}
			if cmd.Flags().Changed("metrics-addr") {
				opts.metricsAddr = &metricsAddr
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			return runServe(ctx, opts, streams{
				in:  cmd.InOrStdin(),
				out: cmd.OutOrStdout(),
				err: cmd.ErrOrStderr(),
			})
		},
	}

	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Only register read-only tools (get_event, list_events). Can also use GCALMCP_READ_ONLY env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve metrics and health endpoints on this address (e.g. :9090). Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(ctx context.Context, opts serveOptions, s streams) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.readOnly != nil {
		cfg.ReadOnly = *opts.readOnly
	}
	if opts.metricsAddr != nil {
		cfg.MetricsAddr = *opts.metricsAddr
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", config.EnvLogLevel, err)
	}
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := logging.New(s.err, level)
	slog.SetDefault(logger)
	logger.Debug("google credentials loaded",
		slog.String("client_id", cfg.ClientID),
		slog.String("refresh_token", logging.SanitizeToken(cfg.RefreshToken)))

	instrConfig, err := instrumentation.LoadConfig()
	if err != nil {
		return err
	}
	instrConfig.ServiceVersion = version
	if err := instrConfig.Validate(); err != nil {
		return fmt.Errorf("invalid instrumentation config: %w", err)
	}

	provider, err := instrumentation.NewProvider(ctx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if shutdownErr := provider.Shutdown(context.WithoutCancel(ctx)); shutdownErr != nil {
			err = errors.Join(err, shutdownErr)
		}
	}()

	oauthConfig := google.OAuthConfig(cfg.ClientID, cfg.ClientSecret)
	tokenSource := google.TokenSource(ctx, oauthConfig, cfg.RefreshToken)
	svc, err := google.NewCalendarService(ctx, tokenSource, opts.calendarOptions...)
	if err != nil {
		return err
	}
	gateway := calendar.NewGateway(svc, provider.Metrics(), logger)

	c := catalog.New()
	if err := calendar_tools.RegisterCalendarTools(c, gateway, cfg.ReadOnly); err != nil {
		return err
	}

	serverContext := server.NewServerContext(ctx, c,
		server.WithLogger(logger),
		server.WithMetrics(provider.Metrics()),
		server.WithAuditLogger(instrumentation.NewAuditLoggerWithConfig(logger, instrConfig.AuditLogging)),
		server.WithReadOnly(cfg.ReadOnly),
	)
	defer func() {
		_ = serverContext.Shutdown()
	}()

	if cfg.MetricsAddr != "" {
		health := server.NewHealthChecker(serverContext)
		metricsServer, err := server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    cfg.MetricsAddr,
			InstrumentationProvider: provider,
			Health:                  health,
			Logger:                  logger,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}
		if err := metricsServer.Start(); err != nil {
			return fmt.Errorf("metrics server failed to start: %w", err)
		}
		defer func() {
			health.SetReady(false)
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), server.DefaultShutdownTimeout)
			defer cancel()
			if shutdownErr := metricsServer.Shutdown(shutdownCtx); shutdownErr != nil {
				logger.Error("metrics server shutdown failed", logging.Err(shutdownErr))
			}
		}()
	}

	mcpSrv := server.NewMCPServer(serverContext, version)
	router := server.NewRouter(serverContext, mcpSrv)

	logger.Info("Google Calendar MCP Server running on stdio",
		slog.String("version", version),
		slog.Int("tools", c.Len()),
		slog.Bool("read_only", cfg.ReadOnly))

	if err := server.ServeStdio(serverContext.Context(), router, s.in, s.out, logger); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
