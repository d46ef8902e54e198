package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teemow/gcalmcp/internal/catalog"
	"github.com/teemow/gcalmcp/internal/dispatch"
	"github.com/teemow/gcalmcp/internal/instrumentation"
)

// ServerContext holds the process-wide dependencies of the MCP server.
// The catalog is fixed when the context is created.
type ServerContext struct {
	ctx        context.Context
	cancel     context.CancelFunc
	catalog    *catalog.Catalog
	dispatcher *dispatch.Dispatcher
	logger     *slog.Logger
	readOnly   bool
	mu         sync.RWMutex
	shutdown   bool
}

// Option configures a ServerContext.
type Option func(*contextOptions)

type contextOptions struct {
	logger   *slog.Logger
	metrics  *instrumentation.Metrics
	audit    *instrumentation.AuditLogger
	readOnly bool
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *contextOptions) { o.logger = logger }
}

// WithMetrics sets the metrics recorder used for tool invocations.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(o *contextOptions) { o.metrics = metrics }
}

// WithAuditLogger sets the audit logger used for tool invocations.
func WithAuditLogger(audit *instrumentation.AuditLogger) Option {
	return func(o *contextOptions) { o.audit = audit }
}

// WithReadOnly records that only read-only tools were registered.
func WithReadOnly(readOnly bool) Option {
	return func(o *contextOptions) { o.readOnly = readOnly }
}

// NewServerContext creates a new server context over a populated catalog.
func NewServerContext(ctx context.Context, c *catalog.Catalog, opts ...Option) *ServerContext {
	o := contextOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	shutdownCtx, cancel := context.WithCancel(ctx)
	return &ServerContext{
		ctx:     shutdownCtx,
		cancel:  cancel,
		catalog: c,
		dispatcher: dispatch.New(c,
			dispatch.WithLogger(o.logger),
			dispatch.WithMetrics(o.metrics),
			dispatch.WithAuditLogger(o.audit),
		),
		logger:   o.logger,
		readOnly: o.readOnly,
	}
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Catalog returns the operation catalog.
func (sc *ServerContext) Catalog() *catalog.Catalog {
	return sc.catalog
}

// Dispatcher returns the dispatcher shared by all transports.
func (sc *ServerContext) Dispatcher() *dispatch.Dispatcher {
	return sc.dispatcher
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// ReadOnly reports whether write tools were left out of the catalog.
func (sc *ServerContext) ReadOnly() bool {
	return sc.readOnly
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
