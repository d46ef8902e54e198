package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/teemow/gcalmcp/internal/catalog"
	"github.com/teemow/gcalmcp/internal/instrumentation"
	"github.com/teemow/gcalmcp/internal/logging"
	"github.com/teemow/gcalmcp/internal/schema"
)

// unknownToolLabel replaces client-supplied names that are not in the
// catalog, keeping the metric label set bounded.
const unknownToolLabel = "(unknown)"

// UnknownToolError is returned for names not present in the catalog.
type UnknownToolError struct {
	Name string
}

func (e *UnknownToolError) Error() string {
	return "Unknown tool: " + e.Name
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("internal error: %v", e.Value)
}

// Dispatcher is the single entry point for tool invocations.
type Dispatcher struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
	metrics *instrumentation.Metrics
	audit   *instrumentation.AuditLogger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) { d.logger = logger }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(metrics *instrumentation.Metrics) Option {
	return func(d *Dispatcher) { d.metrics = metrics }
}

// WithAuditLogger sets the audit logger.
func WithAuditLogger(audit *instrumentation.AuditLogger) Option {
	return func(d *Dispatcher) { d.audit = audit }
}

// New returns a Dispatcher over c.
func New(c *catalog.Catalog, opts ...Option) *Dispatcher {
	d := &Dispatcher{catalog: c}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}
	return d
}

// Invoke resolves, validates and runs one operation and always returns
// exactly one envelope. It never panics and never returns a nil result.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args any) *mcp.CallToolResult {
	id := uuid.NewString()

	label := name
	if _, ok := d.catalog.Resolve(name); !ok {
		label = unknownToolLabel
	}

	ctx, span := instrumentation.StartToolSpan(ctx, label,
		attribute.String(instrumentation.SpanAttrInvocationID, id))
	defer span.End()

	invocation := instrumentation.NewToolInvocation(id, name).
		WithArguments(args).
		WithSpanContext(ctx)
	logger := logging.WithTool(d.logger, label).With(logging.InvocationID(id))

	start := time.Now()
	payload, err := d.call(ctx, logger, name, args)
	duration := time.Since(start)

	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	d.metrics.RecordToolInvocation(ctx, label, status, duration)
	logger.DebugContext(ctx, "tool invocation finished",
		logging.Status(status),
		slog.Duration(logging.KeyDuration, duration))

	if err != nil {
		instrumentation.SetSpanError(span, err)
		d.audit.LogToolInvocation(ctx, invocation.Complete(false, err))
		return ErrorResult(err)
	}

	instrumentation.SetSpanSuccess(span)
	d.audit.LogToolInvocation(ctx, invocation.Complete(true, nil))
	return SuccessResult(payload)
}

func (d *Dispatcher) call(ctx context.Context, logger *slog.Logger, name string, args any) (payload catalog.Payload, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PanicError{Value: r}
			logger.ErrorContext(ctx, "tool handler panicked",
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())))
		}
	}()

	desc, ok := d.catalog.Resolve(name)
	if !ok {
		logger.DebugContext(ctx, "unknown tool requested", slog.String("requested", name))
		return nil, &UnknownToolError{Name: name}
	}

	validated := desc.Schema.Validate(args)
	if validated.IsError() {
		err := validated.Error()
		d.recordValidationFailure(ctx, name, err)
		logger.DebugContext(ctx, "arguments rejected", logging.Err(err))
		return nil, err
	}

	return desc.Handler(ctx, validated.MustGet()).Get()
}

func (d *Dispatcher) recordValidationFailure(ctx context.Context, name string, err error) {
	var verr *schema.ValidationError
	if !errors.As(err, &verr) {
		return
	}
	for _, p := range verr.Problems {
		d.metrics.RecordValidationFailure(ctx, name, p.Path)
	}
}
