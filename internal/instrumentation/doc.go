// Package instrumentation provides OpenTelemetry instrumentation for the
// gcalmcp MCP server.
//
// # Metrics
//
// MCP Tool Metrics:
//   - mcp_tool_invocations_total: Counter of MCP tool invocations by tool name and status
//   - mcp_tool_duration_seconds: Histogram of MCP tool execution durations
//   - mcp_tool_validation_failures_total: Counter of rejected argument fields by tool and field
//
// Calendar API Metrics:
//   - calendar_api_operations_total: Counter of Calendar API calls by operation and status
//   - calendar_api_operation_duration_seconds: Histogram of Calendar API call durations
//
// # Tracing
//
// Spans are created for:
//   - MCP tool invocations (tool.<name>)
//   - Calendar API calls (calendar.events.<operation>)
//
// # Configuration
//
// Instrumentation is configured via environment variables:
//   - INSTRUMENTATION_ENABLED: Enable/disable instrumentation (default: true)
//   - METRICS_EXPORTER: Metrics exporter type (prometheus, otlp, stdout, default: prometheus)
//   - TRACING_EXPORTER: Tracing exporter type (otlp, stdout, none, default: none)
//   - OTEL_EXPORTER_OTLP_ENDPOINT: OTLP endpoint for traces/metrics
//   - OTEL_TRACES_SAMPLER_ARG: Sampling rate (0.0 to 1.0, default: 0.1)
//   - OTEL_SERVICE_NAME: Service name (default: gcalmcp)
//   - AUDIT_LOGGING_ENABLED: Emit tool_executed/tool_failed records (default: true)
//
// The "stdout" exporters write to stderr because stdout carries the MCP
// protocol stream.
//
// # Example Usage
//
//	provider, err := instrumentation.NewProvider(ctx, instrumentation.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer provider.Shutdown(ctx)
//
//	recorder := provider.Metrics()
//	recorder.RecordCalendarOperation(ctx, instrumentation.OperationList, instrumentation.StatusSuccess, time.Since(start))
//	recorder.RecordToolInvocation(ctx, "list_events", instrumentation.StatusSuccess, time.Since(start))
package instrumentation
