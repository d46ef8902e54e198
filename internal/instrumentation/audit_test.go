package instrumentation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

const (
	testInvocationID = "4b9d6a8e-1f0c-4d7e-9b3a-2c5e8f1a6d40"
	testTool         = "create_event"
)

func captureLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode log record %q: %v", buf.String(), err)
	}
	return record
}

func TestToolInvocation_NewAndComplete(t *testing.T) {
	ti := NewToolInvocation(testInvocationID, testTool)

	if ti.Tool != testTool {
		t.Errorf("Tool = %q, want %q", ti.Tool, testTool)
	}
	if ti.StartTime.IsZero() {
		t.Error("StartTime should not be zero")
	}

	ti.Complete(true, nil)

	if !ti.Success {
		t.Error("Success should be true")
	}
	if ti.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if ti.Status() != StatusSuccess {
		t.Errorf("Status = %q, want %q", ti.Status(), StatusSuccess)
	}
}

func TestToolInvocation_CompleteWithError(t *testing.T) {
	ti := NewToolInvocation(testInvocationID, testTool).Complete(false, errors.New("Not Found"))

	if ti.Success {
		t.Error("Success should be false")
	}
	if ti.Error != "Not Found" {
		t.Errorf("Error = %q, want %q", ti.Error, "Not Found")
	}
	if ti.Status() != StatusError {
		t.Errorf("Status = %q, want %q", ti.Status(), StatusError)
	}
}

func TestToolInvocation_WithArguments(t *testing.T) {
	ti := NewToolInvocation(testInvocationID, testTool).
		WithArguments(map[string]any{"summary": "Standup", "end": map[string]any{}, "start": map[string]any{}})

	want := []string{"end", "start", "summary"}
	if len(ti.ArgumentKeys) != len(want) {
		t.Fatalf("ArgumentKeys = %v, want %v", ti.ArgumentKeys, want)
	}
	for i := range want {
		if ti.ArgumentKeys[i] != want[i] {
			t.Errorf("ArgumentKeys[%d] = %q, want %q", i, ti.ArgumentKeys[i], want[i])
		}
	}

	// Non-object arguments leave the key set empty
	ti = NewToolInvocation(testInvocationID, testTool).WithArguments("oops")
	if ti.ArgumentKeys != nil {
		t.Errorf("expected no argument keys, got %v", ti.ArgumentKeys)
	}
}

func TestAuditLogger_LogToolInvocation(t *testing.T) {
	tests := []struct {
		name        string
		success     bool
		err         error
		wantMessage string
		wantLevel   string
	}{
		{name: "success", success: true, wantMessage: "tool_executed", wantLevel: "INFO"},
		{name: "failure", success: false, err: errors.New("Not Found"), wantMessage: "tool_failed", wantLevel: "WARN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			audit := NewAuditLogger(logger)

			ti := NewToolInvocation(testInvocationID, testTool).Complete(tt.success, tt.err)
			audit.LogToolInvocation(context.Background(), ti)

			record := decodeRecord(t, buf)
			if record["msg"] != tt.wantMessage {
				t.Errorf("msg = %v, want %q", record["msg"], tt.wantMessage)
			}
			if record["level"] != tt.wantLevel {
				t.Errorf("level = %v, want %q", record["level"], tt.wantLevel)
			}
			if record["invocation_id"] != testInvocationID {
				t.Errorf("invocation_id = %v, want %q", record["invocation_id"], testInvocationID)
			}
			if record["tool"] != testTool {
				t.Errorf("tool = %v, want %q", record["tool"], testTool)
			}
			if tt.err != nil && record["error"] != tt.err.Error() {
				t.Errorf("error = %v, want %q", record["error"], tt.err.Error())
			}
		})
	}
}

func TestAuditLogger_ArgumentKeys(t *testing.T) {
	ti := NewToolInvocation(testInvocationID, testTool).
		WithArguments(map[string]any{"summary": "secret meeting"}).
		Complete(true, nil)

	logger, buf := captureLogger()
	NewAuditLogger(logger).LogToolInvocation(context.Background(), ti)
	if _, ok := decodeRecord(t, buf)["argument_keys"]; ok {
		t.Error("argument keys should be omitted by default")
	}

	logger, buf = captureLogger()
	NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: true, IncludeArguments: true}).
		LogToolInvocation(context.Background(), ti)
	record := decodeRecord(t, buf)
	keys, ok := record["argument_keys"].([]any)
	if !ok || len(keys) != 1 || keys[0] != "summary" {
		t.Errorf("argument_keys = %v, want [summary]", record["argument_keys"])
	}
	if bytes.Contains(buf.Bytes(), []byte("secret meeting")) {
		t.Error("argument values must never be logged")
	}
}

func TestAuditLogger_Disabled(t *testing.T) {
	logger, buf := captureLogger()
	audit := NewAuditLoggerWithConfig(logger, AuditLoggingConfig{Enabled: false})

	audit.LogToolInvocation(context.Background(), NewToolInvocation(testInvocationID, testTool).Complete(true, nil))

	if buf.Len() != 0 {
		t.Errorf("expected no output when disabled, got %q", buf.String())
	}

	// nil logger is a no-op
	var nilAudit *AuditLogger
	nilAudit.LogToolInvocation(context.Background(), NewToolInvocation(testInvocationID, testTool))
}

func TestToolInvocation_WithSpanContext(t *testing.T) {
	installRecorder(t)

	ctx, span := StartToolSpan(context.Background(), testTool)
	defer span.End()

	ti := NewToolInvocation(testInvocationID, testTool).WithSpanContext(ctx)
	if ti.TraceID == "" || ti.TraceID != GetTraceID(ctx) {
		t.Errorf("TraceID = %q, want %q", ti.TraceID, GetTraceID(ctx))
	}
	if ti.SpanID != span.SpanContext().SpanID().String() {
		t.Errorf("SpanID = %q, want %q", ti.SpanID, span.SpanContext().SpanID().String())
	}

	bare := NewToolInvocation(testInvocationID, testTool).WithSpanContext(context.Background())
	if bare.TraceID != "" || bare.SpanID != "" {
		t.Errorf("expected no trace context, got trace=%q span=%q", bare.TraceID, bare.SpanID)
	}
}
