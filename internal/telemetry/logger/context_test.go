package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestWithLogger_FromContext(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)

	got := FromContext(ctx)
	if got == nil {
		t.Fatal("FromContext() returned nil")
	}

	got.Info("from context")
	if buf.Len() == 0 {
		t.Error("Logger from context should write to the configured output")
	}
}

func TestFromContext_Default(t *testing.T) {
	// Without a logger on the context, the default is returned
	got := FromContext(context.Background())
	if got == nil {
		t.Fatal("FromContext() returned nil for empty context")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequestID(context.Background(), "01jmx3b9qkexample0000000000")

	if got := RequestIDFromContext(ctx); got != "01jmx3b9qkexample0000000000" {
		t.Errorf("RequestIDFromContext() = %q, want the stored ID", got)
	}
}

func TestRequestIDFromContext_Empty(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext() = %q, want empty string", got)
	}
}

func TestL_EnrichesWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)
	ctx = WithRequestID(ctx, "01jmx3b9qkexample0000000000")

	L(ctx).Info("api request")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if got := logEntry["request_id"]; got != "01jmx3b9qkexample0000000000" {
		t.Errorf("Expected request_id attribute, got %v", got)
	}
}

func TestL_NoRequestID(t *testing.T) {
	var buf bytes.Buffer
	l, err := New(Config{Level: "debug", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := WithLogger(context.Background(), l)

	L(ctx).Info("api request")

	var logEntry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}

	if _, present := logEntry["request_id"]; present {
		t.Error("request_id should be absent when not set on the context")
	}
}
