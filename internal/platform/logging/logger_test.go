package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewJSONWithWriter_WritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWithWriter(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.Info("match settled", "match_id", int64(7), "error", errors.New("boom"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug entry should be filtered at info level: %s", out)
	}
	for _, want := range []string{`"msg":"match settled"`, `"match_id":7`, `"error":"boom"`, `"level":"INFO"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in %s", want, out)
		}
	}
}

func TestInfoContext_AddsTraceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWithWriter(&buf, LevelDebug)

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "guess placed")

	out := buf.String()
	if !strings.Contains(out, `"trace_id":"4bf92f3577b34da6a3ce929d0e0e4736"`) {
		t.Fatalf("missing trace_id in %s", out)
	}
	if !strings.Contains(out, `"span_id":"00f067aa0ba902b7"`) {
		t.Fatalf("missing span_id in %s", out)
	}
}

func TestWithCore_TeesEntries(t *testing.T) {
	var buf bytes.Buffer
	core, recorded := observer.New(zapcore.WarnLevel)

	logger := NewJSONWithWriter(&buf, LevelInfo).WithCore(core)
	logger.Info("info only")
	logger.Warn("event publish failed", "event_type", "match.completed")

	if !strings.Contains(buf.String(), "info only") {
		t.Fatalf("base core should still receive entries")
	}
	entries := recorded.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 teed entry, got %d", len(entries))
	}
	if entries[0].Message != "event publish failed" {
		t.Fatalf("unexpected teed message: %s", entries[0].Message)
	}
	if entries[0].ContextMap()["event_type"] != "match.completed" {
		t.Fatalf("unexpected teed fields: %+v", entries[0].ContextMap())
	}
}

func TestNilLogger_FallsBackToDefault(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	if l.With("k", "v") == nil {
		t.Fatalf("expected non-nil logger from nil receiver")
	}
	if err := l.Sync(); err != nil {
		t.Fatalf("sync nil logger: %v", err)
	}
}
