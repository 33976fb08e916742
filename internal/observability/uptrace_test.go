package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/champions-tracker/internal/config"
	"github.com/riskibarqy/champions-tracker/internal/platform/logging"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "champions-tracker-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}
	base := logging.NewNop()

	logger, shutdown, err := InitUptrace(cfg, base)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if logger != base {
		t.Fatalf("expected the base logger when uptrace is disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	_, shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestShouldSkipUptraceLog(t *testing.T) {
	if !shouldSkipUptraceLog("http request", map[string]any{"path": "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if shouldSkipUptraceLog("http request", map[string]any{"path": "/v1/championships"}) {
		t.Fatalf("did not expect non-health log to be skipped")
	}
	if shouldSkipUptraceLog("match settled", map[string]any{"path": "/healthz"}) {
		t.Fatalf("did not expect non-request entry to be skipped")
	}
}

func TestLogAttributes_SortedByKey(t *testing.T) {
	attrs := logAttributes(map[string]any{
		"match_id":        int64(12),
		"championship_id": int64(3),
		"event":           nil,
	}, 0)
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "championship_id" || attrs[0].Value.AsInt64() != 3 {
		t.Fatalf("unexpected first attribute: %+v", attrs[0])
	}
	if attrs[1].Key != "event" || attrs[1].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected second attribute: %+v", attrs[1])
	}
	if attrs[2].Key != "match_id" || attrs[2].Value.AsInt64() != 12 {
		t.Fatalf("unexpected third attribute: %+v", attrs[2])
	}
}

func TestLogValue_NestedAndReflected(t *testing.T) {
	v := logValue(map[string]any{
		"guesses_settled": int64(4),
		"completed":       true,
	}, 0)
	if v.Kind() != otellog.KindMap || len(v.AsMap()) != 2 {
		t.Fatalf("expected map value with 2 items, got %s", v.Kind())
	}

	type payout struct {
		GuessID int64 `json:"guess_id"`
	}
	v = logValue(payout{GuessID: 7}, 0)
	if v.Kind() != otellog.KindString || v.AsString() != `{"guess_id":7}` {
		t.Fatalf("expected JSON fallback, got %s", v.String())
	}
}

func TestUptraceLogCore_RespectsLevel(t *testing.T) {
	core := newUptraceLogCore("test", zapcore.WarnLevel)
	if core.Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled for a warn core")
	}
	if !core.Enabled(zapcore.ErrorLevel) {
		t.Fatalf("error should be enabled for a warn core")
	}

	child := core.With([]zapcore.Field{{Key: "match_id", Type: zapcore.Int64Type, Integer: 9}})
	if err := child.Write(zapcore.Entry{Level: zapcore.ErrorLevel, Message: "settle failed"}, nil); err != nil {
		t.Fatalf("write: %v", err)
	}
	if len(core.fields) != 0 {
		t.Fatalf("With must not mutate the parent core")
	}
}
