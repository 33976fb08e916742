package logging

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// Logger takes slog-style alternating key/value args and writes through zap.
// A nil *Logger logs through Default().
type Logger struct {
	base *zap.Logger
}

var fallback atomic.Pointer[Logger]

func init() {
	fallback.Store(NewNop())
}

func NewJSON(level Level) *Logger {
	return NewJSONWithWriter(os.Stdout, level)
}

func NewJSONWithWriter(w io.Writer, level Level) *Logger {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "time"
	enc.MessageKey = "msg"
	enc.FunctionKey = zapcore.OmitKey
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	enc.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	enc.EncodeDuration = zapcore.StringDurationEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(enc), zapcore.Lock(zapcore.AddSync(w)), level)
	return FromZap(zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2), zap.AddStacktrace(zapcore.ErrorLevel)))
}

func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func FromZap(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{base: z}
}

func Default() *Logger {
	return fallback.Load()
}

func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	fallback.Store(logger)
}

func (l *Logger) underlying() *zap.Logger {
	if l == nil || l.base == nil {
		return Default().base
	}
	return l.base
}

func (l *Logger) Sync() error {
	if l == nil {
		return nil
	}
	return l.underlying().Sync()
}

// WithCore returns a logger that also writes every entry to core.
func (l *Logger) WithCore(core zapcore.Core) *Logger {
	if core == nil {
		return FromZap(l.underlying())
	}
	return FromZap(l.underlying().WithOptions(zap.WrapCore(func(base zapcore.Core) zapcore.Core {
		return zapcore.NewTee(base, core)
	})))
}

func (l *Logger) With(args ...any) *Logger {
	return FromZap(l.underlying().With(fields(args)...))
}

func (l *Logger) Debug(msg string, args ...any) { l.emit(context.Background(), zapcore.DebugLevel, msg, args) }
func (l *Logger) Info(msg string, args ...any)  { l.emit(context.Background(), zapcore.InfoLevel, msg, args) }
func (l *Logger) Warn(msg string, args ...any)  { l.emit(context.Background(), zapcore.WarnLevel, msg, args) }
func (l *Logger) Error(msg string, args ...any) { l.emit(context.Background(), zapcore.ErrorLevel, msg, args) }

// The *Context variants add trace_id and span_id of the active span.
func (l *Logger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, zapcore.DebugLevel, msg, args)
}

func (l *Logger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, zapcore.InfoLevel, msg, args)
}

func (l *Logger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, zapcore.WarnLevel, msg, args)
}

func (l *Logger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, zapcore.ErrorLevel, msg, args)
}

func (l *Logger) emit(ctx context.Context, level zapcore.Level, msg string, args []any) {
	ce := l.underlying().Check(level, msg)
	if ce == nil {
		return
	}
	out := fields(args)
	if ctx != nil {
		if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
			out = append(out,
				zap.String("trace_id", sc.TraceID().String()),
				zap.String("span_id", sc.SpanID().String()),
			)
		}
	}
	ce.Write(out...)
}

// fields pairs args into zap fields. A non-string key becomes "arg" and a
// dangling key gets a nil value.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args)/2+2)
	for i := 0; i < len(args); i += 2 {
		key, _ := args[i].(string)
		if key == "" {
			key = "arg"
		}
		var value any
		if i+1 < len(args) {
			value = args[i+1]
		}
		if err, ok := value.(error); ok {
			out = append(out, zap.NamedError(key, err))
			continue
		}
		out = append(out, zap.Any(key, value))
	}
	return out
}
