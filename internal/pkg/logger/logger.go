// Package logger provides a global, Sugared Zap logger with optional
// OpenTelemetry integration. It emits JSON logs to stdout, enriches entries
// with the trace and span IDs found in the context, and automatically adds an
// OTEL bridge core when a telemetry provider is available.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/solvault/solvault/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxKeyType is the private type used for storing a derived logger in a context.
type ctxKeyType struct{}

// ctxKey is the context key under which a derived SugaredLogger is stored.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It discards entries
	// until Init configures it.
	baseLogger = zap.NewNop().Sugar()

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once
)

// Init configures the global logger at the given minimum level ("debug",
// "info", "warn", "error", "panic", "fatal"). It logs JSON to stdout. If an
// OpenTelemetry LoggerProvider is registered via telemetry.LoggerProvider(),
// an OTEL bridge core is added to forward logs to the telemetry backend.
// Calling Init multiple times has no effect after the first successful
// initialization.
//
// Returns an error if parsing the log level fails.
func Init(level string) error {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		cores := []zapcore.Core{
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				parsedLevel,
			),
		}

		if lp := telemetry.LoggerProvider(); lp != nil {
			cores = append(cores, otelzap.NewCore("", otelzap.WithLoggerProvider(lp)))
		}

		baseLogger = zap.New(zapcore.NewTee(cores...)).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries. It should be called on application
// shutdown to ensure all logs are written out.
func Sync() error {
	return baseLogger.Sync()
}

// deriveFromCtx returns the logger stored in ctx (or the base logger) enriched
// with the provided key/value pairs and, when present, the trace and span IDs
// of the current span.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	derived, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		derived = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		if spanCtx.HasTraceID() {
			derived = derived.With("trace.id", spanCtx.TraceID().String())
		}
		if spanCtx.HasSpanID() {
			derived = derived.With("span.id", spanCtx.SpanID().String())
		}
	}

	if len(keysAndValues) > 0 {
		derived = derived.With(keysAndValues...)
	}

	return derived
}

// Derive returns a child context carrying a logger pre-populated with the
// given key/value pairs. Subsequent log calls made with the derived context
// include those fields automatically.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// log emits a single entry at the given level using the context-derived logger.
func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Panicw(msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Fatalw(msg, keysAndValues...)
}
