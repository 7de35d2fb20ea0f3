// Package logger provides a global, context-aware Sugared Zap logger with
// optional OpenTelemetry integration. Loggers can be derived from a
// context.Context, automatically enriched with trace and span identifiers
// when a span is active. Logs are emitted as JSON to stdout, and an OTEL
// bridge core is added automatically when a telemetry logger provider is
// available.
package logger

import (
	"context"
	"os"
	"sync"

	"github.com/histwatch/histwatch/internal/pkg/telemetry"

	"go.opentelemetry.io/contrib/bridges/otelzap"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// contextKey is the private type used to store derived loggers in a context.
type contextKey struct{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the base logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	// ctxKey is the context key under which derived loggers are stored.
	ctxKey = contextKey{}
)

// Init configures the global logger with the given minimum level
// (e.g. "debug", "info", "warn", "error"). By default it logs JSON to stdout.
// If an OpenTelemetry LoggerProvider is registered via telemetry.LoggerProvider(),
// an OTEL bridge core forwards logs to the telemetry backend as well.
//
// Calling Init multiple times has no effect after the first successful
// initialization. It returns an error if parsing the log level fails.
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

// deriveFromCtx returns the logger stored in ctx (or the global base logger if
// none is stored), enriched with the active trace and span identifiers when a
// valid span context is present, and with the given key/value pairs.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	logger, ok := ctx.Value(ctxKey).(*zap.SugaredLogger)
	if !ok {
		logger = baseLogger
	}

	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		if spanCtx.HasTraceID() {
			logger = logger.With("trace_id", spanCtx.TraceID().String())
		}
		if spanCtx.HasSpanID() {
			logger = logger.With("span_id", spanCtx.SpanID().String())
		}
	}

	if len(keysAndValues) > 0 {
		logger = logger.With(keysAndValues...)
	}

	return logger
}

// Derive returns a copy of ctx carrying a logger enriched with the given
// key/value pairs. All subsequent log calls made with the returned context
// include those fields.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	return context.WithValue(ctx, ctxKey, deriveFromCtx(ctx, keysAndValues...))
}

// log emits a message at the given level using the logger derived from ctx.
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
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
