package log

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// std is the package-level default logger. It writes to stderr so that
// command output on stdout is never interleaved with diagnostics.
//
//nolint:gochecknoglobals
var std = struct {
	mutex  sync.RWMutex
	logger Logger
}{
	logger: Make(os.Stderr),
}

// Default returns the package-level default logger.
func Default() Logger {
	std.mutex.RLock()
	defer std.mutex.RUnlock()

	return std.logger
}

// Config reconfigures the package-level default logger with the provided
// options. The existing configuration is used as the base, so options can be
// applied incrementally (e.g. as CLI flags are parsed).
func Config(opts ...Option) {
	std.mutex.Lock()
	defer std.mutex.Unlock()

	std.logger = std.logger.Wrap(opts...)
}

// With adds attributes to the package-level default logger and returns it.
func With(attrs ...slog.Attr) Logger {
	return Default().With(attrs...)
}

// TraceContext logs to the default logger at Trace level with context.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().TraceContext(ctx, msg, attrs...)
}

// Trace logs to the default logger at Trace level.
func Trace(msg string, attrs ...slog.Attr) {
	Default().TraceContext(context.Background(), msg, attrs...)
}

// DebugContext logs to the default logger at Debug level with context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().DebugContext(ctx, msg, attrs...)
}

// Debug logs to the default logger at Debug level.
func Debug(msg string, attrs ...slog.Attr) {
	Default().DebugContext(context.Background(), msg, attrs...)
}

// InfoContext logs to the default logger at Info level with context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().InfoContext(ctx, msg, attrs...)
}

// Info logs to the default logger at Info level.
func Info(msg string, attrs ...slog.Attr) {
	Default().InfoContext(context.Background(), msg, attrs...)
}

// WarnContext logs to the default logger at Warn level with context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().WarnContext(ctx, msg, attrs...)
}

// Warn logs to the default logger at Warn level.
func Warn(msg string, attrs ...slog.Attr) {
	Default().WarnContext(context.Background(), msg, attrs...)
}

// ErrorContext logs to the default logger at Error level with context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	Default().ErrorContext(ctx, msg, attrs...)
}

// Error logs to the default logger at Error level.
func Error(msg string, attrs ...slog.Attr) {
	Default().ErrorContext(context.Background(), msg, attrs...)
}
