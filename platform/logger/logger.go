package logger

import (
	"context"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var (
	globalLogger = &logger{zapLogger: zap.NewNop()}
	mu           sync.RWMutex
)

type logger struct {
	zapLogger *zap.Logger
}

// Init replaces the global logger. Level is one of debug, info, warn, error.
func Init(level string, asJSON bool) error {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	if asJSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl))

	mu.Lock()
	globalLogger = &logger{zapLogger: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))}
	mu.Unlock()

	return nil
}

func SetNopLogger() {
	mu.Lock()
	globalLogger = &logger{zapLogger: zap.NewNop()}
	mu.Unlock()
}

func L() *logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func Sync() error { return L().zapLogger.Sync() }

// WithRunID stores the seeding run id so every log line of the run carries it.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, runID)
}

func With(fields ...Field) *logger {
	return &logger{zapLogger: L().zapLogger.With(fields...)}
}

func Debug(ctx context.Context, msg string, fields ...Field) {
	L().zapLogger.Debug(msg, withContext(ctx, fields)...)
}

func Info(ctx context.Context, msg string, fields ...Field) {
	L().zapLogger.Info(msg, withContext(ctx, fields)...)
}

func Warn(ctx context.Context, msg string, fields ...Field) {
	L().zapLogger.Warn(msg, withContext(ctx, fields)...)
}

func Error(ctx context.Context, msg string, fields ...Field) {
	L().zapLogger.Error(msg, withContext(ctx, fields)...)
}

func (l *logger) With(fields ...Field) *logger {
	return &logger{zapLogger: l.zapLogger.With(fields...)}
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Debug(msg, withContext(ctx, fields)...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Info(msg, withContext(ctx, fields)...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Warn(msg, withContext(ctx, fields)...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...Field) {
	l.zapLogger.Error(msg, withContext(ctx, fields)...)
}

func withContext(ctx context.Context, fields []Field) []Field {
	if ctx == nil {
		return fields
	}
	runID, ok := ctx.Value(ctxKey{}).(string)
	if !ok || runID == "" {
		return fields
	}
	return append([]Field{zap.String("run_id", runID)}, fields...)
}

// NoopLogger satisfies the small Info/Error logger interfaces used by platform packages.
type NoopLogger struct{}

func (NoopLogger) Info(context.Context, string, ...Field)  {}
func (NoopLogger) Error(context.Context, string, ...Field) {}
