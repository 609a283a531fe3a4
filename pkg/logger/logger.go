package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const (
	ContextKeyTraceID   contextKey = "trace_id"
	ContextKeyInvoiceID contextKey = "invoice_id"
)

type Logger struct {
	zap *zap.Logger
}

func New(level string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	zapLogger, _ := config.Build()
	return &Logger{zap: zapLogger}
}

func NewNop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, ContextKeyTraceID, traceID)
}

func WithInvoiceID(ctx context.Context, invoiceID string) context.Context {
	return context.WithValue(ctx, ContextKeyInvoiceID, invoiceID)
}

func GetTraceID(ctx context.Context) string {
	if v := ctx.Value(ContextKeyTraceID); v != nil {
		if traceID, ok := v.(string); ok {
			return traceID
		}
	}
	return ""
}

func GetInvoiceID(ctx context.Context) string {
	if v := ctx.Value(ContextKeyInvoiceID); v != nil {
		if invoiceID, ok := v.(string); ok {
			return invoiceID
		}
	}
	return ""
}

func (l *Logger) buildFields(ctx context.Context, fields ...interface{}) []zap.Field {
	zapFields := []zap.Field{}

	if traceID := GetTraceID(ctx); traceID != "" {
		zapFields = append(zapFields, zap.String("trace_id", traceID))
	}

	if invoiceID := GetInvoiceID(ctx); invoiceID != "" {
		zapFields = append(zapFields, zap.String("invoice_id", invoiceID))
	}

	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			key, ok := fields[i].(string)
			if !ok {
				continue
			}
			value := fields[i+1]
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}

	return zapFields
}

func (l *Logger) Debug(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Debug(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Info(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Info(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Warn(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Error(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Error(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Fatal(ctx context.Context, msg string, fields ...interface{}) {
	l.zap.Fatal(msg, l.buildFields(ctx, fields...)...)
}

func (l *Logger) Sync() error {
	return l.zap.Sync()
}
