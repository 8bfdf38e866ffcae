package zaplog

import (
	"context"

	"go.uber.org/zap"

	"github.com/AntonioJCosta/adbkey/internal/core/ports"
)

// zapLogger implements ports.Logger on top of a sugared zap logger.
type zapLogger struct {
	logger *zap.SugaredLogger
}

type contextKey string

const loggerKey contextKey = "logger"

// New returns a development logger writing to stderr when verbose is set,
// and a no-op logger otherwise.
func New(verbose bool) (ports.Logger, error) {
	if !verbose {
		return NewNop(), nil
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return FromZap(l), nil
}

// NewNop returns a logger that discards everything.
func NewNop() ports.Logger {
	return FromZap(zap.NewNop())
}

// FromZap adapts an existing zap logger.
func FromZap(l *zap.Logger) ports.Logger {
	return &zapLogger{logger: l.Sugar()}
}

// WithLogger returns a new context carrying logger.
// This func will panic if the context is nil.
func WithLogger(ctx context.Context, logger ports.Logger) context.Context {
	if ctx == nil {
		panic("ctx cannot be nil")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger.
func FromContext(ctx context.Context) ports.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerKey).(ports.Logger); ok {
			return logger
		}
	}
	return NewNop()
}

func (l *zapLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *zapLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, keysAndValues...)
}

func (l *zapLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, keysAndValues...)
}

func (l *zapLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, keysAndValues...)
}
