package log

import (
	"context"

	"go.uber.org/zap"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/internal/helper"
	effectmodel "github.com/on-the-ground/effect_ive_io/effects/internal/model"
	sharedHelper "github.com/on-the-ground/effect_ive_io/shared/helper"
)

// LogLevel defines the severity level for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for error events that might still allow the application to continue running.
	LogError LogLevel = "error"

	// LogDebug is used for debugging messages with detailed internal information.
	LogDebug LogLevel = "debug"
)

// LogPayload is what a log effect writes: level, message and optional structured fields.
type LogPayload struct {
	Level   LogLevel
	Message string
	Fields  map[string]interface{}
}

// WithZapEffectHandler installs logger as the log effect handler.
// The interpreter also logs its own run lifecycle through it.
// The teardown function syncs the logger and returns the context without the handler.
func WithZapEffectHandler(
	ctx context.Context,
	logger *zap.Logger,
) (context.Context, func() context.Context) {
	ctxWith := context.WithValue(ctx, effectmodel.EffectLog, logger)
	return ctxWith, func() context.Context {
		if err := logger.Sync(); err != nil {
			logger.Warn("failed to sync logger", zap.Error(err))
		}
		return ctx
	}
}

// Logger returns the logger installed in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	return sharedHelper.GetTypedValueOr(func() (any, error) {
		return helper.GetHandler(ctx, effectmodel.EffectLog)
	}, zap.NewNop())
}

// Eff describes writing one structured log entry.
// Without an installed handler the entry is dropped.
func Eff(level LogLevel, msg string, fields map[string]interface{}) effects.Node[effects.Unit] {
	payload := LogPayload{Level: level, Message: msg, Fields: fields}
	return effects.Delay(func(ctx context.Context) (effects.Unit, error) {
		write(Logger(ctx), payload)
		return effects.Unit{}, nil
	})
}

func Info(msg string, fields map[string]interface{}) effects.Node[effects.Unit] {
	return Eff(LogInfo, msg, fields)
}

func Warn(msg string, fields map[string]interface{}) effects.Node[effects.Unit] {
	return Eff(LogWarn, msg, fields)
}

func Error(msg string, fields map[string]interface{}) effects.Node[effects.Unit] {
	return Eff(LogError, msg, fields)
}

func Debug(msg string, fields map[string]interface{}) effects.Node[effects.Unit] {
	return Eff(LogDebug, msg, fields)
}

func write(logger *zap.Logger, payload LogPayload) {
	fields := make([]zap.Field, 0, len(payload.Fields))
	for k, v := range payload.Fields {
		fields = append(fields, zap.Any(k, v))
	}

	switch payload.Level {
	case LogInfo:
		logger.Info(payload.Message, fields...)
	case LogWarn:
		logger.Warn(payload.Message, fields...)
	case LogError:
		logger.Error(payload.Message, fields...)
	case LogDebug:
		logger.Debug(payload.Message, fields...)
	default:
		logger.Info(payload.Message, fields...)
	}
}
