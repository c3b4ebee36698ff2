package log_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/log"
)

func TestLogEffect_WritesWhenInterpreted(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, end := log.WithZapEffectHandler(context.Background(), zap.New(core))
	defer end()

	program := effects.Sequence(
		log.Info("started", map[string]interface{}{"attempt": 1}),
		log.Warn("careful", nil),
		log.Error("broken", nil),
		log.Debug("details", nil),
		log.Eff(log.LogLevel("unknown"), "fallback", nil),
	)
	assert.Zero(t, logs.FilterMessage("started").Len(), "building must not log")

	_, err := effects.Run(ctx, program)
	require.NoError(t, err)

	started := logs.FilterMessage("started").All()
	require.Len(t, started, 1)
	assert.Equal(t, zapcore.InfoLevel, started[0].Level)
	assert.EqualValues(t, 1, started[0].ContextMap()["attempt"])

	assert.Equal(t, zapcore.WarnLevel, logs.FilterMessage("careful").All()[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, logs.FilterMessage("broken").All()[0].Level)
	assert.Equal(t, zapcore.DebugLevel, logs.FilterMessage("details").All()[0].Level)
	assert.Equal(t, zapcore.InfoLevel, logs.FilterMessage("fallback").All()[0].Level)
}

func TestLogEffect_WithoutHandlerIsDropped(t *testing.T) {
	_, err := effects.Run(context.Background(), log.Info("nobody", nil))
	require.NoError(t, err)
}

func TestLogger_FromContext(t *testing.T) {
	ctx, logs, end := log.WithTestEffectHandler(context.Background())
	log.Logger(ctx).Info("installed")
	assert.Equal(t, 1, logs.FilterMessage("installed").Len())

	log.Logger(end()).Info("removed")
	assert.Zero(t, logs.FilterMessage("removed").Len(), "teardown must drop the handler")
}
