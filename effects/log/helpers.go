package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// WithTestEffectHandler installs a debug-level logger whose entries are
// recorded in the returned ObservedLogs.
func WithTestEffectHandler(
	ctx context.Context,
) (context.Context, *observer.ObservedLogs, func() context.Context) {
	core, logs := observer.New(zap.DebugLevel)
	ctx, end := WithZapEffectHandler(ctx, zap.New(core))
	return ctx, logs, end
}
