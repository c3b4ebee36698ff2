package effects_test

import (
	"context"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/console"
	"github.com/on-the-ground/effect_ive_io/effects/console/consoletest"
	"github.com/on-the-ground/effect_ive_io/effects/log"
)

// newTestContext installs an observed logger and a console script.
func newTestContext(lines ...string) (context.Context, *consoletest.Script) {
	ctx, _, _ := log.WithTestEffectHandler(context.Background())
	script := consoletest.NewScript(lines...)
	ctx, _ = console.WithEffectHandler(ctx, script)
	return ctx, script
}

// counter returns an effect that increments n each time it runs and yields the new count.
func counter(n *int) effects.Node[int] {
	return effects.Eval(func() int {
		*n++
		return *n
	})
}
