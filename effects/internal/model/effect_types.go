package effectmodel

import "errors"

type EffectEnum string

const (
	EffectLog     EffectEnum = "effect_ive_io_effect_enum_log"
	EffectConsole EffectEnum = "effect_ive_io_effect_enum_console"
)

var ErrNoEffectHandler = errors.New("no effect handler registered for this effect")

const defaultInitialFrames = 16

// RunConfig tunes a single interpreter run.
type RunConfig struct {
	InitialFrames int  // default: 16, initial capacity of the pending continuation stack
	TraceSteps    bool // log every visited node at debug level
}

func NewRunConfig(initialFrames int, traceSteps bool) RunConfig {
	if initialFrames <= 0 {
		initialFrames = defaultInitialFrames
	}
	return RunConfig{
		InitialFrames: initialFrames,
		TraceSteps:    traceSteps,
	}
}
