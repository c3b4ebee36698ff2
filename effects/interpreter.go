package effects

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/effect_ive_io/effects/internal/helper"
	effectmodel "github.com/on-the-ground/effect_ive_io/effects/internal/model"
	sharedHelper "github.com/on-the-ground/effect_ive_io/shared/helper"
)

// ErrNoEffectHandler is returned by primitives whose provider is missing from the run context.
var ErrNoEffectHandler = effectmodel.ErrNoEffectHandler

// ErrThunkPanicked wraps a panic raised inside a suspended effect.
var ErrThunkPanicked = errors.New("effect thunk panicked")

// RunConfig tunes a single interpreter run.
type RunConfig = effectmodel.RunConfig

// NewRunConfig builds a RunConfig, replacing a non-positive initialFrames with the default.
func NewRunConfig(initialFrames int, traceSteps bool) RunConfig {
	return effectmodel.NewRunConfig(initialFrames, traceSteps)
}

// SuspendedEffectFailure is the single failure a run returns when a suspended
// effect fails and no Recover frame handles it.
type SuspendedEffectFailure struct {
	RunID string
	Step  int // 1-based index of the failing effect within the run
	Cause error
}

func (f *SuspendedEffectFailure) Error() string {
	return fmt.Sprintf("suspended effect #%d failed: %v", f.Step, f.Cause)
}

func (f *SuspendedEffectFailure) Unwrap() error {
	return f.Cause
}

// Run interprets m to completion on the calling goroutine.
//
// The context is handed to every suspended effect; it carries the providers
// installed by WithXxxEffectHandler functions. The interpreter itself never
// checks it for cancellation.
func Run[A any](ctx context.Context, m Node[A]) (A, error) {
	a, _, err := RunWithReport(ctx, NewRunConfig(0, false), m)
	return a, err
}

// RunWithReport is Run with an explicit config, also returning what the run did.
func RunWithReport[A any](ctx context.Context, config RunConfig, m Node[A]) (A, Report, error) {
	t := &trampoline{
		ctx:    ctx,
		config: effectmodel.NewRunConfig(config.InitialFrames, config.TraceSteps),
		logger: loggerFrom(ctx),
		report: Report{RunID: uuid.New().String()},
	}

	t.logger.Debug("effect run started", zap.String("runId", t.report.RunID))
	start := time.Now()
	v, err := t.run(m.n)
	t.report.Span = NewTimeSpan(start, time.Now())

	if err != nil {
		t.logger.Debug("effect run failed",
			zap.String("runId", t.report.RunID),
			zap.Int("steps", t.report.Steps),
			zap.Error(err),
		)
		var zero A
		return zero, t.report, err
	}
	t.logger.Debug("effect run finished",
		zap.String("runId", t.report.RunID),
		zap.Int("steps", t.report.Steps),
		zap.Int("effects", t.report.Effects),
		zap.Duration("elapsed", t.report.Span.Duration()),
	)
	return valueOf[A](v), t.report, nil
}

var nopLogger = zap.NewNop()

func loggerFrom(ctx context.Context) *zap.Logger {
	return sharedHelper.GetTypedValueOr(func() (any, error) {
		return helper.GetHandler(ctx, effectmodel.EffectLog)
	}, nopLogger)
}

// frame is one pending unit of work. Exactly one of k and fallback is set:
// k continues a FlatMap on success, fallback resumes a Recover on failure.
type frame struct {
	k        func(any) node
	fallback func(error) node
}

type trampoline struct {
	ctx    context.Context
	config RunConfig
	logger *zap.Logger
	report Report
}

// run walks the graph with an explicit frame stack so that native stack usage
// stays constant however many FlatMap links are chained.
func (t *trampoline) run(root node) (any, error) {
	stack := make([]frame, 0, t.config.InitialFrames)
	current := root

	pop := func() frame {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = frame{}
		stack = stack[:len(stack)-1]
		return top
	}
	push := func(f frame) {
		stack = append(stack, f)
		if len(stack) > t.report.MaxFrames {
			t.report.MaxFrames = len(stack)
		}
	}

	for {
		t.report.Steps++
		if t.config.TraceSteps {
			t.trace(current, len(stack))
		}

		switch n := current.(type) {
		case nil:
			current = doneNode{}

		case doneNode:
			if len(stack) == 0 {
				return n.value, nil
			}
			// a Recover frame reached on success is dropped and the value passes through
			if top := pop(); top.k != nil {
				current = top.k(n.value)
			}

		case delayNode:
			t.report.Effects++
			v, err := t.invoke(n.thunk)
			if err == nil {
				current = doneNode{value: v}
				continue
			}
			// pending continuations are discarded unseen up to the nearest fallback
			var fallback func(error) node
			for fallback == nil && len(stack) > 0 {
				fallback = pop().fallback
			}
			if fallback == nil {
				return nil, &SuspendedEffectFailure{
					RunID: t.report.RunID,
					Step:  t.report.Effects,
					Cause: err,
				}
			}
			t.report.Recovered++
			current = fallback(err)

		case flatMapNode:
			push(frame{k: n.k})
			current = n.source

		case recoverNode:
			push(frame{fallback: n.fallback})
			current = n.source

		default:
			panic(fmt.Sprintf("exhaustive match fallback, node type: %T", current))
		}
	}
}

// invoke is the only place a suspended effect is executed.
func (t *trampoline) invoke(thunk func(context.Context) (any, error)) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			v = nil
			if rErr, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrThunkPanicked, rErr)
			} else {
				err = fmt.Errorf("%w: %v", ErrThunkPanicked, r)
			}
		}
	}()
	return thunk(t.ctx)
}

func (t *trampoline) trace(current node, frames int) {
	kind := KindDone
	if current != nil {
		kind = current.kind()
	}
	t.logger.Debug("visit node",
		zap.String("runId", t.report.RunID),
		zap.Int("step", t.report.Steps),
		zap.Stringer("kind", kind),
		zap.Int("frames", frames),
	)
}
