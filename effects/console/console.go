// Package console provides the line-oriented terminal primitives.
//
// Programs never touch a terminal directly: ReadLine and PrintLine only describe
// a read or write, and the Provider installed in the run context performs it
// when the interpreter reaches the node.
package console

import (
	"context"
	"errors"

	"github.com/on-the-ground/effect_ive_io/effects"
	"github.com/on-the-ground/effect_ive_io/effects/internal/helper"
	effectmodel "github.com/on-the-ground/effect_ive_io/effects/internal/model"
	sharedHelper "github.com/on-the-ground/effect_ive_io/shared/helper"
)

// ErrInputUnavailable is returned by a read once the input is exhausted.
var ErrInputUnavailable = errors.New("input unavailable")

// LineReader blocks until one line is available and returns it without its terminator.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}

// LineWriter blocks until text and a line terminator are written.
type LineWriter interface {
	WriteLine(ctx context.Context, text string) error
}

// Provider performs the console primitives for a run.
type Provider interface {
	LineReader
	LineWriter
}

// WithEffectHandler installs provider as the console effect handler.
// The returned function gives back the context without it.
func WithEffectHandler(
	ctx context.Context,
	provider Provider,
) (context.Context, func() context.Context) {
	ctxWith := context.WithValue(ctx, effectmodel.EffectConsole, provider)
	return ctxWith, func() context.Context {
		return ctx
	}
}

// ReadLine describes reading one line from the installed provider.
func ReadLine() effects.Node[string] {
	return effects.Delay(func(ctx context.Context) (string, error) {
		p, err := providerOf(ctx)
		if err != nil {
			return "", err
		}
		return p.ReadLine(ctx)
	})
}

// PrintLine describes writing text as one line to the installed provider.
func PrintLine(text string) effects.Node[effects.Unit] {
	return effects.Delay(func(ctx context.Context) (effects.Unit, error) {
		p, err := providerOf(ctx)
		if err != nil {
			return effects.Unit{}, err
		}
		return effects.Unit{}, p.WriteLine(ctx, text)
	})
}

// PrintLines writes each text in order as its own line.
func PrintLines(texts ...string) effects.Node[effects.Unit] {
	return effects.ForEach(texts, PrintLine)
}

func providerOf(ctx context.Context) (Provider, error) {
	return sharedHelper.GetTypedValueOf[Provider](func() (any, error) {
		return helper.GetHandler(ctx, effectmodel.EffectConsole)
	})
}
