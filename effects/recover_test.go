package effects_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/effect_ive_io/effects"
)

func TestRecover_ResumesWithFallback(t *testing.T) {
	boom := errors.New("boom")
	skipped := 0

	program := effects.Recover(
		effects.FlatMap(effects.Fail[int](boom), func(int) effects.Node[int] {
			skipped++
			return effects.Pure(1)
		}),
		func(err error) effects.Node[int] {
			assert.Same(t, boom, err)
			return effects.Pure(-1)
		},
	)

	v, report, err := effects.RunWithReport(context.Background(), effects.NewRunConfig(0, false), program)
	require.NoError(t, err)
	assert.Equal(t, -1, v)
	assert.Zero(t, skipped)
	assert.Equal(t, 1, report.Recovered)
}

func TestRecover_SuccessPassesThrough(t *testing.T) {
	called := false
	program := effects.Map(
		effects.Recover(effects.Pure(2), func(error) effects.Node[int] {
			called = true
			return effects.Pure(0)
		}),
		func(n int) int { return n + 1 },
	)

	v, err := effects.Run(context.Background(), program)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.False(t, called)
}

func TestRecover_FailureInFallbackReachesOuterFrame(t *testing.T) {
	inner, outer := errors.New("inner"), errors.New("outer")

	program := effects.Recover(
		effects.Recover(effects.Fail[string](inner), func(err error) effects.Node[string] {
			return effects.Fail[string](outer)
		}),
		func(err error) effects.Node[string] {
			return effects.Pure("handled " + err.Error())
		},
	)

	v, err := effects.Run(context.Background(), program)
	require.NoError(t, err)
	assert.Equal(t, "handled outer", v)

	_, err = effects.Run(context.Background(), effects.Recover(effects.Fail[int](inner), func(err error) effects.Node[int] {
		return effects.Fail[int](outer)
	}))
	assert.ErrorIs(t, err, outer)
	assert.NotErrorIs(t, err, inner)
}

func TestAttempt(t *testing.T) {
	boom := errors.New("boom")

	ok, err := effects.Run(context.Background(), effects.Attempt(effects.Pure("fine")))
	require.NoError(t, err)
	assert.True(t, ok.Ok())
	assert.Equal(t, "fine", ok.Value)

	failed, err := effects.Run(context.Background(), effects.Attempt(effects.Fail[string](boom)))
	require.NoError(t, err)
	assert.False(t, failed.Ok())
	assert.ErrorIs(t, failed.Err, boom)
}

func TestRaiseIfErr(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	program := effects.RaiseIfErr(func() (int, error) {
		calls++
		return 0, boom
	})
	assert.Zero(t, calls)

	_, err := effects.Run(context.Background(), program)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}
