package effects_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/effect_ive_io/effects"
)

func double(x int) int { return x * 2 }

func TestRef_ModifyThenGet(t *testing.T) {
	program := effects.FlatMap(effects.NewRef(1), func(r effects.Ref[int]) effects.Node[int] {
		return effects.Then(
			effects.Replicate(5, r.Modify(double)),
			r.Get(),
		)
	})

	v, err := effects.Run(context.Background(), program)
	require.NoError(t, err)
	assert.Equal(t, 32, v)
}

func TestRef_ReadsFollowProgramOrder(t *testing.T) {
	program := effects.FlatMap(effects.NewRef("a"), func(r effects.Ref[string]) effects.Node[[]string] {
		return effects.Fold([]string{"b", "c", "d"}, []string{}, func(acc []string, next string) effects.Node[[]string] {
			return effects.FlatMap(r.Get(), func(cur string) effects.Node[[]string] {
				return effects.Then(r.Set(next), effects.Pure(append(acc, cur)))
			})
		})
	})

	seen, err := effects.Run(context.Background(), program)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestRef_EachAllocationIsFresh(t *testing.T) {
	alloc := effects.NewRef(0)
	program := effects.Product(alloc, alloc)

	p, err := effects.Run(context.Background(), program)
	require.NoError(t, err)
	assert.NotEqual(t, p.First.ID(), p.Second.ID())

	v, err := effects.Run(context.Background(), effects.Then(p.First.Set(7), p.Second.Get()))
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestRef_WritesSurviveLaterFailure(t *testing.T) {
	boom := errors.New("boom")
	var ref effects.Ref[int]

	program := effects.FlatMap(effects.NewRef(10), func(r effects.Ref[int]) effects.Node[int] {
		ref = r
		return effects.Then(r.Modify(double), effects.Fail[int](boom))
	})
	_, err := effects.Run(context.Background(), program)
	require.ErrorIs(t, err, boom)

	v, err := effects.Run(context.Background(), ref.Get())
	require.NoError(t, err)
	assert.Equal(t, 20, v, "committed writes are not rolled back")
}

func TestRef_ZeroValueFails(t *testing.T) {
	var r effects.Ref[int]
	assert.Empty(t, r.ID())

	_, err := effects.Run(context.Background(), r.Get())
	assert.ErrorIs(t, err, effects.ErrUnallocatedRef)
}
