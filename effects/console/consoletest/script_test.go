package consoletest_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/on-the-ground/effect_ive_io/effects/console"
	"github.com/on-the-ground/effect_ive_io/effects/console/consoletest"
)

func TestScript_ReplaysAndRecords(t *testing.T) {
	ctx := context.Background()
	s := consoletest.NewScript("a", "b")

	for _, want := range []string{"a", "b"} {
		got, err := s.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := s.ReadLine(ctx)
	assert.ErrorIs(t, err, console.ErrInputUnavailable)
	assert.Equal(t, 2, s.Reads())

	require.NoError(t, s.WriteLine(ctx, "out"))
	writes := s.Writes()
	writes[0] = "mutated"
	assert.Equal(t, []string{"out"}, s.Writes())
}
