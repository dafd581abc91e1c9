package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowedLengthNeverExceedsWindow(t *testing.T) {
	t.Parallel()

	w := NewWindowed(NewParams(5, 2.0))
	for i := 0; i < 200; i++ {
		w.Update(float64(i))
		require.LessOrEqual(t, len(w.window), 5)
	}
}

func TestWindowedEvictsOldestFirst(t *testing.T) {
	t.Parallel()

	w := NewWindowed(NewParams(5, 2.0))
	feedSequential(w, 5)
	w.Update(10)

	assert.Equal(t, []float64{2, 3, 4, 5, 10}, w.window)
}

// Two engines with different histories but identical final windows must
// report the same value: evicted observations leave no trace.
func TestWindowedResultDependsOnWindowContentsOnly(t *testing.T) {
	t.Parallel()

	p := NewParams(5, 2.0)

	a := NewWindowed(p)
	for _, v := range []float64{1000, -500, 7.25, 1, 2, 3, 4, 5} {
		a.Update(v)
	}

	b := NewWindowed(p)
	feedSequential(b, 5)

	av, ok := a.Result()
	require.True(t, ok)
	bv, ok := b.Result()
	require.True(t, ok)
	assert.Equal(t, bv, av)
}
