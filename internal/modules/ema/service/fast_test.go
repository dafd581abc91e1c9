package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFastSeedsFirstObservationRaw(t *testing.T) {
	t.Parallel()

	f := NewFast(NewParams(1, 2.0))
	f.Update(42.5)
	v, ok := f.Result()
	require.True(t, ok)
	assert.Equal(t, 42.5, v)
}

// The weight of the first observation is (1-alpha)^n after n further
// updates: tiny, but never zero for finite n.
func TestFastFirstObservationNeverFullyDecays(t *testing.T) {
	t.Parallel()

	f := NewFast(NewParams(5, 2.0))
	f.Update(1)
	for i := 0; i < 500; i++ {
		f.Update(0)
	}

	v, ok := f.Result()
	require.True(t, ok)
	assert.Greater(t, v, 0.0)
}
