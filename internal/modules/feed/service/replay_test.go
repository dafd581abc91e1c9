package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplayStreamsSeriesInOrder(t *testing.T) {
	t.Parallel()

	r := NewReplay("TEST-USDT", []float64{1, 2, 3, 4, 5}, 0)

	var got []float64
	for tick := range r.Stream(context.Background()) {
		assert.Equal(t, "TEST-USDT", tick.InstID)
		got = append(got, tick.Close)
	}
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, got)
}

func TestReplayStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	r := NewReplay("TEST-USDT", make([]float64, 100), time.Hour)

	ch := r.Stream(ctx)
	<-ch // first tick is sent without waiting for the interval
	cancel()

	select {
	case _, ok := <-ch:
		require.False(t, ok, "stream must close after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("stream did not close after cancel")
	}
}
