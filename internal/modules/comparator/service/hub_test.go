package service

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"emadiff/internal/models"
	"emadiff/internal/modules/config"
	emasvc "emadiff/internal/modules/ema/service"
	"emadiff/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type recordingNotifier struct {
	msgs []string
}

func (r *recordingNotifier) Send(msg string) {
	r.msgs = append(r.msgs, msg)
}

func (r *recordingNotifier) Sendf(format string, args ...any) {
	r.Send(fmt.Sprintf(format, args...))
}

func newTestHub(threshold float64) (*Hub, *recordingNotifier, chan models.DivergenceSample) {
	cfg := &config.Config{AlertThreshold: threshold}
	n := &recordingNotifier{}
	out := make(chan models.DivergenceSample, 16)
	return NewHub(cfg, emasvc.NewParams(5, 2.0), n, out), n, out
}

func tick(v float64) models.CandleTick {
	return models.CandleTick{InstID: "BTC-USDT", Close: v}
}

func TestHubEmitsNothingDuringWarmup(t *testing.T) {
	hub, _, out := newTestHub(0)
	ctx := context.Background()

	for i := 1; i <= 4; i++ {
		hub.OnTick(ctx, tick(float64(i)))
	}
	assert.Empty(t, out)
}

func TestHubFirstSampleAgrees(t *testing.T) {
	hub, _, out := newTestHub(0)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		hub.OnTick(ctx, tick(float64(i)))
	}
	require.Len(t, out, 1)

	s := <-out
	assert.Equal(t, int64(5), s.Seq)
	assert.Equal(t, s.Fast, s.Windowed)
	assert.Zero(t, s.Delta)
}

func TestHubReportsDriftAfterEviction(t *testing.T) {
	hub, _, out := newTestHub(0)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		hub.OnTick(ctx, tick(float64(i)))
	}
	<-out
	hub.OnTick(ctx, tick(5))

	require.Len(t, out, 1)
	s := <-out
	assert.NotEqual(t, s.Fast, s.Windowed)
	assert.NotZero(t, s.Delta)
	assert.Equal(t, s.Fast-s.Windowed, s.Delta)
}

func TestHubAlertsOncePerCrossing(t *testing.T) {
	hub, n, _ := newTestHub(1e-9)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		hub.OnTick(ctx, tick(float64(i)))
	}
	assert.Empty(t, n.msgs, "first readout agrees, no drift to alert on")

	// drift appears and stays above the threshold: exactly one message
	for i := 0; i < 5; i++ {
		hub.OnTick(ctx, tick(5))
	}
	assert.Len(t, n.msgs, 1)
}
