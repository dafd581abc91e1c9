package service

import (
	"context"
	"time"

	"emadiff/internal/models"
)

// Replay feeds a fixed series at an interval: a deterministic stand-in
// for the live feed, handy for demos and warm-up checks.
type Replay struct {
	instID   string
	series   []float64
	interval time.Duration
}

func NewReplay(instID string, series []float64, interval time.Duration) *Replay {
	return &Replay{
		instID:   instID,
		series:   series,
		interval: interval,
	}
}

func (r *Replay) Stream(ctx context.Context) <-chan models.CandleTick {
	ch := make(chan models.CandleTick)

	go func() {
		defer close(ch)

		for i, v := range r.series {
			if r.interval > 0 && i > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(r.interval):
				}
			}

			tick := models.CandleTick{
				InstID: r.instID,
				Close:  v,
				Start:  time.Now(),
			}
			select {
			case ch <- tick:
			case <-ctx.Done():
				return
			}
		}
	}()

	return ch
}
