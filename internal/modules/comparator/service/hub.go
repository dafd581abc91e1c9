package service

import (
	"context"
	"math"
	"time"

	"github.com/opentracing/opentracing-go"

	"emadiff/internal/models"
	"emadiff/internal/modules/config"
	emasvc "emadiff/internal/modules/ema/service"
	"emadiff/internal/notify"
	"emadiff/pkg/logger"
)

// Hub feeds every closed candle to both EMA engines and publishes the
// paired readouts. Single caller only: the engines carry no locks, the
// module's tick loop is the one goroutine allowed in here.
type Hub struct {
	params   emasvc.Params
	fast     emasvc.Engine
	windowed emasvc.Engine

	n   notify.Notifier
	out chan<- models.DivergenceSample

	seq       int64
	threshold float64
	alerting  bool
}

func NewHub(
	cfg *config.Config,
	p emasvc.Params,
	n notify.Notifier,
	out chan<- models.DivergenceSample,
) *Hub {
	return &Hub{
		params:    p,
		fast:      emasvc.NewFast(p),
		windowed:  emasvc.NewWindowed(p),
		n:         n,
		out:       out,
		threshold: cfg.AlertThreshold,
	}
}

func (h *Hub) OnTick(ctx context.Context, t models.CandleTick) {
	span, _ := opentracing.StartSpanFromContext(ctx, "comparator.on_tick")
	defer span.Finish()
	span.SetTag("inst_id", t.InstID)

	h.seq++
	h.fast.Update(t.Close)
	h.windowed.Update(t.Close)

	fv, fok := h.fast.Result()
	wv, wok := h.windowed.Result()
	if !fok || !wok {
		logger.Info("[CMP] %s warmup %d/%d", t.InstID, h.seq, h.params.Window())
		return
	}

	delta := fv - wv
	logger.Info("[CMP] %s close=%.6f fast=%.6f windowed=%.6f delta=%.6f",
		t.InstID, t.Close, fv, wv, delta)

	sample := models.DivergenceSample{
		InstID:   t.InstID,
		Seq:      h.seq,
		Close:    t.Close,
		Fast:     fv,
		Windowed: wv,
		Delta:    delta,
		At:       time.Now(),
	}
	select {
	case h.out <- sample:
	default:
		logger.Error("[CMP] samples channel full, dropping seq=%d", h.seq)
	}

	h.checkAlert(t.InstID, delta)
}

// checkAlert notifies once per upward threshold crossing, not on every
// tick the drift stays above it.
func (h *Hub) checkAlert(instID string, delta float64) {
	if h.threshold <= 0 {
		return
	}
	over := math.Abs(delta) > h.threshold
	if over && !h.alerting {
		h.n.Sendf("⚠️ %s: fast vs windowed EMA drift %.6f exceeds %.6f", instID, delta, h.threshold)
	}
	h.alerting = over
}
