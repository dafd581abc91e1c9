package service

import (
	"context"

	"emadiff/internal/models"
)

// Source is anything that yields a strictly ordered stream of closed
// candles. The stream owns the ordering guarantee; downstream code does
// not timestamp, deduplicate or reorder.
type Source interface {
	Stream(ctx context.Context) <-chan models.CandleTick
}
