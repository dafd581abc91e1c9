package service

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"

	"emadiff/internal/models"
	"emadiff/pkg/db"
)

const insertSampleSQL = `
insert into ema_divergence (inst_id, seq, price, fast, windowed, delta, recorded_at)
values ($1, $2, $3, $4, $5, $6, $7)`

// Recorder persists divergence samples. Engine state itself is never
// stored — only the readouts.
type Recorder struct {
	db *db.PgTxManager
}

func NewRecorder(db *db.PgTxManager) *Recorder {
	return &Recorder{db: db}
}

// Record writes one sample. No-op without a configured database.
func (r *Recorder) Record(ctx context.Context, s models.DivergenceSample) error {
	if r.db == nil {
		return nil
	}

	err := r.db.RunMaster(ctx, func(ctxTx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctxTx, insertSampleSQL,
			s.InstID, s.Seq, s.Close, s.Fast, s.Windowed, s.Delta, s.At)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "recorder: insert sample")
	}
	return nil
}
