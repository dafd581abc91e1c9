package postgres

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"emadiff/internal/modules/config"
	"emadiff/pkg/db"
	"emadiff/pkg/logger"
)

func Module() fx.Option {
	return fx.Module("postgres",
		fx.Provide(
			// nil manager when no DSN is configured: the recorder treats
			// that as "recording disabled"
			func(ctx context.Context, cfg *config.Config) (*db.PgTxManager, error) {
				if cfg.DB == "" {
					logger.Info("[PG] no dsn configured, sample recording disabled")
					return nil, nil
				}

				pool, err := db.NewPool(ctx, db.PoolConfig{
					DSN: cfg.DB,
				})
				if err != nil {
					return nil, errors.Wrap(err, "failed to create pool")
				}

				if err := pool.Ping(ctx); err != nil {
					return nil, err
				}

				return db.NewPgTxManager(pool), nil
			},
		),
	)
}
