package bootstrap

import (
	"context"
	"log/slog"

	"purchase-pipeline/internal/infra/db"
	"purchase-pipeline/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB does not dial; the store dependency connects once the supervisor starts.
// The pool closes after every hook registered later has stopped, ingestor included.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.NewPool(cfg.DB)
	if err != nil {
		return nil, err
	}
	logger.Info("document store configured",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("closing document store pool")
			cleanup()
			return nil
		},
	})

	return pool, nil
}
