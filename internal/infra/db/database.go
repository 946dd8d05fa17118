package db

import (
	"context"
	_ "embed"
	"log/slog"
	"time"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/lifecycle"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var Schema string

const pingTimeout = 2 * time.Second

// NewPool builds a lazily connecting pool; StoreDependency establishes the first connection.
func NewPool(cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to parse database config")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnIdleTime = 5 * time.Minute
	poolCfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		return nil, nil, errs.Wrap(err, "failed to create database pool")
	}

	cleanup := func() {
		pool.Close()
	}

	return pool, cleanup, nil
}

// StoreDependency reports the document store to the lifecycle supervisor.
type StoreDependency struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ lifecycle.Dependency = (*StoreDependency)(nil)

func NewStoreDependency(pool *pgxpool.Pool, logger *slog.Logger) *StoreDependency {
	return &StoreDependency{pool: pool, logger: logger}
}

func (d *StoreDependency) Name() string { return lifecycle.DependencyStore }

// Connect pings the database and applies the schema. Safe to repeat.
func (d *StoreDependency) Connect(ctx context.Context) error {
	if err := d.Check(ctx); err != nil {
		return err
	}
	if _, err := d.pool.Exec(ctx, Schema); err != nil {
		return errs.Wrap(err, "failed to apply schema")
	}
	d.logger.Info("document store ready")
	return nil
}

func (d *StoreDependency) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.pool.Ping(ctx); err != nil {
		return errs.Wrap(err, "failed to ping database")
	}
	return nil
}
