package components

import (
	"log/slog"

	"purchase-pipeline/internal/infra/db"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/infra/readstore"
	"purchase-pipeline/internal/infra/repository"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/ingest"
	"purchase-pipeline/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	fx.Annotate(
		NewStoreDependency,
		fx.As(new(lifecycle.Dependency)),
		fx.ResultTags(`name:"store"`),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.PurchaseReadQueries)),
		),
		fx.Annotate(
			readstore.NewPurchaseReadStore,
			fx.As(new(queries.PurchaseReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.PurchaseWriteQueries)),
		),
		fx.Annotate(
			repository.NewPurchaseRepository,
			fx.As(new(commands.PurchaseRepository)),
			fx.As(new(ingest.PurchaseStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgdoc.Queries {
	return pgdoc.New()
}

func NewDBTX(pool *pgxpool.Pool) pgdoc.DBTX {
	return pool
}

func NewStoreDependency(pool *pgxpool.Pool, logger *slog.Logger) *db.StoreDependency {
	return db.NewStoreDependency(pool, logger)
}
