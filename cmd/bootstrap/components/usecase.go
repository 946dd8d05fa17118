package components

import (
	"log/slog"

	"purchase-pipeline/internal/infra/consumerclient"
	"purchase-pipeline/internal/pkg/clock"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/ingest"
	"purchase-pipeline/internal/usecase/queries"

	"go.uber.org/fx"
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var ProducerUseCaseModule = fx.Module("usecase/producer",
	usecaseBaseOption,
	fx.Provide(
		commands.NewPurchaseCommands,
		fx.Annotate(
			NewConsumerClient,
			fx.As(new(queries.PurchaseSource)),
		),
		queries.NewRemotePurchaseQueries,
	),
)

var ConsumerUseCaseModule = fx.Module("usecase/consumer",
	usecaseBaseOption,
	fx.Provide(
		commands.NewDirectWriteCommands,
		queries.NewPurchaseQueries,
		NewIngestor,
	),
)

func NewConsumerClient(cfg config.Config) *consumerclient.Client {
	return consumerclient.NewClient(cfg.Downstream)
}

func NewIngestor(source ingest.MessageSource, store ingest.PurchaseStore, counter ingest.StreamCounter, clk clock.Clock, cfg config.Config, logger *slog.Logger) *ingest.Ingestor {
	return ingest.NewIngestor(source, store, counter, clk, cfg.Lifecycle, logger)
}
