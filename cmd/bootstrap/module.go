package bootstrap

import (
	"purchase-pipeline/cmd/bootstrap/components"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/metrics"

	"go.uber.org/fx"
)

const (
	ProducerService = "producer"
	ConsumerService = "consumer"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

func MetricsModule(service string) fx.Option {
	return fx.Module("metrics",
		fx.Provide(func() *metrics.Registry {
			return metrics.NewRegistry(service)
		}),
	)
}

// ProducerCore is everything the producer needs except its stream transport.
var ProducerCore = fx.Options(
	LoggerModule,
	MetricsModule(ProducerService),
	fx.Provide(ProducerDependencies),
	LifecycleModule,
	components.ProducerUseCaseModule,
	components.ProducerHandlerModule,
)

// ConsumerCore is everything the consumer needs except its stream transport and pool.
var ConsumerCore = fx.Options(
	LoggerModule,
	MetricsModule(ConsumerService),
	fx.Provide(ConsumerDependencies),
	LifecycleModule,
	components.PersistenceModule,
	components.ConsumerUseCaseModule,
	components.ConsumerHandlerModule,
)

var ProducerModule = fx.Options(
	ConfigModule,
	ServerModule,
	components.KafkaProducerModule,
	ProducerCore,
	FxLogger,
	fx.Invoke(StartBackground, StartServer),
)

var ConsumerModule = fx.Options(
	ConfigModule,
	DBModule,
	ServerModule,
	components.KafkaConsumerModule,
	ConsumerCore,
	FxLogger,
	fx.Invoke(StartBackground, StartServer),
)
