package components

import (
	"context"

	"purchase-pipeline/internal/infra/stream"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/ingest"

	"go.uber.org/fx"
)

var brokerDependency = fx.Provide(
	fx.Annotate(
		NewBrokerDependency,
		fx.As(new(lifecycle.Dependency)),
		fx.ResultTags(`name:"stream"`),
	),
)

// KafkaProducerModule publishes purchases to the Kafka topic.
var KafkaProducerModule = fx.Module("stream/producer",
	brokerDependency,
	fx.Provide(
		fx.Annotate(
			NewKafkaPublisher,
			fx.As(new(commands.PurchasePublisher)),
		),
	),
)

// KafkaConsumerModule reads the topic as a member of the configured consumer group.
var KafkaConsumerModule = fx.Module("stream/consumer",
	brokerDependency,
	fx.Provide(
		fx.Annotate(
			NewKafkaSubscriber,
			fx.As(new(ingest.MessageSource)),
		),
	),
)

func NewBrokerDependency(cfg config.Config) *stream.BrokerDependency {
	return stream.NewBrokerDependency(cfg.Stream)
}

func NewKafkaPublisher(lc fx.Lifecycle, cfg config.Config) *stream.Publisher {
	p := stream.NewPublisher(cfg.Stream)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return p.Close()
		},
	})
	return p
}

func NewKafkaSubscriber(lc fx.Lifecycle, cfg config.Config) *stream.Subscriber {
	s := stream.NewSubscriber(cfg.Stream)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return s.Close()
		},
	})
	return s
}
