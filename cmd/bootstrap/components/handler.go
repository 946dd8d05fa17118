package components

import (
	"purchase-pipeline/internal/handler"
	"purchase-pipeline/internal/handler/api"

	"go.uber.org/fx"
)

var ProducerHandlerModule = fx.Module("handler/producer",
	fx.Provide(
		api.NewBuyHandler,
		api.NewHealthHandler,
		func(buy *api.BuyHandler, health *api.HealthHandler) handler.ProducerRoutes {
			return handler.ProducerRoutes{Buy: buy, Health: health}
		},
	),
	fx.Invoke(handler.NewProducerRouter),
)

var ConsumerHandlerModule = fx.Module("handler/consumer",
	fx.Provide(
		api.NewPurchaseHandler,
		api.NewHealthHandler,
		func(purchases *api.PurchaseHandler, health *api.HealthHandler) handler.ConsumerRoutes {
			return handler.ConsumerRoutes{Purchases: purchases, Health: health}
		},
	),
	fx.Invoke(handler.NewConsumerRouter),
)
