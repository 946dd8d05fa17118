package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"purchase-pipeline/internal/handler/api"
	"purchase-pipeline/internal/handler/middleware"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// ProducerRoutes is the producer's HTTP surface: submit, read-through and health.
type ProducerRoutes struct {
	Buy    *api.BuyHandler
	Health *api.HealthHandler
}

// ConsumerRoutes is the consumer's HTTP surface: store reads, direct write and health.
type ConsumerRoutes struct {
	Purchases *api.PurchaseHandler
	Health    *api.HealthHandler
}

func NewProducerRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *metrics.Registry, h ProducerRoutes) {
	setupMiddleware(engine, cfg, logger, reg)
	setupCommonRoutes(engine, reg)

	engine.GET("/health", h.Health.Live)
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/ready", Handler: h.Health.Ready},
		{Method: http.MethodPost, Path: "/buy", Handler: h.Buy.Buy},
		{Method: http.MethodGet, Path: "/getAllUserBuys/:userid", Handler: h.Buy.GetAllUserBuys},
	})
}

func NewConsumerRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *metrics.Registry, h ConsumerRoutes) {
	setupMiddleware(engine, cfg, logger, reg)
	setupCommonRoutes(engine, reg)

	engine.GET("/health", h.Health.ConsumerHealth)
	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodGet, Path: "/ready", Handler: h.Health.Ready},
	})

	purchases := engine.Group("/purchases")
	{
		addRoutes(purchases, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Purchases.ListRecent},
			{Method: http.MethodPost, Path: "", Handler: h.Purchases.DirectWrite},
			{Method: http.MethodGet, Path: "/:userid", Handler: h.Purchases.ListByUser},
		})
	}
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, reg *metrics.Registry) {
	slogger := logger.GetSlogLogger()
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery(slogger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, slogger))
	engine.Use(middleware.NewMetricsMiddleware(reg))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupCommonRoutes(engine *gin.Engine, reg *metrics.Registry) {
	engine.GET("/metrics", gin.WrapH(reg.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
