package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/lifecycle"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var ServerModule = fx.Module("server",
	fx.Provide(
		func() *gin.Engine {
			return gin.New()
		},
		NewHTTPServer,
	),
)

func NewHTTPServer(engine *gin.Engine, cfg config.Config) *http.Server {
	return &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// StartServer must be invoked after StartBackground so that on stop readiness flips first,
// then HTTP drains, then background work stops.
func StartServer(lc fx.Lifecycle, srv *http.Server, sup *lifecycle.Supervisor, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("starting HTTP server", "address", srv.Addr, "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("HTTP server stopped unexpectedly", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			sup.BeginShutdown()
			return nil
		},
	})
}
