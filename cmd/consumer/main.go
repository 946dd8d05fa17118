package main

import (
	"context"
	"log/slog"
	"os"

	"purchase-pipeline/cmd/bootstrap"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// fail safe: never expose debug routes on a misconfigured deployment
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           purchase-consumer
// @version         1.0
// @description     Persists purchases from the purchase stream and serves them.

// @BasePath  /
// @schemes http https
func main() {
	app := fx.New(bootstrap.ConsumerModule)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start consumer", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop consumer cleanly", "error", err)
	}

	slog.Info("consumer stopped")
}
