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

// @title           purchase-producer
// @version         1.0
// @description     Accepts purchases and publishes them to the purchase stream.

// @BasePath  /
// @schemes http https
func main() {
	app := fx.New(bootstrap.ProducerModule)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start producer", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop producer cleanly", "error", err)
	}

	slog.Info("producer stopped")
}
