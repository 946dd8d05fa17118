//go:build unit

package config_test

import (
	"testing"
	"time"

	"purchase-pipeline/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults with only required values set", func(t *testing.T) {
		t.Setenv("PORT", "3000")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, []string{"localhost:9092"}, cfg.Stream.Brokers)
		assert.Equal(t, "purchases", cfg.Stream.Topic)
		assert.Equal(t, "purchase-consumer-group", cfg.Stream.GroupID)
		assert.Equal(t, "http://localhost:3001", cfg.Downstream.ConsumerURL)
		assert.Equal(t, 3*time.Second, cfg.Downstream.Timeout)
		assert.Equal(t, 5*time.Second, cfg.Lifecycle.ReconnectBackoff)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("PORT", "3001")
		t.Setenv("KAFKA_BROKERS", "kafka-0:9092,kafka-1:9092")
		t.Setenv("KAFKA_TOPIC", "orders")
		t.Setenv("KAFKA_GROUP_ID", "orders-group")
		t.Setenv("DOWNSTREAM_TIMEOUT", "1500ms")
		t.Setenv("RECONNECT_BACKOFF", "1s")

		cfg, err := config.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"kafka-0:9092", "kafka-1:9092"}, cfg.Stream.Brokers)
		assert.Equal(t, "orders", cfg.Stream.Topic)
		assert.Equal(t, "orders-group", cfg.Stream.GroupID)
		assert.Equal(t, 1500*time.Millisecond, cfg.Downstream.Timeout)
		assert.Equal(t, time.Second, cfg.Lifecycle.ReconnectBackoff)
	})

	t.Run("missing port fails", func(t *testing.T) {
		t.Setenv("PORT", "")

		_, err := config.LoadConfig()
		assert.Error(t, err)
	})
}

func TestDBConfig_BuildDSN(t *testing.T) {
	t.Run("url takes precedence", func(t *testing.T) {
		c := config.DBConfig{URL: "postgres://u:p@db:5432/x", Host: "ignored"}
		assert.Equal(t, "postgres://u:p@db:5432/x", c.BuildDSN())
	})

	t.Run("built from parts", func(t *testing.T) {
		c := config.DBConfig{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "purchases", SSLMode: "disable"}
		assert.Equal(t, "postgres://u:p@db:5432/purchases?sslmode=disable", c.BuildDSN())
	})
}
