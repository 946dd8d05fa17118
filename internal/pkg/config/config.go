package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port), nothing else
// - default: Values that work for a local broker/database, overridable per deployment
// Both binaries load the same struct; each one reads only the sections it wires.
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Stream     StreamConfig
	DB         DBConfig
	Downstream DownstreamConfig
	Lifecycle  LifecycleConfig
	CORS       CORSConfig
	Log        LogConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

type StreamConfig struct {
	Brokers     []string      `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic       string        `envconfig:"KAFKA_TOPIC" default:"purchases"`
	GroupID     string        `envconfig:"KAFKA_GROUP_ID" default:"purchase-consumer-group"`
	DialTimeout time.Duration `envconfig:"KAFKA_DIAL_TIMEOUT" default:"5s"`
}

type DBConfig struct {
	URL      string `envconfig:"DB_URL"`
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName   string `envconfig:"DB_NAME" default:"purchases"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type DownstreamConfig struct {
	ConsumerURL string        `envconfig:"CONSUMER_SERVICE_URL" default:"http://localhost:3001"`
	Timeout     time.Duration `envconfig:"DOWNSTREAM_TIMEOUT" default:"3s"`
}

type LifecycleConfig struct {
	ReconnectBackoff    time.Duration `envconfig:"RECONNECT_BACKOFF" default:"5s"`
	HealthCheckInterval time.Duration `envconfig:"HEALTH_CHECK_INTERVAL" default:"5s"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Request-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-Id"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02T15:04:05.000Z07:00"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

func (c *DBConfig) BuildDSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:            "8889", // Test port
			ShutdownTimeout: 2 * time.Second,
		},
		Stream: StreamConfig{
			Brokers:     []string{"localhost:9092"},
			Topic:       "purchases-test",
			GroupID:     "purchase-consumer-test",
			DialTimeout: time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			MaxConns: 4,
		},
		Downstream: DownstreamConfig{
			ConsumerURL: "http://localhost:3001",
			Timeout:     500 * time.Millisecond,
		},
		Lifecycle: LifecycleConfig{
			ReconnectBackoff:    20 * time.Millisecond,
			HealthCheckInterval: 20 * time.Millisecond,
		},
		CORS: CORSConfig{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Request-Id"},
			ExposeHeaders: []string{"Content-Length", "X-Request-Id"},
			MaxAge:        time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02T15:04:05.000Z07:00",
			TimeZoneOffset: 0,
		},
	}
}
