//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"purchase-pipeline/cmd/bootstrap"
	"purchase-pipeline/internal/infra/db"
	"purchase-pipeline/internal/infra/stream/memstream"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/usecase/commands"
	"purchase-pipeline/internal/usecase/ingest"
	"purchase-pipeline/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	streamPartitions = 3
	readyTimeout     = 10 * time.Second
)

var (
	postgresContainerOnce sync.Once
	postgresTestContainer testcontainers.Container

	testUser     = "test"
	testPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

// Pipeline is one producer and one consumer joined by an in-memory stream. The consumer
// is served over a real HTTP listener because the producer reads through it.
type Pipeline struct {
	Producer         *gin.Engine
	Consumer         *gin.Engine
	ProducerTracker  *lifecycle.Tracker
	ConsumerTracker  *lifecycle.Tracker
	Broker           *memstream.Broker
	DB               *pgxpool.Pool
	Config           config.Config
	ConsumerEndpoint *httptest.Server
}

// ------------------------------------------------------------
// per test process setup
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) *Pipeline {
	postgresInfo := startContainers(t)

	dbConfig := prepareDatabase(t, postgresInfo)
	cfg := createTestConfig(dbConfig)

	pool, cleanup, err := db.NewPool(cfg.DB)
	require.NoError(t, err, "failed to create database pool")
	t.Cleanup(cleanup)

	broker := memstream.NewBroker(streamPartitions)
	p := &Pipeline{Broker: broker, DB: pool}

	consumerApp := buildConsumerApp(cfg, pool, broker, &p.Consumer, &p.ConsumerTracker)
	p.ConsumerEndpoint = httptest.NewServer(p.Consumer)

	cfg.Downstream.ConsumerURL = p.ConsumerEndpoint.URL
	p.Config = cfg
	producerApp := buildProducerApp(cfg, broker, &p.Producer, &p.ProducerTracker)

	// stop order: producer, consumer endpoint, consumer
	t.Cleanup(func() {
		stopApp(consumerApp)
	})
	t.Cleanup(p.ConsumerEndpoint.Close)
	t.Cleanup(func() {
		stopApp(producerApp)
	})

	require.Eventually(t, func() bool {
		return p.ConsumerTracker.Ready() && p.ProducerTracker.Ready()
	}, readyTimeout, 10*time.Millisecond, "services never became ready")

	slog.Info("e2e environment ready",
		"postgres_host", postgresInfo.Host,
		"postgres_port", postgresInfo.Port.Port())

	return p
}

func stopApp(app *fx.App) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Stop(ctx); err != nil {
		slog.Warn("failed to stop fx application", "error", err.Error())
	}
}

// ------------------------------------------------------------
// containers
// ------------------------------------------------------------
func startContainers(t *testing.T) ContainerInfo {
	gin.SetMode(gin.TestMode)
	startPostgreSQLContainerOnce(t)

	postgresInfo, err := getContainerHostPort(postgresTestContainer, "5432/tcp")
	require.NoError(t, err, "failed to read PostgreSQL container address")

	return postgresInfo
}

// ------------------------------------------------------------
// database
// ------------------------------------------------------------
func prepareDatabase(t *testing.T, postgresInfo ContainerInfo) config.DBConfig {
	// one database per test process
	dbName := "testdb_" + strings.ReplaceAll(uuid.New().String(), "-", "")

	adminDSN := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		testUser, testPassword, postgresInfo.Host, postgresInfo.Port.Port())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	adminPool, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection failed")
	defer adminPool.Close()

	var createErr error
	for attempts := range 5 {
		var waitTime time.Duration
		if attempts > 0 {
			waitTime = time.Duration(500+attempts*500) * time.Millisecond
			waitTime = min(waitTime, 3*time.Second)
			time.Sleep(waitTime)
		}
		_, createErr = adminPool.Exec(ctx, "CREATE DATABASE "+dbName)
		if createErr == nil {
			break
		}
		slog.Warn("retrying database creation", "attempt", attempts+1, "error", createErr.Error(), "retry_wait", waitTime)
	}
	require.NoError(t, createErr, "failed to create test database")

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cleanupCancel()

		cleanupPool, err := pgxpool.New(cleanupCtx, adminDSN)
		if err != nil {
			slog.Warn("cleanup connection failed", "database", dbName, "error", err.Error())
			return
		}
		defer cleanupPool.Close()

		_, err = cleanupPool.Exec(cleanupCtx, "DROP DATABASE IF EXISTS "+dbName+" WITH (FORCE)")
		if err != nil {
			slog.Warn("failed to drop test database", "database", dbName, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     postgresInfo.Host,
		Port:     postgresInfo.Port.Port(),
		User:     testUser,
		Password: testPassword,
		DBName:   dbName,
		SSLMode:  "disable",
		MaxConns: 8,
	}
}

// ------------------------------------------------------------
// fx applications
// ------------------------------------------------------------
func buildConsumerApp(cfg config.Config, pool *pgxpool.Pool, broker *memstream.Broker, engine **gin.Engine, tracker **lifecycle.Tracker) *fx.App {
	testInfraModule := fx.Module("testinfra",
		fx.Provide(
			func() config.Config { return cfg },
			func() *pgxpool.Pool { return pool },
			func() *gin.Engine { return gin.New() },
			fx.Annotate(
				broker.Dependency,
				fx.ResultTags(`name:"stream"`),
			),
			fx.Annotate(
				func() *memstream.Subscriber {
					return broker.Subscriber(cfg.Stream.Topic, cfg.Stream.GroupID)
				},
				fx.As(new(ingest.MessageSource)),
			),
		),
	)

	return startApp(
		testInfraModule,
		bootstrap.ConsumerCore,
		fx.Invoke(bootstrap.StartBackground),
		fx.Populate(engine, tracker),
	)
}

func buildProducerApp(cfg config.Config, broker *memstream.Broker, engine **gin.Engine, tracker **lifecycle.Tracker) *fx.App {
	testInfraModule := fx.Module("testinfra",
		fx.Provide(
			func() config.Config { return cfg },
			func() *gin.Engine { return gin.New() },
			fx.Annotate(
				broker.Dependency,
				fx.ResultTags(`name:"stream"`),
			),
			fx.Annotate(
				func() *memstream.Publisher {
					return broker.Publisher(cfg.Stream.Topic)
				},
				fx.As(new(commands.PurchasePublisher)),
			),
		),
	)

	return startApp(
		testInfraModule,
		bootstrap.ProducerCore,
		fx.Invoke(bootstrap.StartBackground),
		fx.Populate(engine, tracker),
	)
}

func startApp(opts ...fx.Option) *fx.App {
	app := fx.New(append(opts, fx.NopLogger)...)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return app
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.DB = dbConfig
	return testConfig
}

// ------------------------------------------------------------
// container helpers
// ------------------------------------------------------------
func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func startPostgreSQLContainerOnce(t *testing.T) {
	postgresContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       "postgres",
			},
			Tmpfs: map[string]string{
				"/var/lib/postgresql/data": "rw,size=256m",
			},
			Cmd: []string{
				"postgres",
				"-c", "fsync=off",
				"-c", "full_page_writes=off",
				"-c", "synchronous_commit=off",
				"-c", "max_connections=200",
				"-c", "log_statement=none",
			},
			WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
				return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
					testUser, testPassword, host, port.Port())
			}).WithStartupTimeout(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		postgresTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start PostgreSQL container")

		t.Cleanup(func() {
			if postgresTestContainer != nil {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := postgresTestContainer.Terminate(ctx); err != nil {
					slog.Warn("failed to terminate PostgreSQL container", "error", err.Error())
				}
			}
		})
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}

// ------------------------------------------------------------
// shared suite
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Pipeline *Pipeline
}

func (s *SharedSuite) SetupSuite() {
	s.Pipeline = setupE2EEnvironment(s.T())
	require.NotNil(s.T(), s.Pipeline.Producer, "producer router not built")
	require.NotNil(s.T(), s.Pipeline.Consumer, "consumer router not built")
}

func (s *SharedSuite) SetupSubTest() {
	err := dbtest.ResetDB(s.Pipeline.DB)
	require.NoError(s.T(), err, "Failed to reset database state")
}
