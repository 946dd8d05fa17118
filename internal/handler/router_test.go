//go:build unit

package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"purchase-pipeline/internal/handler"
	"purchase-pipeline/internal/handler/api"
	"purchase-pipeline/internal/handler/middleware"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/lifecycle"
	"purchase-pipeline/internal/pkg/metrics"
	"purchase-pipeline/internal/pkg/requestid"
	"purchase-pipeline/internal/usecase/readmodel"
	"purchase-pipeline/tests/common/httptest"
	commandsmock "purchase-pipeline/tests/mock/commands"
	queriesmock "purchase-pipeline/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEngine(t *testing.T) (*gin.Engine, config.Config, *middleware.Logger, *metrics.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	return gin.New(), cfg, middleware.NewLogger(cfg.Log), metrics.NewRegistry("test")
}

func TestConsumerRouter(t *testing.T) {
	engine, cfg, logger, reg := newEngine(t)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockPurchaseQueries(ctrl)
	cmds := commandsmock.NewMockDirectWriteCommands(ctrl)
	tracker := lifecycle.NewTracker(lifecycle.DependencyStore, lifecycle.DependencyStream)

	handler.NewConsumerRouter(engine, cfg, logger, reg, handler.ConsumerRoutes{
		Purchases: api.NewPurchaseHandler(cmds, q),
		Health:    api.NewHealthHandler(tracker),
	})

	q.EXPECT().ListByUser(gomock.Any(), "u1").Return([]*readmodel.PurchaseRM{}, nil)
	q.EXPECT().ListRecent(gomock.Any()).Return([]*readmodel.PurchaseRM{}, nil)

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/purchases/u1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	httptest.AssertHeaderPresent(t, rec, requestid.Header)

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/purchases", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"status":"degraded","streamReady":false,"storeReady":false}`, rec.Body.String())

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"not_ready","reason":"starting"}`, rec.Body.String())

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `http_requests_total{method="GET",route="/purchases/:userid",service="test",status="200"} 1`), body)
	assert.Contains(t, body, "purchase_stream_messages_total")
}

func TestProducerRouter(t *testing.T) {
	engine, cfg, logger, reg := newEngine(t)
	ctrl := gomock.NewController(t)
	q := queriesmock.NewMockPurchaseQueries(ctrl)
	cmds := commandsmock.NewMockPurchaseCommands(ctrl)
	tracker := lifecycle.NewTracker(lifecycle.DependencyStream)

	handler.NewProducerRouter(engine, cfg, logger, reg, handler.ProducerRoutes{
		Buy:    api.NewBuyHandler(cmds, q),
		Health: api.NewHealthHandler(tracker),
	})

	rec := httptest.PerformRequest(t, engine, http.MethodGet, "/health", nil)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.PerformRequest(t, engine, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.PerformRequest(t, engine, http.MethodPost, "/buy", map[string]any{"username": "a", "userid": "u1", "price": "ten"})
	httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Invalid request body")

	rec = httptest.PerformRequestWithHeaders(t, engine, http.MethodOptions, "/buy", nil, map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})
	httptest.AssertHeaders(t, rec, map[string]string{"Access-Control-Allow-Origin": "http://localhost:3000"})
}
