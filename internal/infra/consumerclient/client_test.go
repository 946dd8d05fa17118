//go:build unit

package consumerclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"purchase-pipeline/internal/infra/consumerclient"
	"purchase-pipeline/internal/pkg/config"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/requestid"
	"purchase-pipeline/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBody = `[
	{"id":"8f7e3c2a-1b2c-4d5e-8f90-123456789abc","username":"alice","userid":"u1","price":20,"timestamp":"2024-05-01T12:00:02Z"},
	{"id":"1a2b3c4d-1b2c-4d5e-8f90-123456789abc","username":"alice","userid":"u1","price":10,"timestamp":"2024-05-01T12:00:01Z"}
]`

func newClient(t *testing.T, h http.HandlerFunc, timeout time.Duration) *consumerclient.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return consumerclient.NewClient(config.DownstreamConfig{ConsumerURL: srv.URL, Timeout: timeout})
}

func TestClient_FetchByUser(t *testing.T) {
	t.Run("decodes the list in downstream order", func(t *testing.T) {
		var gotPath, gotRequestID string
		client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotRequestID = r.Header.Get(requestid.Header)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(sampleBody))
		}, time.Second)

		ctx := requestid.WithID(context.Background(), "req-123")
		items, err := client.FetchByUser(ctx, "u1")
		require.NoError(t, err)

		assert.Equal(t, "/purchases/u1", gotPath)
		assert.Equal(t, "req-123", gotRequestID)
		require.Len(t, items, 2)
		assert.Equal(t, 20.0, items[0].Price)
		assert.Equal(t, 10.0, items[1].Price)
		assert.True(t, items[0].Timestamp.Equal(time.Date(2024, 5, 1, 12, 0, 2, 0, time.UTC)))
	})

	t.Run("empty list", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[]`))
		}, time.Second)

		items, err := client.FetchByUser(context.Background(), "nobody")
		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("non-2xx is a downstream failure", func(t *testing.T) {
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "boom"})
		}, time.Second)

		_, err := client.FetchByUser(context.Background(), "u1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrDownstreamUnavailable))
	})

	t.Run("timeout is a downstream failure", func(t *testing.T) {
		release := make(chan struct{})
		client := newClient(t, func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}, 50*time.Millisecond)
		defer close(release)

		_, err := client.FetchByUser(context.Background(), "u1")
		require.Error(t, err)
		assert.True(t, errs.Is(err, queries.ErrDownstreamUnavailable))
	})
}

func TestClient_FetchRecent(t *testing.T) {
	var gotPath string
	var gotRequestID string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRequestID = r.Header.Get(requestid.Header)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}, time.Second)

	items, err := client.FetchRecent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/purchases", gotPath)
	assert.Empty(t, gotRequestID)
	assert.Len(t, items, 2)
}

func TestClient_UnreachableConsumer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := consumerclient.NewClient(config.DownstreamConfig{ConsumerURL: url, Timeout: time.Second})
	_, err := client.FetchRecent(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, queries.ErrDownstreamUnavailable))
}
