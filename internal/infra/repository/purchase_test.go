//go:build unit

package repository_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"purchase-pipeline/internal/infra"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/infra/repository"
	"purchase-pipeline/internal/pkg/pgconv"
	"purchase-pipeline/tests/common/builder"
	repositorymock "purchase-pipeline/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseRepository_Insert(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := builder.NewPurchaseBuilder().WithTimestamp(ts).MustBuildDomain()

	t.Run("success: stores the document and returns it with its id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
		repo := repository.NewPurchaseRepository(mockQueries, &mockDBTX{})
		id := uuid.New()

		mockQueries.EXPECT().InsertPurchase(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ pgdoc.DBTX, arg pgdoc.InsertPurchaseParams) (pgdoc.Purchase, error) {
				assert.Equal(t, "u1", arg.UserID)
				assert.True(t, arg.Timestamp.Time.Equal(ts))

				var doc map[string]any
				require.NoError(t, json.Unmarshal(arg.Doc, &doc))
				assert.Equal(t, "alice", doc["username"])
				assert.Equal(t, "u1", doc["userid"])
				assert.Equal(t, 19.99, doc["price"])

				return pgdoc.Purchase{Seq: 7, ID: pgconv.UUIDToPgtype(id), UserID: arg.UserID, Timestamp: arg.Timestamp, Doc: arg.Doc}, nil
			})

		stored, err := repo.Insert(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, id, stored.ID)
		assert.Equal(t, "alice", stored.Username)
		assert.Equal(t, 19.99, stored.Price)
		assert.True(t, stored.Timestamp.Equal(ts))
	})

	t.Run("error: database failure keeps the kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockPurchaseWriteQueries(ctrl)
		repo := repository.NewPurchaseRepository(mockQueries, &mockDBTX{})
		dbErr := errors.New("connection reset")

		mockQueries.EXPECT().InsertPurchase(ctx, gomock.Any(), gomock.Any()).Return(pgdoc.Purchase{}, dbErr)

		_, err := repo.Insert(ctx, p)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.ErrorIs(t, err, dbErr)
	})
}

type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
