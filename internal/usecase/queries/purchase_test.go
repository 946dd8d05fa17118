//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"purchase-pipeline/internal/usecase/queries"
	"purchase-pipeline/internal/usecase/readmodel"
	"purchase-pipeline/tests/common/builder"
	queriesmock "purchase-pipeline/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPurchaseQueries_ListByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("returns store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		q := queries.NewPurchaseQueries(store)

		items := []*readmodel.PurchaseRM{
			builder.NewPurchaseBuilder().WithPrice(2).BuildReadModel(),
			builder.NewPurchaseBuilder().WithPrice(1).BuildReadModel(),
		}
		store.EXPECT().ListByUser(ctx, "u1").Return(items, nil)

		got, err := q.ListByUser(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, items, got)
	})

	t.Run("nil from store becomes empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		q := queries.NewPurchaseQueries(store)

		store.EXPECT().ListByUser(ctx, "nobody").Return(nil, nil)

		got, err := q.ListByUser(ctx, "nobody")
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("store error is wrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		q := queries.NewPurchaseQueries(store)
		storeErr := errors.New("db down")

		store.EXPECT().ListByUser(ctx, "u1").Return(nil, storeErr)

		_, err := q.ListByUser(ctx, "u1")
		assert.ErrorIs(t, err, storeErr)
	})
}

func TestPurchaseQueries_ListRecent(t *testing.T) {
	ctx := context.Background()

	t.Run("asks the store for the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		q := queries.NewPurchaseQueries(store)

		store.EXPECT().ListRecent(ctx, queries.RecentLimit).Return([]*readmodel.PurchaseRM{}, nil)

		got, err := q.ListRecent(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("never returns more than the cap", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockPurchaseReadStore(ctrl)
		q := queries.NewPurchaseQueries(store)

		items := make([]*readmodel.PurchaseRM, queries.RecentLimit+1)
		for i := range items {
			items[i] = builder.NewPurchaseBuilder().BuildReadModel()
		}
		store.EXPECT().ListRecent(ctx, queries.RecentLimit).Return(items, nil)

		got, err := q.ListRecent(ctx)
		require.NoError(t, err)
		assert.Len(t, got, queries.RecentLimit)
		assert.Equal(t, items[0], got[0])
	})
}
