package readstore

import (
	"context"

	"purchase-pipeline/internal/infra"
	"purchase-pipeline/internal/infra/converter"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/readstore/purchase_mock.go -package=readstore

type PurchaseReadQueries interface {
	ListPurchasesByUser(ctx context.Context, db pgdoc.DBTX, userID string) ([]pgdoc.Purchase, error)
	ListRecentPurchases(ctx context.Context, db pgdoc.DBTX, limit int32) ([]pgdoc.Purchase, error)
}

type PurchaseReadStore struct {
	queries PurchaseReadQueries
	db      pgdoc.DBTX
}

func NewPurchaseReadStore(queries PurchaseReadQueries, db pgdoc.DBTX) *PurchaseReadStore {
	return &PurchaseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseReadStore) ListByUser(ctx context.Context, userID string) ([]*readmodel.PurchaseRM, error) {
	rows, err := r.queries.ListPurchasesByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list purchases by user", err, infra.KindDBFailure)
	}
	items, err := converter.PurchasesToReadModel(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map purchases by user", err, infra.KindDBFailure)
	}
	return items, nil
}

func (r *PurchaseReadStore) ListRecent(ctx context.Context, limit int) ([]*readmodel.PurchaseRM, error) {
	rows, err := r.queries.ListRecentPurchases(ctx, r.db, int32(limit))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list recent purchases", err, infra.KindDBFailure)
	}
	items, err := converter.PurchasesToReadModel(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map recent purchases", err, infra.KindDBFailure)
	}
	return items, nil
}
