package repository

import (
	"context"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/infra"
	"purchase-pipeline/internal/infra/converter"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/usecase/readmodel"
)

//go:generate mockgen -source=purchase.go -destination=../../../tests/mock/repository/purchase_mock.go -package=repository

type PurchaseWriteQueries interface {
	InsertPurchase(ctx context.Context, db pgdoc.DBTX, arg pgdoc.InsertPurchaseParams) (pgdoc.Purchase, error)
}

// PurchaseRepository appends documents; every call creates a new row, even for a
// purchase that was stored before.
type PurchaseRepository struct {
	queries PurchaseWriteQueries
	db      pgdoc.DBTX
}

func NewPurchaseRepository(queries PurchaseWriteQueries, db pgdoc.DBTX) *PurchaseRepository {
	return &PurchaseRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PurchaseRepository) Insert(ctx context.Context, p *purchase.Purchase) (*readmodel.PurchaseRM, error) {
	params, err := converter.PurchaseToInfra(p)
	if err != nil {
		return nil, err
	}

	row, err := r.queries.InsertPurchase(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to insert purchase", err)
	}

	rm, err := converter.PurchaseToReadModel(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to map inserted purchase", err, infra.KindDBFailure)
	}
	return rm, nil
}
