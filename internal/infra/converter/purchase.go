package converter

import (
	"encoding/json"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/internal/pkg/pgconv"
	"purchase-pipeline/internal/usecase/readmodel"
)

// purchaseDoc is the JSONB body stored per purchase.
type purchaseDoc struct {
	Username  string    `json:"username"`
	UserID    string    `json:"userid"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

func PurchaseToInfra(p *purchase.Purchase) (pgdoc.InsertPurchaseParams, error) {
	doc, err := json.Marshal(purchaseDoc{
		Username:  p.Username(),
		UserID:    p.UserID(),
		Price:     p.Price(),
		Timestamp: p.Timestamp(),
	})
	if err != nil {
		return pgdoc.InsertPurchaseParams{}, errs.Wrap(err, "encode purchase document")
	}

	return pgdoc.InsertPurchaseParams{
		UserID:    p.UserID(),
		Timestamp: pgconv.TimeToPgtype(p.Timestamp()),
		Doc:       doc,
	}, nil
}

// PurchaseToReadModel takes userid and timestamp from the indexed columns so the
// read model always agrees with the ordering the store applied.
func PurchaseToReadModel(row pgdoc.Purchase) (*readmodel.PurchaseRM, error) {
	var doc purchaseDoc
	if err := json.Unmarshal(row.Doc, &doc); err != nil {
		return nil, errs.Wrapf(err, "decode purchase document %d", row.Seq)
	}

	return &readmodel.PurchaseRM{
		ID:        pgconv.UUIDFromPgtype(row.ID),
		Username:  doc.Username,
		UserID:    row.UserID,
		Price:     doc.Price,
		Timestamp: pgconv.TimeFromPgtype(row.Timestamp),
	}, nil
}

func PurchasesToReadModel(rows []pgdoc.Purchase) ([]*readmodel.PurchaseRM, error) {
	result := make([]*readmodel.PurchaseRM, 0, len(rows))
	for _, row := range rows {
		rm, err := PurchaseToReadModel(row)
		if err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	return result, nil
}
