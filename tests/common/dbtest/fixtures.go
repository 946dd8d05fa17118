//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/infra/pgdoc"
	"purchase-pipeline/internal/infra/repository"
	"purchase-pipeline/internal/usecase/readmodel"

	"github.com/stretchr/testify/require"
)

// InsertPurchase stores one document through the production repository.
func InsertPurchase(t *testing.T, db DBLike, username, userID string, price float64, ts time.Time) *readmodel.PurchaseRM {
	t.Helper()

	p, err := purchase.New(username, userID, price, ts)
	require.NoError(t, err)

	repo := repository.NewPurchaseRepository(pgdoc.New(), db)
	rm, err := repo.Insert(context.Background(), p)
	require.NoError(t, err)
	return rm
}

func CountPurchases(t *testing.T, db DBLike) int64 {
	t.Helper()
	n, err := pgdoc.New().CountPurchases(context.Background(), db)
	require.NoError(t, err)
	return n
}

func CountPurchasesForUser(t *testing.T, db DBLike, userID string) int64 {
	t.Helper()
	var n int64
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM purchases WHERE userid = $1", userID).Scan(&n)
	require.NoError(t, err)
	return n
}

func ResetDB(db DBLike) error {
	_, err := db.Exec(context.Background(), "TRUNCATE TABLE purchases RESTART IDENTITY")
	return err
}
