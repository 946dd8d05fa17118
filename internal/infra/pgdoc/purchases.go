package pgdoc

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type Purchase struct {
	Seq       int64
	ID        pgtype.UUID
	UserID    string
	Timestamp pgtype.Timestamptz
	Doc       []byte
}

const insertPurchase = `
INSERT INTO purchases (userid, "timestamp", doc)
VALUES ($1, $2, $3)
RETURNING seq, id, userid, "timestamp", doc
`

type InsertPurchaseParams struct {
	UserID    string
	Timestamp pgtype.Timestamptz
	Doc       []byte
}

func (q *Queries) InsertPurchase(ctx context.Context, db DBTX, arg InsertPurchaseParams) (Purchase, error) {
	row := db.QueryRow(ctx, insertPurchase, arg.UserID, arg.Timestamp, arg.Doc)
	var i Purchase
	err := row.Scan(&i.Seq, &i.ID, &i.UserID, &i.Timestamp, &i.Doc)
	return i, err
}

const listPurchasesByUser = `
SELECT seq, id, userid, "timestamp", doc
FROM purchases
WHERE userid = $1
ORDER BY "timestamp" DESC, seq DESC
`

func (q *Queries) ListPurchasesByUser(ctx context.Context, db DBTX, userID string) ([]Purchase, error) {
	rows, err := db.Query(ctx, listPurchasesByUser, userID)
	if err != nil {
		return nil, err
	}
	return collectPurchases(rows)
}

const listRecentPurchases = `
SELECT seq, id, userid, "timestamp", doc
FROM purchases
ORDER BY "timestamp" DESC, seq DESC
LIMIT $1
`

func (q *Queries) ListRecentPurchases(ctx context.Context, db DBTX, limit int32) ([]Purchase, error) {
	rows, err := db.Query(ctx, listRecentPurchases, limit)
	if err != nil {
		return nil, err
	}
	return collectPurchases(rows)
}

const countPurchases = `SELECT count(*) FROM purchases`

func (q *Queries) CountPurchases(ctx context.Context, db DBTX) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, countPurchases).Scan(&n)
	return n, err
}

func collectPurchases(rows pgx.Rows) ([]Purchase, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Purchase, error) {
		var i Purchase
		err := row.Scan(&i.Seq, &i.ID, &i.UserID, &i.Timestamp, &i.Doc)
		return i, err
	})
}
