//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"purchase-pipeline/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestUUIDConversion(t *testing.T) {
	id := uuid.New()

	assert.Equal(t, id, pgconv.UUIDFromPgtype(pgconv.UUIDToPgtype(id)))
	assert.False(t, pgconv.UUIDToPgtype(uuid.Nil).Valid)
	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
}

func TestTimeConversion(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	ts := time.Date(2024, 5, 1, 21, 0, 0, 0, jst)

	back := pgconv.TimeFromPgtype(pgconv.TimeToPgtype(ts))
	assert.True(t, back.Equal(ts))
	assert.Equal(t, time.UTC, back.Location())

	assert.False(t, pgconv.TimeToPgtype(time.Time{}).Valid)
	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}
