//go:build unit

package purchase_test

import (
	"math"
	"testing"
	"time"

	"purchase-pipeline/internal/domain/purchase"
	"purchase-pipeline/internal/pkg/errs"
	"purchase-pipeline/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.PurchaseBuilder)
	errIs  error
}

func TestPurchase(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewPurchaseBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "alice", actual.Username())
		assert.Equal(t, "u1", actual.UserID())
		assert.Equal(t, 19.99, actual.Price())
		assert.Equal(t, []byte("u1"), actual.Key())
		assert.Equal(t, time.UTC, actual.Timestamp().Location())
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty username",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUsername("") },
				errIs:  purchase.ErrEmptyUsername,
			},
			{
				name:   "whitespace only username",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUsername("   ") },
				errIs:  purchase.ErrEmptyUsername,
			},
			{
				name:   "single character username",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUsername("a") },
			},
		})
	})

	t.Run("userid validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty userid",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserID("") },
				errIs:  purchase.ErrEmptyUserID,
			},
			{
				name:   "whitespace only userid",
				mutate: func(b *builder.PurchaseBuilder) { b.WithUserID("\t ") },
				errIs:  purchase.ErrEmptyUserID,
			},
		})
	})

	t.Run("price validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "zero price",
				mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(0) },
				errIs:  purchase.ErrInvalidPrice,
			},
			{
				name:   "negative price",
				mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(-1) },
				errIs:  purchase.ErrInvalidPrice,
			},
			{
				name:   "NaN price",
				mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(math.NaN()) },
				errIs:  purchase.ErrInvalidPrice,
			},
			{
				name:   "infinite price",
				mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(math.Inf(1)) },
				errIs:  purchase.ErrInvalidPrice,
			},
			{
				name:   "smallest positive price",
				mutate: func(b *builder.PurchaseBuilder) { b.WithPrice(0.01) },
			},
		})
	})

	t.Run("trimming", func(t *testing.T) {
		p, err := purchase.New("  bob  ", " u2 ", 5, time.Now())
		require.NoError(t, err)

		assert.Equal(t, "bob", p.Username())
		assert.Equal(t, "u2", p.UserID())
	})

	t.Run("timestamp is normalized to UTC", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		ts := time.Date(2024, 5, 1, 21, 0, 0, 0, tokyo)

		p, err := builder.NewPurchaseBuilder().WithTimestamp(ts).BuildDomain()
		require.NoError(t, err)

		assert.True(t, p.Timestamp().Equal(ts))
		assert.Equal(t, time.UTC, p.Timestamp().Location())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewPurchaseBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
				assert.True(t, errs.Is(err, purchase.ErrValidation))
			}
		})
	}
}
