//go:build unit

package pgconv_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRange(t *testing.T) {
	in := time.Date(2026, 5, 1, 15, 0, 0, 0, time.UTC)
	out := in.Add(48 * time.Hour)

	r := pgconv.RangeToPgtype(in, out)
	assert.Equal(t, pgtype.Inclusive, r.LowerType)
	assert.Equal(t, pgtype.Exclusive, r.UpperType)

	gotIn, gotOut, err := pgconv.RangeFromPgtype(r)
	require.NoError(t, err)
	assert.True(t, in.Equal(gotIn))
	assert.True(t, out.Equal(gotOut))

	r.UpperType = pgtype.Unbounded
	_, _, err = pgconv.RangeFromPgtype(r)
	assert.ErrorIs(t, err, pgconv.ErrUnboundedRange)
}

func TestUUIDs(t *testing.T) {
	assert.NotNil(t, pgconv.UUIDsToPgtype(nil))
	assert.Empty(t, pgconv.UUIDsToPgtype(nil))

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	back := pgconv.UUIDsFromPgtype(append(pgconv.UUIDsToPgtype(ids), pgtype.UUID{}))
	assert.Equal(t, ids, back)

	assert.Equal(t, uuid.Nil, pgconv.UUIDFromPgtype(pgtype.UUID{}))
	assert.Nil(t, pgconv.UUIDPtrFromPgtype(pgtype.UUID{}))
}
