package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrUnboundedRange = errors.New("range bound is not finite")

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDsFromPgtype(pus []pgtype.UUID) []uuid.UUID {
	if len(pus) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(pus))
	for _, pu := range pus {
		if pu.Valid {
			ids = append(ids, uuid.UUID(pu.Bytes))
		}
	}
	return ids
}

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	return pt.Time.UTC()
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// UUIDsToPgtype never returns nil so the column receives '{}' rather than NULL.
func UUIDsToPgtype(ids []uuid.UUID) []pgtype.UUID {
	out := make([]pgtype.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, UUIDToPgtype(id))
	}
	return out
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// RangeToPgtype builds a half-open [lower, upper) tstzrange.
func RangeToPgtype(lower, upper time.Time) pgtype.Range[pgtype.Timestamptz] {
	return pgtype.Range[pgtype.Timestamptz]{
		Lower:     TimeToPgtype(lower),
		Upper:     TimeToPgtype(upper),
		LowerType: pgtype.Inclusive,
		UpperType: pgtype.Exclusive,
		Valid:     true,
	}
}

func RangeFromPgtype(r pgtype.Range[pgtype.Timestamptz]) (time.Time, time.Time, error) {
	if !r.Valid || r.LowerType == pgtype.Unbounded || r.UpperType == pgtype.Unbounded {
		return time.Time{}, time.Time{}, ErrUnboundedRange
	}
	return TimeFromPgtype(r.Lower), TimeFromPgtype(r.Upper), nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
