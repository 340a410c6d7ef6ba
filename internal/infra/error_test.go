//go:build unit

package infra_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"hotel-reservation/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("find: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "exclusion violation", err: &pgconn.PgError{Code: "23P01"}, want: infra.KindConflict},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "statement timeout", err: &pgconn.PgError{Code: "57014"}, want: infra.KindUnavailable},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindUnavailable},
		{name: "connection failure", err: &pgconn.PgError{Code: "08006"}, want: infra.KindUnavailable},
		{name: "too many connections", err: &pgconn.PgError{Code: "53300"}, want: infra.KindUnavailable},
		{name: "deadline", err: context.DeadlineExceeded, want: infra.KindUnavailable},
		{name: "cancelled", err: fmt.Errorf("query: %w", context.Canceled), want: infra.KindUnavailable},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: infra.KindDBFailure},
		{name: "unknown", err: errors.New("boom"), want: infra.KindDBFailure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, infra.KindOf(tc.err))
		})
	}
}

func TestClassify(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.NoError(t, infra.Classify(logger, "noop", nil))

	err := infra.Classify(logger, "insert booking", &pgconn.PgError{Code: "23P01"})
	assert.True(t, infra.IsKind(err, infra.KindConflict))
	assert.Contains(t, err.Error(), "insert booking")

	again := infra.Classify(logger, "outer", err)
	assert.Equal(t, err, again, "already classified errors keep their kind")

	assert.False(t, infra.IsKind(errors.New("plain"), infra.KindConflict))
}
