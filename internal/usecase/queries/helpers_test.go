//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

func day(n int) time.Time {
	return time.Date(2030, 4, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func newStore() *memstore.Store {
	return memstore.New(memstore.Options{LockWaitTimeout: time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func seedBooking(t *testing.T, s *memstore.Store, userID, roomID uuid.UUID, from, to int, createdAt time.Time) *booking.Booking {
	t.Helper()
	stay, err := booking.NewStay(day(from), day(to))
	require.NoError(t, err)
	total, err := booking.NewMoney(int64(stay.Nights()) * 10000)
	require.NoError(t, err)
	b := booking.NewBooking(userID, roomID, stay, booking.SpecialRequests{}, total, createdAt)
	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Insert(ctx, b)
	}))
	return b
}

func cancelBooking(t *testing.T, s *memstore.Store, id uuid.UUID) {
	t.Helper()
	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if _, err := b.Cancel(now.Add(time.Hour)); err != nil {
			return err
		}
		return tx.Bookings().Update(ctx, b)
	}))
}

type couponSeed struct {
	code       string
	percent    float64
	maxCents   int64
	expiresAt  time.Time
	restricted []uuid.UUID
	inactive   bool
	used       bool
}

func seedCoupon(t *testing.T, s *memstore.Store, seed couponSeed) *coupon.Coupon {
	t.Helper()
	code, err := coupon.NewCouponCode(seed.code)
	require.NoError(t, err)
	d, err := coupon.NewDiscount(seed.percent, seed.maxCents)
	require.NoError(t, err)
	c := coupon.ReconstructCoupon(uuid.New(), code, d, seed.expiresAt, !seed.inactive, seed.used, seed.restricted, now.Add(-time.Hour), now.Add(-time.Hour))
	require.NoError(t, s.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Insert(ctx, c)
	}))
	return c
}
