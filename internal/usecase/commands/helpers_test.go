//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra/memstore"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

var now = time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)

type fixture struct {
	store    *memstore.Store
	clock    *clock.MockClock
	bookings commands.BookingCommands
	coupons  commands.CouponCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureWithUoW(t, nil, time.Second)
}

// newFixtureWithUoW wires the commands to wrap(store) when wrap is not nil.
func newFixtureWithUoW(t *testing.T, wrap func(shared.UnitOfWork) shared.UnitOfWork, lockWait time.Duration) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New(memstore.Options{LockWaitTimeout: lockWait}, logger)
	clk := clock.NewMockClock(now)

	var uow shared.UnitOfWork = store
	if wrap != nil {
		uow = wrap(store)
	}

	return &fixture{
		store:    store,
		clock:    clk,
		bookings: commands.NewBookingUseCase(uow, booking.NewNightlyRateCalculator(50000), commands.BookingPolicy{MaxStayNights: 30}, clk, logger),
		coupons:  commands.NewCouponUseCase(uow, clk, logger),
	}
}

func (f *fixture) createBooking(t *testing.T, in commands.CreateBookingInput) *booking.Booking {
	t.Helper()
	b, err := f.bookings.CreateBooking(context.Background(), in)
	require.NoError(t, err)
	return b
}

func (f *fixture) createCoupon(t *testing.T, in commands.CreateCouponInput) {
	t.Helper()
	_, err := f.coupons.CreateCoupon(context.Background(), in)
	require.NoError(t, err)
}

func day(n int) time.Time {
	return time.Date(2030, 4, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

// failingMarkUsedUoW hands out transactions whose coupon repository fails
// MarkUsed with err after the booking update has been staged.
type failingMarkUsedUoW struct {
	inner shared.UnitOfWork
	err   error
}

func (u *failingMarkUsedUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.inner.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, &failingTx{Tx: tx, err: u.err})
	})
}

type failingTx struct {
	shared.Tx
	err error
}

func (t *failingTx) Coupons() shared.CouponRepository {
	return &failingCoupons{CouponRepository: t.Tx.Coupons(), err: t.err}
}

type failingCoupons struct {
	shared.CouponRepository
	err error
}

func (c *failingCoupons) MarkUsed(context.Context, *coupon.Coupon) error {
	return c.err
}
