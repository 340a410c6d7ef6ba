package shared

import (
	"context"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within runs fn in one transaction: every write made through tx commits
	// together when fn returns nil and is rolled back otherwise.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Coupons() CouponRepository
}

// BookingRepository errors are infra.RepositoryError values
// (KindNotFound, KindConflict, KindUnavailable, ...).
type BookingRepository interface {
	// LockRoom serializes admission for roomID until the transaction ends.
	LockRoom(ctx context.Context, roomID uuid.UUID) error
	// FindByRoom returns bookings of roomID in one of statuses whose stay
	// intersects window.
	FindByRoom(ctx context.Context, roomID uuid.UUID, statuses []booking.Status, window booking.Stay) ([]*booking.Booking, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// Insert fails with KindConflict when the stay overlaps an active booking.
	Insert(ctx context.Context, b *booking.Booking) error
	Update(ctx context.Context, b *booking.Booking) error
}

type CouponRepository interface {
	FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error)
	// Insert fails with KindDuplicateKey when the code already exists in any case.
	Insert(ctx context.Context, c *coupon.Coupon) error
	Update(ctx context.Context, c *coupon.Coupon) error
	// MarkUsed flips is_used only if it is still false and fails with
	// KindConflict otherwise.
	MarkUsed(ctx context.Context, c *coupon.Coupon) error
}
