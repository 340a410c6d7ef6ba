package memstore

import (
	"bytes"
	"context"
	"sort"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingReads serves queries.BookingReadStore from committed state.
type BookingReads struct {
	store *Store
}

func (s *Store) BookingReads() *BookingReads { return &BookingReads{store: s} }

func (r *BookingReads) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "get booking view", err)
	}
	b, ok := r.store.bookingByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindNotFound, "booking not found", nil)
	}
	return queries.NewBookingView(b), nil
}

func (r *BookingReads) HasActiveOverlap(ctx context.Context, roomID uuid.UUID, stay booking.Stay) (bool, error) {
	views, err := r.FindActiveByRoom(ctx, roomID, stay)
	if err != nil {
		return false, err
	}
	return len(views) > 0, nil
}

func (r *BookingReads) FindActiveByRoom(ctx context.Context, roomID uuid.UUID, window booking.Stay) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list room bookings", err)
	}
	matches := r.filter(func(b *booking.Booking) bool {
		return b.RoomID() == roomID && b.Status().IsActive() && b.Stay().Overlaps(window)
	})
	sortByCheckIn(matches)
	return toBookingViews(matches), nil
}

func (r *BookingReads) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list user bookings", err)
	}
	matches := r.filter(func(b *booking.Booking) bool { return b.UserID() == userID })
	return toBookingViews(newestFirst(matches, limit)), nil
}

func (r *BookingReads) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list user bookings with keyset", err)
	}
	matches := r.filter(func(b *booking.Booking) bool {
		return b.UserID() == userID && olderThan(b, lastCreatedAt, lastID)
	})
	return toBookingViews(newestFirst(matches, limit)), nil
}

func (r *BookingReads) FindAllFirstPage(ctx context.Context, limit int32) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list bookings", err)
	}
	matches := r.filter(func(*booking.Booking) bool { return true })
	return toBookingViews(newestFirst(matches, limit)), nil
}

func (r *BookingReads) FindAllKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list bookings with keyset", err)
	}
	matches := r.filter(func(b *booking.Booking) bool { return olderThan(b, lastCreatedAt, lastID) })
	return toBookingViews(newestFirst(matches, limit)), nil
}

func (r *BookingReads) filter(keep func(*booking.Booking) bool) []*booking.Booking {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*booking.Booking
	for _, b := range r.store.bookings {
		if keep(b) {
			out = append(out, cloneBooking(b))
		}
	}
	return out
}

// olderThan mirrors the row comparison (created_at, id) < (t, id).
func olderThan(b *booking.Booking, t time.Time, id uuid.UUID) bool {
	if !b.CreatedAt().Equal(t) {
		return b.CreatedAt().Before(t)
	}
	bid := b.ID()
	return bytes.Compare(bid[:], id[:]) < 0
}

func newestFirst(bookings []*booking.Booking, limit int32) []*booking.Booking {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		aid, bid := a.ID(), b.ID()
		return bytes.Compare(aid[:], bid[:]) > 0
	})
	if limit >= 0 && int(limit) < len(bookings) {
		bookings = bookings[:limit]
	}
	return bookings
}

func toBookingViews(bookings []*booking.Booking) []*queries.BookingView {
	views := make([]*queries.BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = queries.NewBookingView(b)
	}
	return views
}

// CouponReads serves queries.CouponReadStore from committed state.
type CouponReads struct {
	store *Store
}

func (s *Store) CouponReads() *CouponReads { return &CouponReads{store: s} }

func (r *CouponReads) FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "get coupon by code", err)
	}
	id, ok := r.store.couponIDByCode(code)
	if !ok {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	c, ok := r.store.couponByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return c, nil
}

func (r *CouponReads) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "get coupon view", err)
	}
	c, ok := r.store.couponByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return queries.NewCouponView(c), nil
}

func (r *CouponReads) FindActive(ctx context.Context, now time.Time) ([]*queries.CouponView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list active coupons", err)
	}
	matches := r.filter(func(c *coupon.Coupon) bool {
		return c.IsActive() && !c.IsUsed() && !c.IsExpiredAt(now)
	})
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.ExpiresAt().Equal(b.ExpiresAt()) {
			return a.ExpiresAt().Before(b.ExpiresAt())
		}
		return a.Code() < b.Code()
	})
	return toCouponViews(matches), nil
}

func (r *CouponReads) FindExpired(ctx context.Context, now time.Time) ([]*queries.CouponView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list expired coupons", err)
	}
	matches := r.filter(func(c *coupon.Coupon) bool { return c.IsExpiredAt(now) })
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.ExpiresAt().Equal(b.ExpiresAt()) {
			return a.ExpiresAt().After(b.ExpiresAt())
		}
		return a.Code() < b.Code()
	})
	return toCouponViews(matches), nil
}

func (r *CouponReads) FindAll(ctx context.Context) ([]*queries.CouponView, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.store.logger, infra.KindUnavailable, "list coupons", err)
	}
	matches := r.filter(func(*coupon.Coupon) bool { return true })
	sort.Slice(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if !a.CreatedAt().Equal(b.CreatedAt()) {
			return a.CreatedAt().After(b.CreatedAt())
		}
		aid, bid := a.ID(), b.ID()
		return bytes.Compare(aid[:], bid[:]) > 0
	})
	return toCouponViews(matches), nil
}

func (r *CouponReads) filter(keep func(*coupon.Coupon) bool) []*coupon.Coupon {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	var out []*coupon.Coupon
	for _, c := range r.store.coupons {
		if keep(c) {
			out = append(out, cloneCoupon(c))
		}
	}
	return out
}

func toCouponViews(coupons []*coupon.Coupon) []*queries.CouponView {
	views := make([]*queries.CouponView, len(coupons))
	for i, c := range coupons {
		views[i] = queries.NewCouponView(c)
	}
	return views
}
