package memstore

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

var errLockWaitTimeout = errs.New("lock wait timeout")

type Options struct {
	// LockWaitTimeout bounds how long a transaction waits for a room, booking
	// or coupon lock. Zero waits until the context is done.
	LockWaitTimeout time.Duration
}

// Store keeps committed state in maps guarded by mu. Transactions stage
// their writes and apply them in one step at commit.
type Store struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*booking.Booking
	coupons  map[uuid.UUID]*coupon.Coupon
	codes    map[coupon.Code]uuid.UUID

	locks  *keyedLocks
	opts   Options
	logger *slog.Logger
}

func New(opts Options, logger *slog.Logger) *Store {
	return &Store{
		bookings: make(map[uuid.UUID]*booking.Booking),
		coupons:  make(map[uuid.UUID]*coupon.Coupon),
		codes:    make(map[coupon.Code]uuid.UUID),
		locks:    newKeyedLocks(),
		opts:     opts,
		logger:   logger,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindUnavailable, "begin transaction", err)
	}

	tx := newMemTx(s)
	defer tx.releaseLocks()

	if err := fn(ctx, tx); err != nil {
		// staged writes are dropped with tx
		return err
	}
	return s.commit(ctx, tx)
}

func (s *Store) commit(ctx context.Context, tx *memTx) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindUnavailable, "commit transaction", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkLocked(tx); err != nil {
		return err
	}

	for _, c := range tx.coupons {
		s.coupons[c.ID()] = cloneCoupon(c)
		s.codes[c.Code()] = c.ID()
	}
	for _, b := range tx.bookings {
		s.bookings[b.ID()] = cloneBooking(b)
	}
	return nil
}

// checkLocked enforces the constraints the postgres schema enforces.
func (s *Store) checkLocked(tx *memTx) error {
	for id, c := range tx.coupons {
		current, exists := s.coupons[id]
		if tx.insertedCoupons[id] {
			if exists {
				return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "coupon id already exists", nil)
			}
			if _, taken := s.codes[c.Code()]; taken {
				return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "coupon code already exists", nil)
			}
			continue
		}
		if !exists {
			return infra.WrapRepoErr(s.logger, infra.KindNotFound, "coupon not found", nil)
		}
		if tx.usedCoupons[id] && current.IsUsed() {
			return infra.WrapRepoErr(s.logger, infra.KindConflict, "coupon already used", nil)
		}
	}

	for id, b := range tx.bookings {
		if _, exists := s.bookings[id]; !exists && !tx.insertedBookings[id] {
			return infra.WrapRepoErr(s.logger, infra.KindNotFound, "booking not found", nil)
		}
		if b.Status().IsActive() && s.overlapsActiveLocked(b) {
			return infra.WrapRepoErr(s.logger, infra.KindConflict, "booking overlaps an active booking", nil)
		}
		if b.CouponID() != nil && s.couponTakenLocked(b) {
			return infra.WrapRepoErr(s.logger, infra.KindDuplicateKey, "coupon already applied to another booking", nil)
		}
	}
	return nil
}

func (s *Store) overlapsActiveLocked(b *booking.Booking) bool {
	for id, other := range s.bookings {
		if id == b.ID() || other.RoomID() != b.RoomID() || !other.Status().IsActive() {
			continue
		}
		if other.Stay().Overlaps(b.Stay()) {
			return true
		}
	}
	return false
}

func (s *Store) couponTakenLocked(b *booking.Booking) bool {
	for id, other := range s.bookings {
		if id == b.ID() || other.CouponID() == nil {
			continue
		}
		if *other.CouponID() == *b.CouponID() {
			return true
		}
	}
	return false
}

func (s *Store) lock(ctx context.Context, key string) error {
	if err := s.locks.acquire(ctx, key, s.opts.LockWaitTimeout); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindUnavailable, "failed to acquire "+key, err)
	}
	return nil
}

func (s *Store) bookingByID(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) couponByID(id uuid.UUID) (*coupon.Coupon, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.coupons[id]
	if !ok {
		return nil, false
	}
	return cloneCoupon(c), true
}

func (s *Store) couponIDByCode(code coupon.Code) (uuid.UUID, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.codes[code]
	return id, ok
}

func cloneBooking(b *booking.Booking) *booking.Booking {
	var couponID *uuid.UUID
	if id := b.CouponID(); id != nil {
		v := *id
		couponID = &v
	}
	return booking.ReconstructBooking(
		b.ID(), b.RoomID(), b.UserID(),
		b.Stay(),
		b.Status(),
		couponID,
		b.TotalAmount(), b.DiscountAmount(),
		b.SpecialRequests(),
		b.CreatedAt(), b.UpdatedAt(),
	)
}

func cloneCoupon(c *coupon.Coupon) *coupon.Coupon {
	restricted := append([]uuid.UUID(nil), c.RestrictedUserIDs()...)
	return coupon.ReconstructCoupon(
		c.ID(),
		c.Code(),
		c.Discount(),
		c.ExpiresAt(),
		c.IsActive(), c.IsUsed(),
		restricted,
		c.CreatedAt(), c.UpdatedAt(),
	)
}
