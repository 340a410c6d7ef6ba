package memstore

import (
	"context"
	"sort"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store *Store
	held  []string

	bookings         map[uuid.UUID]*booking.Booking
	insertedBookings map[uuid.UUID]bool
	coupons          map[uuid.UUID]*coupon.Coupon
	insertedCoupons  map[uuid.UUID]bool
	usedCoupons      map[uuid.UUID]bool
}

func newMemTx(s *Store) *memTx {
	return &memTx{
		store:            s,
		bookings:         make(map[uuid.UUID]*booking.Booking),
		insertedBookings: make(map[uuid.UUID]bool),
		coupons:          make(map[uuid.UUID]*coupon.Coupon),
		insertedCoupons:  make(map[uuid.UUID]bool),
		usedCoupons:      make(map[uuid.UUID]bool),
	}
}

func (t *memTx) Bookings() shared.BookingRepository { return &bookingRepo{tx: t} }
func (t *memTx) Coupons() shared.CouponRepository   { return &couponRepo{tx: t} }

// lock is reentrant within one transaction.
func (t *memTx) lock(ctx context.Context, key string) error {
	for _, k := range t.held {
		if k == key {
			return nil
		}
	}
	if err := t.store.lock(ctx, key); err != nil {
		return err
	}
	t.held = append(t.held, key)
	return nil
}

func (t *memTx) releaseLocks() {
	for i := len(t.held) - 1; i >= 0; i-- {
		t.store.locks.release(t.held[i])
	}
	t.held = nil
}

type bookingRepo struct {
	tx *memTx
}

func roomKey(id uuid.UUID) string    { return "room:" + id.String() }
func bookingKey(id uuid.UUID) string { return "booking:" + id.String() }
func couponKey(id uuid.UUID) string  { return "coupon:" + id.String() }

func (r *bookingRepo) LockRoom(ctx context.Context, roomID uuid.UUID) error {
	return r.tx.lock(ctx, roomKey(roomID))
}

func (r *bookingRepo) FindByRoom(ctx context.Context, roomID uuid.UUID, statuses []booking.Status, window booking.Stay) ([]*booking.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "find bookings by room", err)
	}

	wanted := make(map[booking.Status]bool, len(statuses))
	for _, s := range statuses {
		wanted[s] = true
	}
	match := func(b *booking.Booking) bool {
		return b.RoomID() == roomID && wanted[b.Status()] && b.Stay().Overlaps(window)
	}

	var out []*booking.Booking
	s := r.tx.store
	s.mu.RLock()
	for id, b := range s.bookings {
		if _, staged := r.tx.bookings[id]; staged {
			continue
		}
		if match(b) {
			out = append(out, cloneBooking(b))
		}
	}
	s.mu.RUnlock()

	for _, b := range r.tx.bookings {
		if match(b) {
			out = append(out, cloneBooking(b))
		}
	}

	sortByCheckIn(out)
	return out, nil
}

func (r *bookingRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if err := r.tx.lock(ctx, bookingKey(id)); err != nil {
		return nil, err
	}
	if b, ok := r.tx.bookings[id]; ok {
		return cloneBooking(b), nil
	}
	b, ok := r.tx.store.bookingByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.store.logger, infra.KindNotFound, "booking not found", nil)
	}
	return b, nil
}

func (r *bookingRepo) Insert(ctx context.Context, b *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "insert booking", err)
	}
	s := r.tx.store
	s.mu.RLock()
	conflict := s.overlapsActiveLocked(b)
	s.mu.RUnlock()
	if conflict {
		return infra.WrapRepoErr(s.logger, infra.KindConflict, "booking overlaps an active booking", nil)
	}

	r.tx.bookings[b.ID()] = cloneBooking(b)
	r.tx.insertedBookings[b.ID()] = true
	return nil
}

func (r *bookingRepo) Update(ctx context.Context, b *booking.Booking) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "update booking", err)
	}
	if _, staged := r.tx.bookings[b.ID()]; !staged {
		if _, ok := r.tx.store.bookingByID(b.ID()); !ok {
			return infra.WrapRepoErr(r.tx.store.logger, infra.KindNotFound, "booking not found", nil)
		}
	}
	r.tx.bookings[b.ID()] = cloneBooking(b)
	return nil
}

type couponRepo struct {
	tx *memTx
}

func (r *couponRepo) FindByCodeForUpdate(ctx context.Context, code coupon.Code) (*coupon.Coupon, error) {
	for _, c := range r.tx.coupons {
		if c.Code() == code {
			return r.FindByIDForUpdate(ctx, c.ID())
		}
	}
	id, ok := r.tx.store.couponIDByCode(code)
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return r.FindByIDForUpdate(ctx, id)
}

func (r *couponRepo) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*coupon.Coupon, error) {
	if err := r.tx.lock(ctx, couponKey(id)); err != nil {
		return nil, err
	}
	if c, ok := r.tx.coupons[id]; ok {
		return cloneCoupon(c), nil
	}
	c, ok := r.tx.store.couponByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return c, nil
}

func (r *couponRepo) Insert(ctx context.Context, c *coupon.Coupon) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "insert coupon", err)
	}
	if _, taken := r.tx.store.couponIDByCode(c.Code()); taken {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "coupon code already exists", nil)
	}
	for _, staged := range r.tx.coupons {
		if staged.Code() == c.Code() {
			return infra.WrapRepoErr(r.tx.store.logger, infra.KindDuplicateKey, "coupon code already exists", nil)
		}
	}
	r.tx.coupons[c.ID()] = cloneCoupon(c)
	r.tx.insertedCoupons[c.ID()] = true
	return nil
}

func (r *couponRepo) Update(ctx context.Context, c *coupon.Coupon) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "update coupon", err)
	}
	current, err := r.current(c.ID())
	if err != nil {
		return err
	}
	updated := coupon.ReconstructCoupon(
		current.ID(), current.Code(), c.Discount(), c.ExpiresAt(),
		c.IsActive(), current.IsUsed(),
		current.RestrictedUserIDs(),
		current.CreatedAt(), c.UpdatedAt(),
	)
	r.tx.coupons[c.ID()] = updated
	return nil
}

func (r *couponRepo) MarkUsed(ctx context.Context, c *coupon.Coupon) error {
	if err := ctx.Err(); err != nil {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindUnavailable, "mark coupon used", err)
	}
	current, err := r.current(c.ID())
	if err != nil {
		return err
	}
	if current.IsUsed() {
		return infra.WrapRepoErr(r.tx.store.logger, infra.KindConflict, "coupon already used", nil)
	}
	updated := coupon.ReconstructCoupon(
		current.ID(), current.Code(), current.Discount(), current.ExpiresAt(),
		current.IsActive(), true,
		current.RestrictedUserIDs(),
		current.CreatedAt(), c.UpdatedAt(),
	)
	r.tx.coupons[c.ID()] = updated
	r.tx.usedCoupons[c.ID()] = true
	return nil
}

// current is the coupon as this transaction sees it: staged first, then committed.
func (r *couponRepo) current(id uuid.UUID) (*coupon.Coupon, error) {
	if c, ok := r.tx.coupons[id]; ok {
		return c, nil
	}
	c, ok := r.tx.store.couponByID(id)
	if !ok {
		return nil, infra.WrapRepoErr(r.tx.store.logger, infra.KindNotFound, "coupon not found", nil)
	}
	return c, nil
}

func sortByCheckIn(bookings []*booking.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.Stay().CheckIn().Equal(b.Stay().CheckIn()) {
			return a.Stay().CheckIn().Before(b.Stay().CheckIn())
		}
		return a.ID().String() < b.ID().String()
	})
}
