package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrCouponAlreadyApplied   = errors.New("a coupon has already been applied to this booking")
	ErrBookingNotDiscountable = errors.New("cancelled bookings cannot be discounted")
)

type Booking struct {
	id              uuid.UUID
	roomID          uuid.UUID
	userID          uuid.UUID
	stay            Stay
	status          Status
	couponID        *uuid.UUID
	totalAmount     Money
	discountAmount  Money
	specialRequests SpecialRequests
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBooking creates a pending booking priced for the whole stay.
func NewBooking(
	userID, roomID uuid.UUID,
	stay Stay,
	specialRequests SpecialRequests,
	total Money,
	now time.Time,
) *Booking {
	now = storedTime(now)
	return &Booking{
		id:              uuid.New(),
		roomID:          roomID,
		userID:          userID,
		stay:            stay,
		status:          StatusPending,
		totalAmount:     total,
		specialRequests: specialRequests,
		createdAt:       now,
		updatedAt:       now,
	}
}

func ReconstructBooking(
	id, roomID, userID uuid.UUID,
	stay Stay,
	status Status,
	couponID *uuid.UUID,
	totalAmount, discountAmount Money,
	specialRequests SpecialRequests,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:              id,
		roomID:          roomID,
		userID:          userID,
		stay:            stay,
		status:          status,
		couponID:        couponID,
		totalAmount:     totalAmount,
		discountAmount:  discountAmount,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ChangeStatus applies the status machine and reports whether the booking changed.
func (b *Booking) ChangeStatus(target Status, now time.Time) (bool, error) {
	changed, err := b.status.TransitionTo(target)
	if err != nil || !changed {
		return false, err
	}
	b.status = target
	b.touch(now)
	return true, nil
}

func (b *Booking) Cancel(now time.Time) (bool, error) {
	return b.ChangeStatus(StatusCancelled, now)
}

// ApplyDiscount stamps the coupon on the booking and reduces the total.
// A booking carries at most one coupon.
func (b *Booking) ApplyDiscount(couponID uuid.UUID, discount Money, now time.Time) error {
	if b.status == StatusCancelled {
		return ErrBookingNotDiscountable
	}
	if b.couponID != nil {
		return ErrCouponAlreadyApplied
	}

	discount = discount.Min(b.totalAmount)
	id := couponID
	b.couponID = &id
	b.discountAmount = discount
	b.totalAmount = b.totalAmount.Sub(discount)
	b.touch(now)
	return nil
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) touch(now time.Time) {
	now = storedTime(now)
	if now.After(b.updatedAt) {
		b.updatedAt = now
	}
}

func (b *Booking) ID() uuid.UUID                    { return b.id }
func (b *Booking) RoomID() uuid.UUID                { return b.roomID }
func (b *Booking) UserID() uuid.UUID                { return b.userID }
func (b *Booking) Stay() Stay                       { return b.stay }
func (b *Booking) Status() Status                   { return b.status }
func (b *Booking) CouponID() *uuid.UUID             { return b.couponID }
func (b *Booking) TotalAmount() Money               { return b.totalAmount }
func (b *Booking) DiscountAmount() Money            { return b.discountAmount }
func (b *Booking) SpecialRequests() SpecialRequests { return b.specialRequests }
func (b *Booking) CreatedAt() time.Time             { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time             { return b.updatedAt }
