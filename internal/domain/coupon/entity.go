package coupon

import (
	"errors"
	"slices"
	"time"

	"hotel-reservation/internal/domain/booking"

	"github.com/google/uuid"
)

var ErrExpiryInPast = errors.New("coupon expiry must be in the future")

// Coupon is single-use. isUsed only ever goes false -> true and isActive only
// true -> false; the two flags are independent.
type Coupon struct {
	id                uuid.UUID
	code              Code
	discount          Discount
	expiresAt         time.Time
	isActive          bool
	isUsed            bool
	restrictedUserIDs []uuid.UUID
	createdAt         time.Time
	updatedAt         time.Time
}

func NewCoupon(
	code Code,
	discount Discount,
	expiresAt time.Time,
	restrictedUserIDs []uuid.UUID,
	now time.Time,
) (*Coupon, error) {
	now = storedTime(now)
	expiresAt = storedTime(expiresAt)
	if !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	return &Coupon{
		id:                uuid.New(),
		code:              code,
		discount:          discount,
		expiresAt:         expiresAt,
		isActive:          true,
		restrictedUserIDs: dedupe(restrictedUserIDs),
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

func ReconstructCoupon(
	id uuid.UUID,
	code Code,
	discount Discount,
	expiresAt time.Time,
	isActive, isUsed bool,
	restrictedUserIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Coupon {
	return &Coupon{
		id:                id,
		code:              code,
		discount:          discount,
		expiresAt:         expiresAt,
		isActive:          isActive,
		isUsed:            isUsed,
		restrictedUserIDs: restrictedUserIDs,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

// IsExpiredAt treats the expiry instant itself as expired.
func (c *Coupon) IsExpiredAt(now time.Time) bool {
	return !now.Before(c.expiresAt)
}

func (c *Coupon) IsRestrictedFor(userID uuid.UUID) bool {
	return slices.Contains(c.restrictedUserIDs, userID)
}

// IsRedeemableAt ignores user restrictions.
func (c *Coupon) IsRedeemableAt(now time.Time) bool {
	return c.isActive && !c.isUsed && !c.IsExpiredAt(now)
}

// Check evaluates inactive, expired, already used and user restriction, in
// that order, and returns the first failing reason or "" when usable.
func (c *Coupon) Check(userID uuid.UUID, now time.Time) Reason {
	switch {
	case !c.isActive:
		return ReasonInactive
	case c.IsExpiredAt(now):
		return ReasonExpired
	case c.isUsed:
		return ReasonAlreadyUsed
	case c.IsRestrictedFor(userID):
		return ReasonUserRestricted
	default:
		return ""
	}
}

func (c *Coupon) Validate(userID uuid.UUID, now time.Time) error {
	if reason := c.Check(userID, now); reason != "" {
		return NewInvalidError(reason)
	}
	return nil
}

func (c *Coupon) DiscountFor(total booking.Money) booking.Money {
	return c.discount.AmountFor(total)
}

func (c *Coupon) MarkUsed(now time.Time) error {
	if c.isUsed {
		return NewInvalidError(ReasonAlreadyUsed)
	}
	c.isUsed = true
	c.touch(now)
	return nil
}

// UpdateTerms replaces the discount and expiry of a coupon nobody has redeemed
// yet. Active and restriction state are left alone.
func (c *Coupon) UpdateTerms(discount Discount, expiresAt, now time.Time) error {
	if c.isUsed {
		return NewInvalidError(ReasonAlreadyUsed)
	}
	expiresAt = storedTime(expiresAt)
	if !expiresAt.After(storedTime(now)) {
		return ErrExpiryInPast
	}
	c.discount = discount
	c.expiresAt = expiresAt
	c.touch(now)
	return nil
}

// Deactivate reports whether the coupon was active before the call.
func (c *Coupon) Deactivate(now time.Time) bool {
	if !c.isActive {
		return false
	}
	c.isActive = false
	c.touch(now)
	return true
}

func (c *Coupon) touch(now time.Time) {
	now = storedTime(now)
	if now.After(c.updatedAt) {
		c.updatedAt = now
	}
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id != uuid.Nil && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func (c *Coupon) ID() uuid.UUID                  { return c.id }
func (c *Coupon) Code() Code                     { return c.code }
func (c *Coupon) Discount() Discount             { return c.discount }
func (c *Coupon) ExpiresAt() time.Time           { return c.expiresAt }
func (c *Coupon) IsActive() bool                 { return c.isActive }
func (c *Coupon) IsUsed() bool                   { return c.isUsed }
func (c *Coupon) RestrictedUserIDs() []uuid.UUID { return c.restrictedUserIDs }
func (c *Coupon) CreatedAt() time.Time           { return c.createdAt }
func (c *Coupon) UpdatedAt() time.Time           { return c.updatedAt }

// storedTime matches the microsecond resolution of timestamptz.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
