package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-reservation/internal/domain/booking"
	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemCouponInput struct {
	Code      string
	UserID    uuid.UUID
	BookingID uuid.UUID
}

type CreateCouponInput struct {
	Code               string
	DiscountPercentage float64
	MaxDiscountCents   int64
	ExpiresAt          time.Time
	RestrictedUserIDs  []uuid.UUID
}

// UpdateCouponInput replaces the terms of a coupon; code and restrictions
// are fixed at creation.
type UpdateCouponInput struct {
	DiscountPercentage float64
	MaxDiscountCents   int64
	ExpiresAt          time.Time
}

type CouponCommands interface {
	RedeemCoupon(ctx context.Context, in RedeemCouponInput) (*booking.Booking, error)
	CreateCoupon(ctx context.Context, in CreateCouponInput) (*coupon.Coupon, error)
	DeactivateCoupon(ctx context.Context, couponID uuid.UUID) (*coupon.Coupon, error)
	UpdateCoupon(ctx context.Context, couponID uuid.UUID, in UpdateCouponInput) (*coupon.Coupon, error)
}

type couponUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewCouponUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) CouponCommands {
	return &couponUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

// RedeemCoupon validates the coupon again under its row lock, discounts the
// caller's booking and consumes the coupon. Both writes commit together or
// not at all.
func (uc *couponUseCaseImpl) RedeemCoupon(ctx context.Context, in RedeemCouponInput) (*booking.Booking, error) {
	code, err := coupon.NewCouponCode(in.Code)
	if err != nil {
		// a malformed code can never match a stored coupon
		return nil, coupon.NewInvalidError(coupon.ReasonNotFound)
	}
	if in.UserID == uuid.Nil {
		return nil, errs.Wrap(errs.ErrValidation, "user is required")
	}

	var (
		discounted *booking.Booking
		discount   booking.Money
		couponID   uuid.UUID
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		c, err := tx.Coupons().FindByCodeForUpdate(ctx, code)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return coupon.NewInvalidError(coupon.ReasonNotFound)
			}
			return err
		}
		if err := c.Validate(in.UserID, now); err != nil {
			return err
		}

		b, err := tx.Bookings().FindByIDForUpdate(ctx, in.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrBookingNotFound, "booking %s", in.BookingID)
			}
			return err
		}
		if !b.IsOwnedBy(in.UserID) {
			return errs.Wrapf(errs.ErrBookingNotFound, "booking %s", in.BookingID)
		}

		discount = c.DiscountFor(b.TotalAmount())
		if err := b.ApplyDiscount(c.ID(), discount, now); err != nil {
			uc.logger.WarnContext(ctx, "booking cannot take a coupon",
				"booking_id", b.ID(), "code", code, "error", err)
			return coupon.NewInvalidError(coupon.ReasonBookingIneligible)
		}
		if err := c.MarkUsed(now); err != nil {
			return err
		}

		if err := tx.Bookings().Update(ctx, b); err != nil {
			return err
		}
		if err := tx.Coupons().MarkUsed(ctx, c); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return coupon.NewInvalidError(coupon.ReasonAlreadyUsed)
			}
			return err
		}

		discounted = b
		couponID = c.ID()
		return nil
	})
	if err != nil {
		if reason, ok := coupon.ReasonOf(err); ok {
			uc.logger.InfoContext(ctx, "coupon redemption refused",
				"code", code, "user_id", in.UserID, "booking_id", in.BookingID, "reason", reason)
		}
		return nil, shared.StoreError(err)
	}

	uc.logger.InfoContext(ctx, "coupon redeemed",
		"coupon_id", couponID, "booking_id", discounted.ID(), "user_id", in.UserID,
		"discount_cents", discount.Cents(), "total_cents", discounted.TotalAmount().Cents())
	return discounted, nil
}

func (uc *couponUseCaseImpl) CreateCoupon(ctx context.Context, in CreateCouponInput) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(in.Code)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	discount, err := coupon.NewDiscount(in.DiscountPercentage, in.MaxDiscountCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	c, err := coupon.NewCoupon(code, discount, in.ExpiresAt, in.RestrictedUserIDs, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Coupons().Insert(ctx, c)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, errs.ErrCouponCodeTaken)
		}
		return nil, shared.StoreError(err)
	}

	uc.logger.InfoContext(ctx, "coupon created",
		"coupon_id", c.ID(), "code", c.Code(), "basis_points", c.Discount().BasisPoints())
	return c, nil
}

// DeactivateCoupon is idempotent; an inactive coupon is returned unchanged.
func (uc *couponUseCaseImpl) DeactivateCoupon(ctx context.Context, couponID uuid.UUID) (*coupon.Coupon, error) {
	var (
		result  *coupon.Coupon
		changed bool
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByIDForUpdate(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrCouponNotFound, "coupon %s", couponID)
			}
			return err
		}
		if changed = c.Deactivate(uc.clock.Now()); changed {
			if err := tx.Coupons().Update(ctx, c); err != nil {
				return err
			}
		}
		result = c
		return nil
	})
	if err != nil {
		return nil, shared.StoreError(err)
	}

	if changed {
		uc.logger.InfoContext(ctx, "coupon deactivated", "coupon_id", couponID)
	}
	return result, nil
}

// UpdateCoupon changes discount and expiry under the coupon's row lock, so a
// concurrent redemption either sees the old terms or finds the edit refused.
func (uc *couponUseCaseImpl) UpdateCoupon(ctx context.Context, couponID uuid.UUID, in UpdateCouponInput) (*coupon.Coupon, error) {
	discount, err := coupon.NewDiscount(in.DiscountPercentage, in.MaxDiscountCents)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}

	var result *coupon.Coupon
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := tx.Coupons().FindByIDForUpdate(ctx, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(errs.ErrCouponNotFound, "coupon %s", couponID)
			}
			return err
		}
		if err := c.UpdateTerms(discount, in.ExpiresAt, uc.clock.Now()); err != nil {
			if errs.Is(err, coupon.ErrExpiryInPast) {
				return errs.Mark(err, errs.ErrValidation)
			}
			return err
		}
		if err := tx.Coupons().Update(ctx, c); err != nil {
			return err
		}
		result = c
		return nil
	})
	if err != nil {
		if reason, ok := coupon.ReasonOf(err); ok {
			uc.logger.InfoContext(ctx, "coupon update refused", "coupon_id", couponID, "reason", reason)
		}
		return nil, shared.StoreError(err)
	}

	uc.logger.InfoContext(ctx, "coupon updated",
		"coupon_id", couponID, "basis_points", result.Discount().BasisPoints(), "expires_at", result.ExpiresAt())
	return result, nil
}
