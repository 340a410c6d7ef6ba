package queries

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type CouponView struct {
	ID                 uuid.UUID   `json:"id"`
	Code               string      `json:"code"`
	DiscountPercentage float64     `json:"discount_percentage"`
	MaxDiscountCents   int64       `json:"max_discount_cents"`
	ExpiresAt          time.Time   `json:"expires_at"`
	IsActive           bool        `json:"is_active"`
	IsUsed             bool        `json:"is_used"`
	RestrictedUserIDs  []uuid.UUID `json:"restricted_user_ids"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

func NewCouponView(c *coupon.Coupon) *CouponView {
	return &CouponView{
		ID:                 c.ID(),
		Code:               c.Code().String(),
		DiscountPercentage: c.Discount().Percentage(),
		MaxDiscountCents:   c.Discount().MaxAmount().Cents(),
		ExpiresAt:          c.ExpiresAt(),
		IsActive:           c.IsActive(),
		IsUsed:             c.IsUsed(),
		RestrictedUserIDs:  c.RestrictedUserIDs(),
		CreatedAt:          c.CreatedAt(),
		UpdatedAt:          c.UpdatedAt(),
	}
}

// CouponValidation is the outcome of ValidateCoupon; Reason is empty when Valid.
type CouponValidation struct {
	Code               string        `json:"code"`
	Valid              bool          `json:"valid"`
	Reason             coupon.Reason `json:"reason,omitempty"`
	DiscountPercentage float64       `json:"discount_percentage,omitempty"`
	MaxDiscountCents   int64         `json:"max_discount_cents,omitempty"`
	ExpiresAt          *time.Time    `json:"expires_at,omitempty"`
}

type CouponReadStore interface {
	// FindByCode matches case-insensitively and returns the domain aggregate
	// so validation runs the same rules as redemption.
	FindByCode(ctx context.Context, code coupon.Code) (*coupon.Coupon, error)
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	FindActive(ctx context.Context, now time.Time) ([]*CouponView, error)
	FindExpired(ctx context.Context, now time.Time) ([]*CouponView, error)
	FindAll(ctx context.Context) ([]*CouponView, error)
}

type CouponQueries interface {
	ValidateCoupon(ctx context.Context, code string, userID uuid.UUID) (*CouponValidation, error)
	GetCoupon(ctx context.Context, couponID uuid.UUID) (*CouponView, error)
	ListActiveCoupons(ctx context.Context) ([]*CouponView, error)
	ListExpiredCoupons(ctx context.Context) ([]*CouponView, error)
	// ListCoupons returns every coupon regardless of state, newest first.
	ListCoupons(ctx context.Context) ([]*CouponView, error)
}

type couponQueriesImpl struct {
	store CouponReadStore
	clock clock.Clock
}

func NewCouponQueries(store CouponReadStore, clk clock.Clock) CouponQueries {
	return &couponQueriesImpl{store: store, clock: clk}
}

// ValidateCoupon answers without side effects. A valid answer is advisory:
// RedeemCoupon checks again under lock.
func (q *couponQueriesImpl) ValidateCoupon(ctx context.Context, code string, userID uuid.UUID) (*CouponValidation, error) {
	normalized, err := coupon.NewCouponCode(code)
	if err != nil {
		return &CouponValidation{Code: code, Reason: coupon.ReasonNotFound}, nil
	}

	c, err := q.store.FindByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidation{Code: normalized.String(), Reason: coupon.ReasonNotFound}, nil
		}
		return nil, shared.StoreError(err)
	}

	result := &CouponValidation{Code: normalized.String()}
	if reason := c.Check(userID, q.clock.Now()); reason != "" {
		result.Reason = reason
		return result, nil
	}

	expiresAt := c.ExpiresAt()
	result.Valid = true
	result.DiscountPercentage = c.Discount().Percentage()
	result.MaxDiscountCents = c.Discount().MaxAmount().Cents()
	result.ExpiresAt = &expiresAt
	return result, nil
}

func (q *couponQueriesImpl) GetCoupon(ctx context.Context, couponID uuid.UUID) (*CouponView, error) {
	v, err := q.store.FindByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Wrapf(errs.ErrCouponNotFound, "coupon %s", couponID)
		}
		return nil, shared.StoreError(err)
	}
	return v, nil
}

func (q *couponQueriesImpl) ListActiveCoupons(ctx context.Context) ([]*CouponView, error) {
	rows, err := q.store.FindActive(ctx, q.clock.Now())
	if err != nil {
		return nil, shared.StoreError(err)
	}
	return rows, nil
}

func (q *couponQueriesImpl) ListExpiredCoupons(ctx context.Context) ([]*CouponView, error) {
	rows, err := q.store.FindExpired(ctx, q.clock.Now())
	if err != nil {
		return nil, shared.StoreError(err)
	}
	return rows, nil
}

func (q *couponQueriesImpl) ListCoupons(ctx context.Context) ([]*CouponView, error) {
	rows, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, shared.StoreError(err)
	}
	return rows, nil
}
