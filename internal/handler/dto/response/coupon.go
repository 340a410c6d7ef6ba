package response

import (
	"time"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
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

type CouponValidationResponse struct {
	Code               string     `json:"code"`
	Valid              bool       `json:"valid"`
	Reason             string     `json:"reason,omitempty"`
	DiscountPercentage float64    `json:"discount_percentage,omitempty"`
	MaxDiscountCents   int64      `json:"max_discount_cents,omitempty"`
	ExpiresAt          *time.Time `json:"expires_at,omitempty"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var res CouponResponse
	if err := copier.CopyWithOption(&res, v, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	if res.RestrictedUserIDs == nil {
		res.RestrictedUserIDs = []uuid.UUID{}
	}
	return &res
}

func FromCoupon(c *coupon.Coupon) *CouponResponse {
	return FromCouponView(queries.NewCouponView(c))
}

func FromCouponViews(views []*queries.CouponView) []*CouponResponse {
	res := make([]*CouponResponse, len(views))
	for i, v := range views {
		res[i] = FromCouponView(v)
	}
	return res
}

func FromCouponValidation(v *queries.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Code:               v.Code,
		Valid:              v.Valid,
		Reason:             v.Reason.String(),
		DiscountPercentage: v.DiscountPercentage,
		MaxDiscountCents:   v.MaxDiscountCents,
		ExpiresAt:          v.ExpiresAt,
	}
}
