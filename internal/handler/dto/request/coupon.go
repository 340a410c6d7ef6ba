package request

import (
	"time"

	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type RedeemCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

type CreateCouponRequest struct {
	Code               string      `json:"code" binding:"required"`
	DiscountPercentage *float64    `json:"discount_percentage" binding:"required,gte=0,lte=100"`
	MaxDiscountCents   int64       `json:"max_discount_cents" binding:"min=0"`
	ExpiresAt          time.Time   `json:"expires_at" binding:"required"`
	RestrictedUserIDs  []uuid.UUID `json:"restricted_user_ids"`
}

// ToInput expects a bound request; a missing percentage fails binding.
func (r *CreateCouponRequest) ToInput() commands.CreateCouponInput {
	var pct float64
	if r.DiscountPercentage != nil {
		pct = *r.DiscountPercentage
	}
	return commands.CreateCouponInput{
		Code:               r.Code,
		DiscountPercentage: pct,
		MaxDiscountCents:   r.MaxDiscountCents,
		ExpiresAt:          r.ExpiresAt,
		RestrictedUserIDs:  r.RestrictedUserIDs,
	}
}

type UpdateCouponRequest struct {
	DiscountPercentage *float64  `json:"discount_percentage" binding:"required,gte=0,lte=100"`
	MaxDiscountCents   int64     `json:"max_discount_cents" binding:"min=0"`
	ExpiresAt          time.Time `json:"expires_at" binding:"required"`
}

func (r *UpdateCouponRequest) ToInput() commands.UpdateCouponInput {
	var pct float64
	if r.DiscountPercentage != nil {
		pct = *r.DiscountPercentage
	}
	return commands.UpdateCouponInput{
		DiscountPercentage: pct,
		MaxDiscountCents:   r.MaxDiscountCents,
		ExpiresAt:          r.ExpiresAt,
	}
}
