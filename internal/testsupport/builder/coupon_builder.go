//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/coupon"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID                  uuid.UUID
	Code                string
	DiscountBasisPoints int64
	MaxDiscountCents    int64
	ExpiresAt           time.Time
	IsActive            bool
	IsUsed              bool
	RestrictedUserIDs   []uuid.UUID
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC)
	return &CouponBuilder{
		ID:                  uuid.New(),
		Code:                "SAVE5",
		DiscountBasisPoints: 500,
		MaxDiscountCents:    10000,
		ExpiresAt:           now.Add(30 * 24 * time.Hour),
		IsActive:            true,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() *coupon.Coupon {
	code, err := coupon.NewCouponCode(b.Code)
	if err != nil {
		panic(err)
	}
	discount, err := coupon.NewDiscountFromBasisPoints(b.DiscountBasisPoints, b.MaxDiscountCents)
	if err != nil {
		panic(err)
	}
	return coupon.ReconstructCoupon(
		b.ID, code, discount, b.ExpiresAt, b.IsActive, b.IsUsed,
		b.RestrictedUserIDs, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *CouponBuilder) BuildRow() sqlc.Coupon {
	return sqlc.Coupon{
		ID:                  pgconv.UUIDToPgtype(b.ID),
		Code:                b.Code,
		DiscountBasisPoints: int32(b.DiscountBasisPoints),
		MaxDiscountCents:    b.MaxDiscountCents,
		ExpiresAt:           pgconv.TimeToPgtype(b.ExpiresAt),
		IsActive:            b.IsActive,
		IsUsed:              b.IsUsed,
		RestrictedUserIds:   pgconv.UUIDsToPgtype(b.RestrictedUserIDs),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt:           pgconv.TimeToPgtype(b.UpdatedAt),
	}
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return queries.NewCouponView(b.BuildDomain())
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	pct := float64(b.DiscountBasisPoints) / 100
	return reqdto.CreateCouponRequest{
		Code:               b.Code,
		DiscountPercentage: &pct,
		MaxDiscountCents:   b.MaxDiscountCents,
		ExpiresAt:          b.ExpiresAt,
		RestrictedUserIDs:  b.RestrictedUserIDs,
	}
}
