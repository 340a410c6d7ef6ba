package converter

import (
	"fmt"
	"math"

	"hotel-reservation/internal/domain/coupon"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/pgconv"
)

func basisPoints(d coupon.Discount) int32 {
	bp := d.BasisPoints()
	if bp > math.MaxInt32 || bp < 0 {
		panic(fmt.Sprintf("discount basis points out of int32 range: %d", bp))
	}
	return int32(bp)
}

func CouponToInsertParams(c *coupon.Coupon) sqlc.InsertCouponParams {
	d := c.Discount()
	return sqlc.InsertCouponParams{
		ID:                  pgconv.UUIDToPgtype(c.ID()),
		Code:                c.Code().String(),
		DiscountBasisPoints: basisPoints(d),
		MaxDiscountCents:    d.MaxAmount().Cents(),
		ExpiresAt:           pgconv.TimeToPgtype(c.ExpiresAt()),
		IsActive:            c.IsActive(),
		IsUsed:              c.IsUsed(),
		RestrictedUserIds:   pgconv.UUIDsToPgtype(c.RestrictedUserIDs()),
		CreatedAt:           pgconv.TimeToPgtype(c.CreatedAt()),
		UpdatedAt:           pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponToUpdateParams(c *coupon.Coupon) sqlc.UpdateCouponParams {
	d := c.Discount()
	return sqlc.UpdateCouponParams{
		ID:                  pgconv.UUIDToPgtype(c.ID()),
		DiscountBasisPoints: basisPoints(d),
		MaxDiscountCents:    d.MaxAmount().Cents(),
		ExpiresAt:           pgconv.TimeToPgtype(c.ExpiresAt()),
		IsActive:            c.IsActive(),
		UpdatedAt:           pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponToMarkUsedParams(c *coupon.Coupon) sqlc.MarkCouponUsedParams {
	return sqlc.MarkCouponUsedParams{
		ID:        pgconv.UUIDToPgtype(c.ID()),
		UpdatedAt: pgconv.TimeToPgtype(c.UpdatedAt()),
	}
}

func CouponFromRow(row *sqlc.Coupon) (*coupon.Coupon, error) {
	code, err := coupon.NewCouponCode(row.Code)
	if err != nil {
		return nil, errs.Wrapf(err, "decode code %q", row.Code)
	}
	discount, err := coupon.NewDiscountFromBasisPoints(int64(row.DiscountBasisPoints), row.MaxDiscountCents)
	if err != nil {
		return nil, errs.Wrap(err, "decode discount")
	}

	return coupon.ReconstructCoupon(
		pgconv.UUIDFromPgtype(row.ID),
		code,
		discount,
		pgconv.TimeFromPgtype(row.ExpiresAt),
		row.IsActive,
		row.IsUsed,
		pgconv.UUIDsFromPgtype(row.RestrictedUserIds),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func CouponsFromRows(rows []*sqlc.Coupon) ([]*coupon.Coupon, error) {
	out := make([]*coupon.Coupon, 0, len(rows))
	for _, row := range rows {
		c, err := CouponFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
