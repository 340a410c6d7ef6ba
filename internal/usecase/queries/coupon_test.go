//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCouponQueries_ValidateCoupon(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	expires := now.AddDate(0, 0, 7)

	s := newStore()
	seedCoupon(t, s, couponSeed{code: "SUMMER20", percent: 20, maxCents: 5000, expiresAt: expires})
	seedCoupon(t, s, couponSeed{code: "OFF", percent: 10, expiresAt: expires, inactive: true})
	seedCoupon(t, s, couponSeed{code: "OLD", percent: 10, expiresAt: now})
	seedCoupon(t, s, couponSeed{code: "SPENT", percent: 10, expiresAt: expires, used: true})
	seedCoupon(t, s, couponSeed{code: "OTHERS", percent: 50, expiresAt: expires, restricted: []uuid.UUID{uuid.New()}})
	seedCoupon(t, s, couponSeed{code: "BANNED", percent: 50, expiresAt: expires, restricted: []uuid.UUID{uuid.New(), userID}})
	q := queries.NewCouponQueries(s.CouponReads(), clock.NewMockClock(now))

	testCases := []struct {
		name     string
		code     string
		expected queries.CouponValidation
	}{
		{
			name:     "success: valid coupon reports its terms",
			code:     "summer20",
			expected: queries.CouponValidation{Code: "SUMMER20", Valid: true, DiscountPercentage: 20, MaxDiscountCents: 5000, ExpiresAt: &expires},
		},
		{
			name:     "success: restriction list naming only other users",
			code:     "OTHERS",
			expected: queries.CouponValidation{Code: "OTHERS", Valid: true, DiscountPercentage: 50, ExpiresAt: &expires},
		},
		{name: "error: unknown code", code: "NOPE", expected: queries.CouponValidation{Code: "NOPE", Reason: coupon.ReasonNotFound}},
		{name: "error: malformed code", code: "?", expected: queries.CouponValidation{Code: "?", Reason: coupon.ReasonNotFound}},
		{name: "error: inactive", code: "OFF", expected: queries.CouponValidation{Code: "OFF", Reason: coupon.ReasonInactive}},
		{name: "error: expiry instant counts as expired", code: "OLD", expected: queries.CouponValidation{Code: "OLD", Reason: coupon.ReasonExpired}},
		{name: "error: already used", code: "SPENT", expected: queries.CouponValidation{Code: "SPENT", Reason: coupon.ReasonAlreadyUsed}},
		{name: "error: user on the restricted list", code: "BANNED", expected: queries.CouponValidation{Code: "BANNED", Reason: coupon.ReasonUserRestricted}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := q.ValidateCoupon(ctx, tc.code, userID)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.expected, *got); diff != "" {
				t.Errorf("validation mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("success: validation has no side effects", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			got, err := q.ValidateCoupon(ctx, "SUMMER20", userID)
			require.NoError(t, err)
			assert.True(t, got.Valid)
		}
	})
}

func TestCouponQueries_GetAndList(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	soon := seedCoupon(t, s, couponSeed{code: "SOON", percent: 10, expiresAt: now.Add(time.Hour)})
	later := seedCoupon(t, s, couponSeed{code: "LATER", percent: 10, expiresAt: now.Add(48 * time.Hour)})
	gone := seedCoupon(t, s, couponSeed{code: "GONE", percent: 10, expiresAt: now.Add(-time.Hour)})
	seedCoupon(t, s, couponSeed{code: "OFF", percent: 10, expiresAt: now.Add(time.Hour), inactive: true})
	q := queries.NewCouponQueries(s.CouponReads(), clock.NewMockClock(now))

	view, err := q.GetCoupon(ctx, soon.ID())
	require.NoError(t, err)
	assert.Equal(t, "SOON", view.Code)
	assert.InDelta(t, 10.0, view.DiscountPercentage, 0.001)

	_, err = q.GetCoupon(ctx, uuid.New())
	assert.True(t, errs.Is(err, errs.ErrCouponNotFound))

	active, err := q.ListActiveCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, soon.ID(), active[0].ID)
	assert.Equal(t, later.ID(), active[1].ID)

	expired, err := q.ListExpiredCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, gone.ID(), expired[0].ID)
}

func TestCouponQueries_ListCoupons(t *testing.T) {
	ctx := context.Background()
	s := newStore()
	q := queries.NewCouponQueries(s.CouponReads(), clock.NewMockClock(now))

	empty, err := q.ListCoupons(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	ids := []uuid.UUID{
		seedCoupon(t, s, couponSeed{code: "LIVE", percent: 10, expiresAt: now.Add(time.Hour)}).ID(),
		seedCoupon(t, s, couponSeed{code: "OLD", percent: 10, expiresAt: now.Add(-time.Hour)}).ID(),
		seedCoupon(t, s, couponSeed{code: "OFF", percent: 10, expiresAt: now.Add(time.Hour), inactive: true}).ID(),
		seedCoupon(t, s, couponSeed{code: "SPENT", percent: 10, expiresAt: now.Add(time.Hour), used: true}).ID(),
	}

	all, err := q.ListCoupons(ctx)
	require.NoError(t, err)
	got := make([]uuid.UUID, len(all))
	for i, v := range all {
		got[i] = v.ID
	}
	assert.ElementsMatch(t, ids, got)
}
