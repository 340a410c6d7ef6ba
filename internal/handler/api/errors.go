package api

import (
	"net/http"

	"hotel-reservation/internal/domain/coupon"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithCoreError maps core error kinds to a status. Messages are never inspected.
func abortWithCoreError(c *gin.Context, err error) {
	switch {
	case errs.IsAny(err, errs.ErrInvalidRange, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	case errs.Is(err, errs.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, errs.ErrRoomConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is not available for the requested stay", nil)
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Status transition not allowed", nil)
	case errs.Is(err, errs.ErrCouponCodeTaken):
		httperr.AbortWithError(c, http.StatusConflict, err, "Coupon code already exists", nil)
	case errs.Is(err, errs.ErrInvalidCoupon):
		reason, _ := coupon.ReasonOf(err)
		httperr.AbortWithReason(c, http.StatusUnprocessableEntity, err, "Coupon cannot be applied", reason.String())
	case errs.Is(err, errs.ErrStoreUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
