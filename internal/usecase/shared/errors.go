package shared

import (
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
)

// coreErrors are the kinds allowed to leave a command or query unchanged.
var coreErrors = []error{
	errs.ErrInvalidRange,
	errs.ErrRoomConflict,
	errs.ErrNotFound,
	errs.ErrInvalidTransition,
	errs.ErrInvalidCoupon,
	errs.ErrBookingNotFound,
	errs.ErrCouponNotFound,
	errs.ErrCouponCodeTaken,
	errs.ErrValidation,
	errs.ErrStoreUnavailable,
}

// StoreError makes sure err is one of the core error kinds. Anything the
// store raised that has no domain meaning becomes ErrStoreUnavailable.
func StoreError(err error) error {
	if err == nil {
		return nil
	}
	if errs.IsAny(err, coreErrors...) {
		return err
	}
	if infra.IsKind(err, infra.KindUnavailable) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return errs.Mark(errs.Wrap(err, "store operation failed"), errs.ErrStoreUnavailable)
}
