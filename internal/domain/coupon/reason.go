package coupon

import (
	"fmt"

	"hotel-reservation/internal/pkg/errs"
)

// Reason explains why a coupon cannot be used.
type Reason string

const (
	ReasonNotFound          Reason = "NOT_FOUND"
	ReasonInactive          Reason = "INACTIVE"
	ReasonExpired           Reason = "EXPIRED"
	ReasonAlreadyUsed       Reason = "ALREADY_USED"
	ReasonUserRestricted    Reason = "USER_RESTRICTED"
	ReasonBookingIneligible Reason = "BOOKING_INELIGIBLE"
)

func (r Reason) String() string { return string(r) }

// InvalidError is the InvalidCoupon error kind carrying its reason.
// errs.Is(err, errs.ErrInvalidCoupon) holds for every InvalidError.
type InvalidError struct {
	Reason Reason
}

func NewInvalidError(reason Reason) *InvalidError {
	return &InvalidError{Reason: reason}
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid coupon: %s", e.Reason)
}

func (e *InvalidError) Unwrap() error {
	return errs.ErrInvalidCoupon
}

// ReasonOf extracts the reason from an error chain, if any.
func ReasonOf(err error) (Reason, bool) {
	var ie *InvalidError
	if errs.As(err, &ie) {
		return ie.Reason, true
	}
	return "", false
}
