package errs

// Error kinds that cross the reservation/discount core boundary.
// Every failure returned by a command or query is (or is marked as) one of these.
var (
	// Reservation core
	ErrInvalidRange      = New("invalid stay range")
	ErrRoomConflict      = New("room already booked for an overlapping stay")
	ErrNotFound          = New("booking not found")
	ErrInvalidTransition = New("invalid booking status transition")

	// Discount core
	ErrInvalidCoupon   = New("invalid coupon")
	ErrBookingNotFound = Mark(New("booking not found for redemption"), ErrNotFound)
	ErrCouponNotFound  = New("coupon not found")
	ErrCouponCodeTaken = New("coupon code already exists")

	// Input validation not covered by the kinds above
	ErrValidation = New("validation failed")

	// Infrastructure
	ErrStoreUnavailable = New("store unavailable")
)
