package coupon

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"hotel-reservation/internal/domain/booking"
)

const MaxCodeLength = 20

var (
	ErrInvalidCouponCode      = errors.New("coupon code must be 3-20 letters, digits, '-' or '_'")
	ErrInvalidDiscountPercent = errors.New("discount percentage must be between 0 and 100")
	ErrInvalidMaxDiscount     = errors.New("max discount amount cannot be negative")
)

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9_-]{3,20}$`)

// Code is stored upper-case; lookups are case-insensitive.
type Code string

func NewCouponCode(code string) (Code, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

// Discount is a percentage (in basis points) capped at an absolute amount.
type Discount struct {
	basisPoints int64
	maxAmount   booking.Money
}

func NewDiscount(percentage float64, maxAmountCents int64) (Discount, error) {
	if math.IsNaN(percentage) || percentage < 0 || percentage > 100 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	return NewDiscountFromBasisPoints(int64(math.Round(percentage*100)), maxAmountCents)
}

func NewDiscountFromBasisPoints(basisPoints, maxAmountCents int64) (Discount, error) {
	if basisPoints < 0 || basisPoints > 10000 {
		return Discount{}, ErrInvalidDiscountPercent
	}
	maxAmount, err := booking.NewMoney(maxAmountCents)
	if err != nil {
		return Discount{}, ErrInvalidMaxDiscount
	}
	return Discount{basisPoints: basisPoints, maxAmount: maxAmount}, nil
}

func (d Discount) BasisPoints() int64       { return d.basisPoints }
func (d Discount) Percentage() float64      { return float64(d.basisPoints) / 100 }
func (d Discount) MaxAmount() booking.Money { return d.maxAmount }

// AmountFor returns min(total * percentage / 100, maxAmount), floored to the cent.
func (d Discount) AmountFor(total booking.Money) booking.Money {
	return total.Fraction(d.basisPoints).Min(d.maxAmount)
}
