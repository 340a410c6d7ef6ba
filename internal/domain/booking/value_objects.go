package booking

import (
	"errors"
	"html"
	"strings"
	"unicode/utf8"
)

const MaxSpecialRequestsLength = 500

var (
	ErrNegativeAmount         = errors.New("amount cannot be negative")
	ErrSpecialRequestsTooLong = errors.New("special requests cannot exceed 500 characters")
)

// Money is an amount in cents.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// Sub never goes below zero.
func (m Money) Sub(other Money) Money {
	if other.cents >= m.cents {
		return Money{}
	}
	return Money{cents: m.cents - other.cents}
}

func (m Money) Min(other Money) Money {
	if other.cents < m.cents {
		return other
	}
	return m
}

// Fraction returns m * basisPoints / 10000, floored to the cent.
func (m Money) Fraction(basisPoints int64) Money {
	if basisPoints <= 0 {
		return Money{}
	}
	return Money{cents: m.cents * basisPoints / 10000}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// SpecialRequests holds trimmed, HTML-escaped guest text.
type SpecialRequests struct {
	text string
}

// NewSpecialRequests applies the length limit to the escaped text, which is
// what gets stored.
func NewSpecialRequests(s string) (SpecialRequests, error) {
	t := html.EscapeString(strings.TrimSpace(s))
	if utf8.RuneCountInString(t) > MaxSpecialRequestsLength {
		return SpecialRequests{}, ErrSpecialRequestsTooLong
	}
	return SpecialRequests{text: t}, nil
}

// RestoreSpecialRequests wraps text that was sanitized before it was stored.
func RestoreSpecialRequests(s string) SpecialRequests {
	return SpecialRequests{text: s}
}

func (r SpecialRequests) String() string { return r.text }
