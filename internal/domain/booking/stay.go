package booking

import (
	"fmt"
	"time"

	"hotel-reservation/internal/pkg/errs"
)

const day = 24 * time.Hour

// Stay is the half-open interval [checkIn, checkOut) a booking occupies.
// Back-to-back stays (one ending exactly when the next starts) do not overlap.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStay truncates both ends to microseconds, the resolution Postgres keeps,
// before checking the range.
func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, errs.ErrInvalidRange
	}
	checkIn, checkOut = storedTime(checkIn), storedTime(checkOut)
	if !checkIn.Before(checkOut) {
		return Stay{}, errs.ErrInvalidRange
	}
	return Stay{
		checkIn:  checkIn,
		checkOut: checkOut,
	}, nil
}

func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Duration() time.Duration {
	return s.checkOut.Sub(s.checkIn)
}

func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// Nights counts started 24h periods, so a same-day stay is billed as one night.
func (s Stay) Nights() int {
	d := s.Duration()
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}

func (s Stay) IsZero() bool {
	return s.checkIn.IsZero() && s.checkOut.IsZero()
}

func (s Stay) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", s.checkIn.Format(time.RFC3339Nano), s.checkOut.Format(time.RFC3339Nano))
}
