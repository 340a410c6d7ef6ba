package booking

import "github.com/google/uuid"

type PriceCalculator interface {
	CalculateTotal(roomID uuid.UUID, stay Stay) Money
}

type NightlyRateCalculator struct {
	NightlyRateCents int64
}

func NewNightlyRateCalculator(nightlyRateCents int64) *NightlyRateCalculator {
	return &NightlyRateCalculator{NightlyRateCents: nightlyRateCents}
}

func (pc *NightlyRateCalculator) CalculateTotal(_ uuid.UUID, stay Stay) Money {
	if pc.NightlyRateCents <= 0 {
		return Money{}
	}
	return Money{cents: pc.NightlyRateCents * int64(stay.Nights())}
}
