package services

import (
	"math"
	"time"
)

// Nights counts whole days between start and end, floored at 0.
func Nights(start, end time.Time) int {
	nights := int(end.Sub(start).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// ComputeTotalPrice derives a booking total from the listing's nightly rate
// and the stay window. Zero nights price to 0.00; otherwise rate*nights is
// rounded half away from zero to 2 decimal places, matching the numeric(_,2)
// column the total is stored in.
func ComputeTotalPrice(rate float64, start, end time.Time) float64 {
	nights := Nights(start, end)
	if nights == 0 {
		return 0.0
	}
	return RoundPrice(rate * float64(nights))
}

// RoundPrice rounds to 2 decimal places, half away from zero.
func RoundPrice(v float64) float64 {
	return math.Round(v*100) / 100
}
