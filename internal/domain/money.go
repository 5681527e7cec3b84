package domain

import "math"

// RoundMoney scales an amount to 2 decimal places, rounding half-up.
func RoundMoney(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
