package utils

import "math"

// Round2 rounds to two decimal places, half away from zero. Order totals are
// always stored rounded; line prices are stored as-is.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
