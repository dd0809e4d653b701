package utils

import "math"

// RoundFloat rounds to the given number of decimal places. Every money amount
// the ledger stores or compares goes through this at precision 2.
func RoundFloat(val float64, precision int) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}
