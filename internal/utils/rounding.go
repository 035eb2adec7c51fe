/*
This file contains the rounding helpers shared by the analyzer and advisor.
Every derived metric is rounded to a fixed precision so identical inputs
produce bit-identical outputs across calls.
*/

package utils

import "math"

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

// Clamp bounds a value to the inclusive [min, max] range.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
