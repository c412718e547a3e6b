//go:build !fastmath

package vocal

import "math"

// envelopeSqrt computes sqrt(x) using standard library math.
func envelopeSqrt(x float64) float64 {
	return math.Sqrt(x)
}
