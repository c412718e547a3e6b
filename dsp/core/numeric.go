package core

import "math"

// Clamp limits v to [lo, hi]. Swapped bounds are reordered.
func Clamp(v, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// IsFinite reports whether x is a real number (not NaN, not ±Inf).
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// DBToLinear maps an amplitude level in dB to a linear gain.
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB maps a linear amplitude to dB. Zero gives -Inf and negative
// input gives NaN.
func LinearToDB(a float64) float64 {
	return 2 * LinearPowerToDB(a)
}

// LinearPowerToDB maps a linear power ratio to dB. Zero gives -Inf and
// negative input gives NaN.
func LinearPowerToDB(p float64) float64 {
	switch {
	case p < 0:
		return math.NaN()
	case p == 0:
		return math.Inf(-1)
	default:
		return 10 * math.Log10(p)
	}
}
