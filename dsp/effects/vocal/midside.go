package vocal

import "github.com/cwbudde/algo-vecmath"

// Decompose splits left/right into mid = (L+R)/2 and side = (L-R)/2.
// The inputs must have equal length.
func Decompose(left, right []float64) (mid, side []float64) {
	mid = make([]float64, len(left))
	side = make([]float64, len(left))

	vecmath.AddMulBlock(mid, left, right, 0.5)

	for i := range side {
		side[i] = (left[i] - right[i]) * 0.5
	}

	return mid, side
}

// Recompose is the inverse of Decompose: L = M+S, R = M-S.
func Recompose(mid, side []float64) (left, right []float64) {
	left = make([]float64, len(mid))
	right = make([]float64, len(mid))

	vecmath.AddBlock(left, mid, side)

	for i := range right {
		right[i] = mid[i] - side[i]
	}

	return left, right
}
