package pass

import (
	"errors"
	"math"
)

// ErrInvalidParams is returned when a design request has cutoffs outside
// (0, Nyquist), an inverted band, or a non-positive order.
var ErrInvalidParams = errors.New("pass: invalid parameters")

// bilinearK computes the bilinear transform frequency warping factor tan(π*freq/sampleRate).
// Returns (k, true) on success, (0, false) if parameters are invalid.
func bilinearK(freq, sampleRate float64) (float64, bool) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, false
	}

	if !(freq > 0) || freq >= sampleRate/2 {
		return 0, false
	}

	return math.Tan(math.Pi * freq / sampleRate), true
}

// prototypePole returns the k-th left-half-plane pole of the normalized
// analog Butterworth low-pass of the given order.
func prototypePole(order, k int) complex128 {
	theta := math.Pi * float64(2*k+order+1) / float64(2*order)

	return complex(math.Cos(theta), math.Sin(theta))
}
