package biquad

import (
	"math"
	"math/cmplx"
)

// Response evaluates H(z) on the unit circle at freqHz.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zinv := cmplx.Rect(1, -2*math.Pi*freqHz/sampleRate)

	num := complex(c.B0, 0) + zinv*(complex(c.B1, 0)+zinv*complex(c.B2, 0))
	den := 1 + zinv*(complex(c.A1, 0)+zinv*complex(c.A2, 0))

	return num / den
}

// CascadeResponse is the response of coeffs in series, times gain.
func CascadeResponse(coeffs []Coefficients, gain, freqHz, sampleRate float64) complex128 {
	h := complex(gain, 0)
	for i := range coeffs {
		h *= coeffs[i].Response(freqHz, sampleRate)
	}

	return h
}
