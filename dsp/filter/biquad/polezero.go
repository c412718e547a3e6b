package biquad

import (
	"math"
	"math/cmplx"
)

// Poles returns the roots of z² + A1·z + A2.
func (c *Coefficients) Poles() [2]complex128 {
	half := complex(-c.A1/2, 0)
	d := cmplx.Sqrt(complex(c.A1*c.A1/4-c.A2, 0))

	return [2]complex128{half + d, half - d}
}

// IsStable reports whether both poles lie strictly inside the unit circle.
func (c *Coefficients) IsStable() bool {
	return PoleRadius([]Coefficients{*c}) < 1
}

// PoleRadius returns the largest pole magnitude over all sections. It
// bounds how slowly the cascade's transients decay.
func PoleRadius(coeffs []Coefficients) float64 {
	r := 0.0

	for i := range coeffs {
		for _, p := range coeffs[i].Poles() {
			r = math.Max(r, cmplx.Abs(p))
		}
	}

	return r
}
