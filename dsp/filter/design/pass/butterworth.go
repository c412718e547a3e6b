package pass

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

// ButterworthLP designs a Butterworth low-pass of the given order with its
// -3 dB point at freq. Each conjugate prototype pole pair becomes one
// section with a double zero at Nyquist; odd orders end with a first-order
// section (B2 = A2 = 0). Every section has unity gain at DC.
//
// It returns nil for order <= 0 or freq outside (0, sampleRate/2).
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 {
		return nil
	}

	k, ok := bilinearK(freq, sampleRate)
	if !ok {
		return nil
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	for i := range order {
		p := prototypePole(order, i)
		if imag(p) < -imagTol {
			continue
		}

		z := bilinearPole(p * complex(k, 0))
		if math.Abs(imag(p)) <= imagTol {
			sections = append(sections, lowpassFirstOrder(real(z)))
			continue
		}

		sections = append(sections, lowpassPair(z))
	}

	return sections
}

// lowpassPair builds the section for poles z, conj(z) with numerator
// (1 + z^-1)², scaled to unity DC gain.
func lowpassPair(z complex128) biquad.Coefficients {
	a1 := -2 * real(z)
	a2 := real(z * cmplx.Conj(z))
	g := (1 + a1 + a2) / 4

	return biquad.Coefficients{B0: g, B1: 2 * g, B2: g, A1: a1, A2: a2}
}

// lowpassFirstOrder builds the section for a real pole with numerator
// 1 + z^-1, scaled to unity DC gain.
func lowpassFirstOrder(pole float64) biquad.Coefficients {
	g := (1 - pole) / 2

	return biquad.Coefficients{B0: g, B1: g, A1: -pole}
}
