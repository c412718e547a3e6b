package pass

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

// imagTol separates the real prototype pole of odd orders from the
// complex pairs.
const imagTol = 1e-12

// ButterworthBP designs a Butterworth band-pass of the given prototype order
// with -3 dB edges at lowHz and highHz. The result has 2*order poles held in
// order biquad sections, each with one zero at DC and one at Nyquist.
//
// The passband gain is normalized to exactly 1 at the geometric band center
// (in the warped frequency domain); the normalization is spread evenly over
// all sections to keep intermediate levels balanced.
func ButterworthBP(lowHz, highHz float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("%w: order %d", ErrInvalidParams, order)
	}

	wl, okLow := bilinearK(lowHz, sampleRate)
	wh, okHigh := bilinearK(highHz, sampleRate)

	if !okLow || !okHigh || wh <= wl {
		return nil, fmt.Errorf("%w: band %g-%g Hz at %g Hz", ErrInvalidParams, lowHz, highHz, sampleRate)
	}

	bw := wh - wl
	w0sq := wl * wh

	sections := make([]biquad.Coefficients, 0, order)

	for k := range order {
		p := prototypePole(order, k)
		if imag(p) < -imagTol {
			// Handled together with its conjugate.
			continue
		}

		r1, r2 := bandpassRoots(p, bw, w0sq)

		if math.Abs(imag(p)) <= imagTol {
			sections = append(sections, bandpassSection(bilinearPole(r1), bilinearPole(r2)))

			continue
		}

		z1 := bilinearPole(r1)
		z2 := bilinearPole(r2)
		sections = append(sections,
			bandpassSection(z1, cmplx.Conj(z1)),
			bandpassSection(z2, cmplx.Conj(z2)),
		)
	}

	center := math.Atan(math.Sqrt(w0sq)) * sampleRate / math.Pi

	h := cmplx.Abs(biquad.CascadeResponse(sections, 1, center, sampleRate))
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, fmt.Errorf("%w: degenerate response at %g Hz", ErrInvalidParams, center)
	}

	per := math.Pow(1/h, 1/float64(len(sections)))
	for i := range sections {
		sections[i].B0 *= per
		sections[i].B2 *= per
	}

	return sections, nil
}

// bandpassRoots maps one prototype pole p through s -> (s² + w0²)/(bw·s),
// returning the two roots of s² - p·bw·s + w0² = 0.
func bandpassRoots(p complex128, bw, w0sq float64) (complex128, complex128) {
	pb := p * complex(bw, 0)
	disc := cmplx.Sqrt(pb*pb - complex(4*w0sq, 0))

	return (pb + disc) / 2, (pb - disc) / 2
}

// bilinearPole maps an analog pole to the z-plane with s = (z-1)/(z+1).
func bilinearPole(s complex128) complex128 {
	return (1 + s) / (1 - s)
}

// bandpassSection builds a biquad with poles z1, z2 (a conjugate pair or
// two real poles) and numerator 1 - z^-2.
func bandpassSection(z1, z2 complex128) biquad.Coefficients {
	return biquad.Coefficients{
		B0: 1,
		B1: 0,
		B2: -1,
		A1: -real(z1 + z2),
		A2: real(z1 * z2),
	}
}
