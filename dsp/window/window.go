// Package window generates tapering windows for spectral measurement.
package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Every supported window is a generalized cosine sum
// w(x) = a0 - a1·cos(2πx) + a2·cos(4πx), x in [0, 1].
var shapes = [...]struct {
	name  string
	terms []float64
}{
	TypeRectangular: {"rectangular", []float64{1}},
	TypeHann:        {"hann", []float64{0.5, 0.5}},
	TypeHamming:     {"hamming", []float64{0.54, 0.46}},
	TypeBlackman:    {"blackman", []float64{0.42, 0.5, 0.08}},
}

func (t Type) valid() bool { return t >= 0 && int(t) < len(shapes) }

// String returns the window name, or "unknown".
func (t Type) String() string {
	if !t.valid() {
		return "unknown"
	}
	return shapes[t].name
}

// Option configures Generate and Apply.
type Option func(*options)

type options struct {
	periodic bool
}

// WithPeriodic drops the final sample of an n+1 point symmetric window,
// the form used for framing FFT input.
func WithPeriodic() Option {
	return func(o *options) { o.periodic = true }
}

// Generate returns n window coefficients, or nil when n <= 0. Unknown
// types yield the rectangular window.
func Generate(t Type, n int, opts ...Option) []float64 {
	if n <= 0 {
		return nil
	}

	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	terms := shapes[TypeRectangular].terms
	if t.valid() {
		terms = shapes[t].terms
	}

	span := float64(n - 1)
	if o.periodic {
		span = float64(n)
	}

	w := make([]float64, n)
	for i := range w {
		x := 0.0
		if span > 0 {
			x = float64(i) / span
		}
		w[i] = cosineSum(terms, x)
	}

	return w
}

func cosineSum(terms []float64, x float64) float64 {
	var sum float64
	for k, a := range terms {
		c := a * math.Cos(2*math.Pi*float64(k)*x)
		if k%2 == 1 {
			c = -c
		}
		sum += c
	}
	return sum
}

// Apply tapers buf in place with the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) > 0 {
		vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
	}
}

// ApplyCoefficients returns samples multiplied element-wise by coeffs.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, fmt.Errorf("%w: %d samples, %d coefficients", ErrLengthMismatch, len(samples), len(coeffs))
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// CoherentGain is the mean coefficient: the amplitude scale the window
// applies to a bin-centered tone.
func CoherentGain(w []float64) (float64, error) {
	return meanOf(w, func(v float64) float64 { return v })
}

// PowerGain is the mean squared coefficient: the scale applied to the
// power of broadband noise.
func PowerGain(w []float64) (float64, error) {
	return meanOf(w, func(v float64) float64 { return v * v })
}

func meanOf(w []float64, f func(float64) float64) (float64, error) {
	if len(w) == 0 {
		return 0, ErrEmpty
	}

	var sum float64
	for _, v := range w {
		sum += f(v)
	}

	return sum / float64(len(w)), nil
}
