package band

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-msvocal/dsp/window"
)

// ToneAmplitude estimates the peak amplitude of a sinusoid at freqHz from
// a single Hann-windowed DFT term over all of x. freqHz need not fall on
// a bin.
func ToneAmplitude(x []float64, sampleRate, freqHz float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate %v", ErrInvalidParams, sampleRate)
	}

	if !(freqHz >= 0 && freqHz <= sampleRate/2) {
		return 0, fmt.Errorf("%w: tone %v Hz outside 0-%v Hz", ErrInvalidParams, freqHz, sampleRate/2)
	}

	w := window.Generate(window.TypeHann, len(x), window.WithPeriodic())

	windowed, err := window.ApplyCoefficients(x, w)
	if err != nil {
		return 0, err
	}

	cg, err := window.CoherentGain(w)
	if err != nil || cg == 0 {
		return 0, fmt.Errorf("%w: signal too short for windowing", ErrInvalidParams)
	}

	return 2 * goertzel(windowed, freqHz/sampleRate) / (cg * float64(len(x))), nil
}

// goertzel returns |X| at the normalized frequency f (cycles per sample)
// using the second-order Goertzel recurrence.
func goertzel(x []float64, f float64) float64 {
	sin, cos := math.Sincos(2 * math.Pi * f)
	coeff := 2 * cos

	var s1, s2 float64
	for _, v := range x {
		s1, s2 = v+coeff*s1-s2, s1
	}

	return math.Hypot(s1-s2*cos, s2*sin)
}
