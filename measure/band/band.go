package band

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/core"
	"github.com/cwbudde/algo-msvocal/dsp/window"
)

// Errors returned by the band measurements.
var (
	ErrEmptyInput    = errors.New("band: empty input")
	ErrInvalidParams = errors.New("band: invalid parameters")
)

// floorDB is returned by EnergyDB for zero energy.
const floorDB = -300.0

// Spectrum is a one-sided, window-normalized power spectrum of one signal.
type Spectrum struct {
	power      []float64
	binHz      float64
	sampleRate float64
}

// Analyze computes the power spectrum of x. Bin k covers k·sampleRate/N Hz
// for the zero-padded power-of-two length N.
func Analyze(x []float64, sampleRate float64) (*Spectrum, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: sample rate %v", ErrInvalidParams, sampleRate)
	}

	w := window.Generate(window.TypeHann, len(x), window.WithPeriodic())
	if len(x) == 1 {
		w[0] = 1
	}

	windowed, err := window.ApplyCoefficients(x, w)
	if err != nil {
		return nil, err
	}

	pg, err := window.PowerGain(w)
	if err != nil {
		return nil, err
	}

	fftSize := nextPowerOf2(len(x))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("band: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("band: forward FFT failed: %w", err)
	}

	half := fftSize/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)

	for k, c := range out[:half] {
		re[k], im[k] = real(c), imag(c)
	}

	power := make([]float64, half)
	vecmath.Power(power, re, im)

	// Parseval with the window's power gain: sum(power)/(N·len·pg) is the
	// mean square of x. Non-DC, non-Nyquist bins carry both sides.
	norm := 1 / (float64(fftSize) * float64(len(x)) * pg)
	for k := range power {
		scale := 2 * norm
		if k == 0 || (fftSize > 1 && k == fftSize/2) {
			scale = norm
		}

		power[k] *= scale
	}

	return &Spectrum{
		power:      power,
		binHz:      sampleRate / float64(fftSize),
		sampleRate: sampleRate,
	}, nil
}

// Energy returns the mean power of the bins in [lowHz, highHz].
func (s *Spectrum) Energy(lowHz, highHz float64) (float64, error) {
	if math.IsNaN(lowHz) || math.IsNaN(highHz) || lowHz < 0 || highHz < lowHz {
		return 0, fmt.Errorf("%w: range %v-%v Hz", ErrInvalidParams, lowHz, highHz)
	}

	sum := 0.0

	for k, p := range s.power {
		f := float64(k) * s.binHz
		if f >= lowHz && f <= highHz {
			sum += p
		}
	}

	return sum, nil
}

// Total returns the mean power over the whole spectrum.
func (s *Spectrum) Total() float64 {
	sum := 0.0
	for _, p := range s.power {
		sum += p
	}

	return sum
}

// Energy returns the mean power of x inside [lowHz, highHz].
func Energy(x []float64, sampleRate, lowHz, highHz float64) (float64, error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, err
	}

	return s.Energy(lowHz, highHz)
}

// EnergyDB is Energy in dB (10·log10), floored at -300 dB.
func EnergyDB(x []float64, sampleRate, lowHz, highHz float64) (float64, error) {
	e, err := Energy(x, sampleRate, lowHz, highHz)
	if err != nil {
		return 0, err
	}

	return toDB(e), nil
}

// Split returns the mean power inside [lowHz, highHz] and outside it.
func Split(x []float64, sampleRate, lowHz, highHz float64) (inside, outside float64, err error) {
	s, err := Analyze(x, sampleRate)
	if err != nil {
		return 0, 0, err
	}

	inside, err = s.Energy(lowHz, highHz)
	if err != nil {
		return 0, 0, err
	}

	return inside, max(s.Total()-inside, 0), nil
}

func toDB(power float64) float64 {
	if power <= 0 {
		return floorDB
	}

	return max(core.LinearPowerToDB(power), floorDB)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
