package vocal

import (
	"fmt"

	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
	"github.com/cwbudde/algo-msvocal/dsp/filter/design/pass"
)

// FilterType selects the response of a FilterSpec.
type FilterType int

const (
	LowPass FilterType = iota
	BandPass
)

func (t FilterType) String() string {
	switch t {
	case LowPass:
		return "lowpass"
	case BandPass:
		return "bandpass"
	default:
		return "unknown"
	}
}

// FilterSpec describes a Butterworth filter with cutoffs normalized to
// Nyquist. For LowPass only Low is used.
type FilterSpec struct {
	Type  FilterType
	Low   float64
	High  float64
	Order int
}

// Valid reports whether the cutoffs lie strictly inside (0, 1) and, for a
// band-pass, are ordered.
func (s FilterSpec) Valid() bool {
	if !(s.Low > 0 && s.Low < 1) || s.Order <= 0 {
		return false
	}

	if s.Type == BandPass {
		return s.High > s.Low && s.High < 1
	}

	return true
}

// Design returns the biquad sections for sampleRate. It fails with
// ErrFilterDesign when the spec is not Valid.
func (s FilterSpec) Design(sampleRate float64) ([]biquad.Coefficients, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s %g-%g of Nyquist", ErrFilterDesign, s.Type, s.Low, s.High)
	}

	coeffs, err := s.design(sampleRate)
	if err != nil {
		return nil, err
	}

	return coeffs, requireStable(coeffs)
}

func (s FilterSpec) design(sampleRate float64) ([]biquad.Coefficients, error) {
	nyq := sampleRate / 2

	switch s.Type {
	case BandPass:
		coeffs, err := pass.ButterworthBP(s.Low*nyq, s.High*nyq, s.Order, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFilterDesign, err)
		}

		return coeffs, nil
	case LowPass:
		coeffs := pass.ButterworthLP(s.Low*nyq, s.Order, sampleRate)
		if coeffs == nil {
			return nil, fmt.Errorf("%w: lowpass at %g of Nyquist", ErrFilterDesign, s.Low)
		}

		return coeffs, nil
	default:
		return nil, fmt.Errorf("%w: unknown filter type %d", ErrFilterDesign, s.Type)
	}
}

// requireStable rejects designs whose poles reach the unit circle, which
// extreme cutoffs can produce through round-off.
func requireStable(coeffs []biquad.Coefficients) error {
	for i := range coeffs {
		if !coeffs[i].IsStable() {
			return fmt.Errorf("%w: section %d has a pole on or outside the unit circle", ErrFilterDesign, i)
		}
	}

	return nil
}

// bandSpec sanitizes the band edges of p for sampleRate. corrected reports
// whether the requested band was inverted, out of range or too narrow.
func bandSpec(p Params, sampleRate float64) (spec FilterSpec, corrected bool) {
	nyq := sampleRate / 2

	bl, bh := p.BandLowHz, p.BandHighHz
	if bh <= bl {
		bh = bl + 1
		corrected = true
	}

	lowHz := min(max(minBandHz, bl), nyq)
	highHz := min(nyq-nyquistMarginHz, bh)

	low := lowHz / nyq
	high := highHz / nyq

	if floor := low * minBandRatio; high < floor {
		high = floor
		corrected = true
	}

	if lowHz != bl || highHz != bh {
		corrected = true
	}

	return FilterSpec{Type: BandPass, Low: low, High: high, Order: bandOrder}, corrected
}

// protectSpec returns the high protection low-pass for p, or ok=false when
// the stage is skipped.
func protectSpec(p Params, sampleRate float64) (spec FilterSpec, ok bool) {
	if !(p.ProtectHighHz > 0) {
		return FilterSpec{}, false
	}

	nyq := sampleRate / 2

	cut := min(p.ProtectHighHz, nyq-nyquistMarginHz) / nyq
	if !(cut > 0 && cut < maxProtectCut) {
		return FilterSpec{}, false
	}

	return FilterSpec{Type: LowPass, Low: cut, Order: protectOrder}, true
}
