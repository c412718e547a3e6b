package vocal

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/conv"
	"github.com/cwbudde/algo-msvocal/dsp/core"
)

// Smoother is a one-pole follower with separate coefficients for falling
// (attack) and rising (release) targets. Each Step moves the state by
// coeff·(target-state). The zero value is not ready for use; call
// NewSmoother.
type Smoother struct {
	attack  float64
	release float64
	prev    float64
}

// NewSmoother returns a smoother starting at 1 (gate fully open).
func NewSmoother(attack, release float64) *Smoother {
	return &Smoother{attack: attack, release: release, prev: 1}
}

// Step advances the smoother by one sample and returns the new value.
func (s *Smoother) Step(target float64) float64 {
	c := s.release
	if target < s.prev {
		c = s.attack
	}

	s.prev = c*target + (1-c)*s.prev

	return s.prev
}

// ProcessInPlace replaces every target in buf with the smoothed value.
// The recurrence is strictly sequential.
func (s *Smoother) ProcessInPlace(buf []float64) {
	for i, t := range buf {
		buf[i] = s.Step(t)
	}
}

// Value returns the current state.
func (s *Smoother) Value() float64 { return s.prev }

// Reset returns the state to 1.
func (s *Smoother) Reset() { s.prev = 1 }

// rmsEnvelope returns the centered moving RMS of x over win samples,
// computed as a same-length convolution of x² with a box kernel, so edges
// see a zero-padded partial window. When x is shorter than the window (or
// win < 2) every element holds the global RMS.
func rmsEnvelope(x []float64, win int) ([]float64, error) {
	env := make([]float64, len(x))
	if len(x) == 0 {
		return env, nil
	}

	power := make([]float64, len(x))
	vecmath.MulBlock(power, x, x)

	if win < 2 || win > len(x) {
		rms := envelopeSqrt(vecmath.Sum(power)/float64(len(x)) + envelopeEpsilon)
		for i := range env {
			env[i] = rms
		}

		return env, nil
	}

	kernel := make([]float64, win)
	for i := range kernel {
		kernel[i] = 1 / float64(win)
	}

	avg, err := conv.ConvolveMode(power, kernel, conv.ModeSame)
	if err != nil {
		return nil, err
	}

	for i, p := range avg {
		// FFT round-off can leave tiny negative means in silent regions.
		env[i] = envelopeSqrt(max(p, 0) + envelopeEpsilon)
	}

	return env, nil
}

// gateMid applies the center cut and the smoothed RMS gate to mid in
// place. It returns the mean gate gain for reporting.
func gateMid(mid []float64, centerKill float64) (float64, error) {
	vecmath.ScaleBlockInPlace(mid, 1-centerKill)

	gain, err := rmsEnvelope(mid, gateWindow)
	if err != nil {
		return 0, err
	}

	thr := core.DBToLinear(gateThresholdDB)
	for i, e := range gain {
		gain[i] = core.Clamp(e/thr, 0, 1)
	}

	NewSmoother(smoothAttack, smoothRelease).ProcessInPlace(gain)

	vecmath.MulBlockInPlace(mid, gain)

	if len(gain) == 0 {
		return 0, nil
	}

	return vecmath.Sum(gain) / float64(len(gain)), nil
}
