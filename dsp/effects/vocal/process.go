package vocal

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
	"github.com/cwbudde/algo-msvocal/dsp/core"
)

// Report describes what one Process call did.
type Report struct {
	// Band is the sanitized band-pass spec. BandCorrected is set when the
	// requested edges were inverted, collapsed or out of range.
	Band          FilterSpec
	BandCorrected bool

	// Boost is the over-subtraction factor k and MidGain the effective
	// linear mid gain used in mid - k(1-MidGain)·band.
	Boost   float64
	MidGain float64

	// GateEngaged is set when the center cut and gate ran. MeanGate is the
	// average smoothed gate gain (1 when not engaged).
	GateEngaged bool
	CenterKill  float64
	MeanGate    float64

	// PeakBeforeSafety is the joint peak after the output gain and
	// SafetyScale the total uniform gain applied to keep the output at or
	// below the 0.98 ceiling.
	PeakBeforeSafety float64
	SafetyScale      float64

	// ProtectApplied is set when the high protection low-pass ran.
	ProtectApplied bool
	ProtectCutoff  float64
}

// Process runs the vocal attenuator on in and returns a new stereo buffer
// with the same frame count and sample rate. in is not modified. Mono input
// is treated as L = R.
func Process(in *buffer.Audio, p Params) (*buffer.Audio, error) {
	out, _, err := ProcessReport(in, p)
	return out, err
}

// ProcessReport is Process with diagnostics.
func ProcessReport(in *buffer.Audio, p Params) (*buffer.Audio, Report, error) {
	var rep Report

	if in == nil {
		return nil, rep, ErrEmptyInput
	}

	if n := in.NumChannels(); n != 1 && n != 2 {
		return nil, rep, fmt.Errorf("%w: got %d", ErrUnsupportedChannelCount, n)
	}

	if err := in.Validate(); err != nil {
		return nil, rep, fmt.Errorf("vocal: %w", err)
	}

	if in.Frames() == 0 {
		return nil, rep, ErrEmptyInput
	}

	if in.SampleRate <= 0 {
		return nil, rep, fmt.Errorf("%w: %d", ErrInvalidSampleRate, in.SampleRate)
	}

	if err := p.Validate(); err != nil {
		return nil, rep, err
	}

	stereo, err := in.Stereo()
	if err != nil {
		return nil, rep, fmt.Errorf("%w: %w", ErrUnsupportedChannelCount, err)
	}

	sr := float64(in.SampleRate)

	rep.Band, rep.BandCorrected = bandSpec(p, sr)
	rep.Boost = p.boost()
	rep.MidGain = p.effectiveMidGain()
	rep.MeanGate = 1

	mid, side := Decompose(stereo.Channels[0], stereo.Channels[1])

	band, err := extractBand(mid, rep.Band, sr)
	if err != nil {
		return nil, rep, err
	}

	mid = subtractBand(mid, band, rep.Boost, rep.MidGain)

	if p.gateEngaged() {
		rep.GateEngaged = true
		rep.CenterKill = p.centerKill()

		rep.MeanGate, err = gateMid(mid, rep.CenterKill)
		if err != nil {
			return nil, rep, fmt.Errorf("vocal: gate: %w", err)
		}
	}

	if g := core.DBToLinear(p.SideGainDB); g != 1 {
		vecmath.ScaleBlockInPlace(side, g)
	}

	left, right := Recompose(mid, side)
	channels := [][]float64{left, right}

	applyGain(channels, core.DBToLinear(p.OutputGainDB))
	rep.PeakBeforeSafety, rep.SafetyScale = peakSafety(channels)

	// Low protection is intentionally a pass-through.
	if spec, ok := protectSpec(p, sr); ok {
		if err := protect(channels, spec, sr); err == nil {
			rep.ProtectApplied = true
			rep.ProtectCutoff = spec.Low * sr / 2

			// Low-pass ringing can lift isolated peaks back over the ceiling.
			_, rescale := peakSafety(channels)
			rep.SafetyScale *= rescale
		}
	}

	return &buffer.Audio{Channels: channels, SampleRate: in.SampleRate}, rep, nil
}
