package vocal

import (
	"fmt"

	"github.com/cwbudde/algo-msvocal/dsp/core"
)

// Default parameter values.
const (
	DefaultBandLowHz     = 200.0
	DefaultBandHighHz    = 6000.0
	DefaultMidGainDB     = 0.0
	DefaultSideGainDB    = 0.0
	DefaultProtectLowHz  = 120.0
	DefaultProtectHighHz = 8000.0
	DefaultOutputGainDB  = 0.0
)

// Params controls one Process call. The zero value is not useful; start
// from DefaultParams.
type Params struct {
	// BandLowHz and BandHighHz bound the mid band that is attenuated.
	BandLowHz  float64 `toml:"band_low_hz"`
	BandHighHz float64 `toml:"band_high_hz"`

	// MidGainDB is the target level of the band in the mid channel.
	// 0 leaves it untouched, -80 and below removes it completely.
	MidGainDB float64 `toml:"mid_gain_db"`

	// SideGainDB scales the whole side channel.
	SideGainDB float64 `toml:"side_gain_db"`

	// ProtectLowHz is accepted for symmetry but has no effect: content
	// below it is never additionally filtered.
	ProtectLowHz float64 `toml:"protect_low_hz"`

	// ProtectHighHz is the cutoff of the final low-pass. Values <= 0 or at
	// or above Nyquist disable it.
	ProtectHighHz float64 `toml:"protect_high_hz"`

	// OutputGainDB is applied before the peak safety stage.
	OutputGainDB float64 `toml:"output_gain_db"`
}

// DefaultParams returns the documented defaults: band 200-6000 Hz, unity
// gains, protection at 120 Hz and 8 kHz.
func DefaultParams() Params {
	return Params{
		BandLowHz:     DefaultBandLowHz,
		BandHighHz:    DefaultBandHighHz,
		MidGainDB:     DefaultMidGainDB,
		SideGainDB:    DefaultSideGainDB,
		ProtectLowHz:  DefaultProtectLowHz,
		ProtectHighHz: DefaultProtectHighHz,
		OutputGainDB:  DefaultOutputGainDB,
	}
}

// Validate reports ErrInvalidParams if any field is NaN or infinite.
// Out-of-range but finite values are corrected during processing.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"band_low_hz", p.BandLowHz},
		{"band_high_hz", p.BandHighHz},
		{"mid_gain_db", p.MidGainDB},
		{"side_gain_db", p.SideGainDB},
		{"protect_low_hz", p.ProtectLowHz},
		{"protect_high_hz", p.ProtectHighHz},
		{"output_gain_db", p.OutputGainDB},
	}

	for _, f := range fields {
		if !core.IsFinite(f.value) {
			return fmt.Errorf("%w: %s = %v", ErrInvalidParams, f.name, f.value)
		}
	}

	return nil
}

// gateEngaged reports whether the center cut and noise gate run.
func (p Params) gateEngaged() bool {
	return p.MidGainDB <= gateEngageDB
}

// boost returns the over-subtraction factor k for the mid gain.
func (p Params) boost() float64 {
	switch {
	case p.MidGainDB <= deepCutDB:
		return boostDeep
	case p.MidGainDB <= gateEngageDB:
		return boostEngaged
	default:
		return 1
	}
}

// effectiveMidGain returns the linear mid gain, forced to 0 at and below
// full removal.
func (p Params) effectiveMidGain() float64 {
	if p.MidGainDB <= fullRemovalDB {
		return 0
	}

	return core.DBToLinear(p.MidGainDB)
}

// centerKill returns the fraction removed uniformly from the mid signal
// when the gate is engaged.
func (p Params) centerKill() float64 {
	if p.MidGainDB <= deepCutDB {
		return centerKillDeep
	}

	return centerKillDeep * centerKillScale
}
