package zerophase

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-msvocal/dsp/core"
	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

// ErrNoSections is returned by New for an empty coefficient list.
var ErrNoSections = errors.New("zerophase: no filter sections")

// Filter applies a biquad cascade with zero phase. A Filter holds no signal
// state between calls and is safe for concurrent use.
type Filter struct {
	coeffs []biquad.Coefficients
	padLen int
	zi     [][2]float64
}

type config struct {
	padLen int
	auto   bool
}

// settleTol is the residual, relative to the initial transient, that the
// automatic edge extension lets the slowest pole decay to.
const settleTol = 1e-9

// maxAutoPad caps the automatic extension for poles very close to the unit
// circle.
const maxAutoPad = 1 << 16

// Option configures a Filter.
type Option func(*config)

// WithPadLen sets a fixed edge extension length instead of the automatic
// one. Negative values are treated as zero. The effective length is always
// clipped to len(x)-1.
func WithPadLen(n int) Option {
	return func(cfg *config) {
		cfg.padLen = max(n, 0)
		cfg.auto = false
	}
}

// DefaultPadLen is the minimum edge extension for a cascade of n sections:
// three times the number of coefficients a direct-form filter of the same
// order would need on each side.
func DefaultPadLen(sections int) int {
	return 3 * (2*sections + 1)
}

// SettleLen returns the number of samples after which the slowest pole of
// coeffs has decayed below settleTol, capped at maxAutoPad.
func SettleLen(coeffs []biquad.Coefficients) int {
	rmax := biquad.PoleRadius(coeffs)

	switch {
	case rmax == 0:
		return 0
	case rmax >= 1:
		return maxAutoPad
	}

	return min(int(math.Ceil(math.Log(settleTol)/math.Log(rmax))), maxAutoPad)
}

// New builds a zero-phase filter around a copy of coeffs.
func New(coeffs []biquad.Coefficients, opts ...Option) (*Filter, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoSections
	}

	cfg := config{auto: true}
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.auto {
		cfg.padLen = max(DefaultPadLen(len(coeffs)), SettleLen(coeffs))
	}

	cp := make([]biquad.Coefficients, len(coeffs))
	copy(cp, coeffs)

	return &Filter{
		coeffs: cp,
		padLen: cfg.padLen,
		zi:     biquad.NewChain(cp).SteadyState(1),
	}, nil
}

// NumSections returns the number of biquad sections.
func (f *Filter) NumSections() int { return len(f.coeffs) }

// PadLen returns the configured edge extension length.
func (f *Filter) PadLen() int { return f.padLen }

// Apply returns the zero-phase filtered copy of x. x is not modified.
// Inputs of length 0 return an empty slice.
func (f *Filter) Apply(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return []float64{}
	}

	pad := min(f.padLen, n-1)
	ext := oddExtend(x, pad)

	chain := biquad.NewChain(f.coeffs)

	chain.SetState(biquad.ScaleStates(f.zi, ext[0]))
	chain.ProcessBlock(ext)

	core.Reverse(ext)
	chain.SetState(biquad.ScaleStates(f.zi, ext[0]))
	chain.ProcessBlock(ext)
	core.Reverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])

	return out
}

// oddExtend returns x with pad samples prepended and appended, each a
// point reflection of the signal through its end sample.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	first, last := x[0], x[n-1]
	for i := range pad {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}

	copy(ext[pad:], x)

	return ext
}
