package vocal

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/core"
	"github.com/cwbudde/algo-msvocal/dsp/filter/zerophase"
)

// extractBand returns the zero-phase band-passed copy of mid.
func extractBand(mid []float64, spec FilterSpec, sampleRate float64) ([]float64, error) {
	coeffs, err := spec.Design(sampleRate)
	if err != nil {
		return nil, err
	}

	f, err := zerophase.New(coeffs)
	if err != nil {
		return nil, err
	}

	return f.Apply(mid), nil
}

// subtractBand returns mid - k(1-g)·band. band is consumed as scratch.
func subtractBand(mid, band []float64, k, g float64) []float64 {
	out := core.Clone(mid)

	amount := k * (1 - g)
	if amount == 0 {
		return out
	}

	vecmath.ScaleBlockInPlace(band, -amount)
	vecmath.AddBlockInPlace(out, band)

	return out
}
