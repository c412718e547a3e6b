package vocal

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/filter/zerophase"
)

// applyGain scales every channel by g.
func applyGain(channels [][]float64, g float64) {
	if g == 1 {
		return
	}

	for _, ch := range channels {
		vecmath.ScaleBlockInPlace(ch, g)
	}
}

// peakSafety rescales all channels uniformly when their joint peak exceeds
// safetyPeak. It returns the peak found and the scale applied (1 if none).
func peakSafety(channels [][]float64) (peak, scale float64) {
	for _, ch := range channels {
		if len(ch) > 0 {
			peak = max(peak, vecmath.MaxAbs(ch))
		}
	}

	if peak <= safetyPeak {
		return peak, 1
	}

	scale = safetyPeak / peak
	applyGain(channels, scale)

	return peak, scale
}

// protect runs the high protection low-pass zero-phase on every channel,
// one goroutine per channel. Channels are replaced with filtered copies.
func protect(channels [][]float64, spec FilterSpec, sampleRate float64) error {
	coeffs, err := spec.Design(sampleRate)
	if err != nil {
		return err
	}

	f, err := zerophase.New(coeffs)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup

	for i := range channels {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			channels[i] = f.Apply(channels[i])
		}(i)
	}

	wg.Wait()

	return nil
}
