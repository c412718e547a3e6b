package loudness

import (
	"math"

	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

// BS.1770 pre-filter constants, generalized from the 48 kHz reference
// coefficients.
const (
	shelfFreq    = 1681.974450955533
	shelfGainDB  = 3.999843853973347
	shelfQ       = 0.7071752369554196
	shelfVbPower = 0.4996667741545416

	highpassFreq = 38.13547087602444
	highpassQ    = 0.5003270373238773
)

// KWeighting returns the two K-weighting sections for sampleRate.
func KWeighting(sampleRate float64) []biquad.Coefficients {
	return []biquad.Coefficients{
		kShelf(sampleRate),
		kHighpass(sampleRate),
	}
}

func kShelf(sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * shelfFreq / sampleRate)
	vh := math.Pow(10, shelfGainDB/20)
	vb := math.Pow(vh, shelfVbPower)

	a0 := 1 + k/shelfQ + k*k

	return biquad.Coefficients{
		B0: (vh + vb*k/shelfQ + k*k) / a0,
		B1: 2 * (k*k - vh) / a0,
		B2: (vh - vb*k/shelfQ + k*k) / a0,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/shelfQ + k*k) / a0,
	}
}

func kHighpass(sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * highpassFreq / sampleRate)
	a0 := 1 + k/highpassQ + k*k

	return biquad.Coefficients{
		B0: 1,
		B1: -2,
		B2: 1,
		A1: 2 * (k*k - 1) / a0,
		A2: (1 - k/highpassQ + k*k) / a0,
	}
}
