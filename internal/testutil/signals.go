package testutil

import (
	"math"
	"math/rand"
)

// Sine generates amplitude·sin(2π·freqHz·n/sampleRate + phase).
func Sine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}

	return out
}

// DeterministicSine generates a sine wave starting at phase zero.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	return Sine(freqHz, sampleRate, amplitude, 0, length)
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Sum adds equal-length signals sample by sample. The result has the
// length of the shortest input.
func Sum(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}

	n := len(signals[0])
	for _, s := range signals[1:] {
		n = min(n, len(s))
	}

	out := make([]float64, n)
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}

	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}

	return out
}
