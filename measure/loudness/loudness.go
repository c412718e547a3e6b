package loudness

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
	"github.com/cwbudde/algo-msvocal/dsp/core"
	"github.com/cwbudde/algo-msvocal/dsp/filter/biquad"
)

const (
	blockSeconds = 0.4
	stepSeconds  = 0.1

	absoluteGate = -70.0
	relativeGate = -10.0

	// lufsOffset calibrates a full-scale 997 Hz sine to -3.01 LUFS.
	lufsOffset = -0.691
)

var (
	// ErrEmptyInput is returned for buffers without channels or frames.
	ErrEmptyInput = errors.New("loudness: empty input")

	// ErrInvalidSampleRate is returned for non-positive sample rates.
	ErrInvalidSampleRate = errors.New("loudness: invalid sample rate")
)

// Result holds the loudness figures of one buffer. Levels with no gated
// content are -Inf.
type Result struct {
	// Integrated is the gated programme loudness in LUFS.
	Integrated float64
	// MaxMomentary is the loudest 400 ms block in LUFS.
	MaxMomentary float64
	// Peak is the largest absolute sample value.
	Peak float64
	// Blocks is the number of 400 ms blocks measured.
	Blocks int
}

// Measure computes the loudness of a.
func Measure(a *buffer.Audio) (Result, error) {
	if a == nil || a.NumChannels() == 0 || a.Frames() == 0 {
		return Result{}, ErrEmptyInput
	}

	if err := a.Validate(); err != nil {
		return Result{}, fmt.Errorf("loudness: %w", err)
	}

	if a.SampleRate <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrInvalidSampleRate, a.SampleRate)
	}

	sr := float64(a.SampleRate)
	n := a.Frames()

	res := Result{
		Integrated:   math.Inf(-1),
		MaxMomentary: math.Inf(-1),
	}

	kw := KWeighting(sr)
	cumulative := make([][]float64, a.NumChannels())

	for c, ch := range a.Channels {
		res.Peak = max(res.Peak, vecmath.MaxAbs(ch))

		w := core.Clone(ch)
		biquad.NewChain(kw).ProcessBlock(w)
		vecmath.MulBlockInPlace(w, w)

		cumulative[c] = prefixSum(w)
	}

	blockLen := int(math.Round(blockSeconds * sr))
	step := max(int(math.Round(stepSeconds*sr)), 1)

	var blocks []float64

	for start := 0; start+blockLen <= n; start += step {
		z := 0.0
		for _, cs := range cumulative {
			z += (cs[start+blockLen] - cs[start]) / float64(blockLen)
		}

		blocks = append(blocks, z)
		res.MaxMomentary = max(res.MaxMomentary, toLUFS(z))
	}

	res.Blocks = len(blocks)
	res.Integrated = gatedLoudness(blocks)

	return res, nil
}

// Integrated returns the gated loudness of a in LUFS.
func Integrated(a *buffer.Audio) (float64, error) {
	res, err := Measure(a)
	if err != nil {
		return 0, err
	}

	return res.Integrated, nil
}

// gatedLoudness applies the absolute then relative gate to block mean
// squares.
func gatedLoudness(blocks []float64) float64 {
	sum, count := 0.0, 0

	for _, z := range blocks {
		if toLUFS(z) > absoluteGate {
			sum += z
			count++
		}
	}

	if count == 0 {
		return math.Inf(-1)
	}

	threshold := toLUFS(sum/float64(count)) + relativeGate
	sum, count = 0, 0

	for _, z := range blocks {
		if l := toLUFS(z); l > absoluteGate && l > threshold {
			sum += z
			count++
		}
	}

	if count == 0 {
		return math.Inf(-1)
	}

	return toLUFS(sum / float64(count))
}

func toLUFS(meanSquare float64) float64 {
	if meanSquare <= 0 {
		return math.Inf(-1)
	}

	return lufsOffset + 10*math.Log10(meanSquare)
}

// prefixSum returns s with s[i] = x[0] + ... + x[i-1].
func prefixSum(x []float64) []float64 {
	s := make([]float64, len(x)+1)
	for i, v := range x {
		s[i+1] = s[i] + v
	}

	return s
}
