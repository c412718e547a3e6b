package conv

import (
	"errors"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput       = errors.New("conv: empty input")
	ErrEmptyKernel      = errors.New("conv: empty kernel")
	ErrLengthMismatch   = errors.New("conv: buffer length mismatch")
	ErrInvalidBlockSize = errors.New("conv: invalid block size")
)

// Mode selects the region of the full convolution that is returned.
type Mode int

const (
	// ModeFull returns all len(a)+len(b)-1 samples.
	ModeFull Mode = iota

	// ModeSame returns len(a) samples centered on the full result, starting
	// at index (len(b)-1)/2. For an even kernel the extra sample of the
	// window lies ahead of the output position.
	ModeSame

	// ModeValid returns only the samples where the shorter input fully
	// overlaps the longer one: max(len)-min(len)+1 samples.
	ModeValid
)

// String returns the numpy-style name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeSame:
		return "same"
	case ModeValid:
		return "valid"
	default:
		return "unknown"
	}
}

// directThreshold is the kernel length above which Convolve switches to
// overlap-add.
const directThreshold = 64

// Direct performs time-domain linear convolution of a and b and returns a
// new slice of length len(a)+len(b)-1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}

	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	dst := make([]float64, len(a)+len(b)-1)
	DirectTo(dst, a, b)

	return dst, nil
}

// DirectTo convolves a and b into dst, which must have length
// len(a)+len(b)-1. dst is overwritten.
func DirectTo(dst, a, b []float64) {
	clear(dst)

	m := len(b)
	if m < 4 {
		for i, x := range a {
			for j, h := range b {
				dst[i+j] += x * h
			}
		}

		return
	}

	scaled := make([]float64, m)
	for i, x := range a {
		if x == 0 {
			continue
		}

		vecmath.ScaleBlock(scaled, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], scaled)
	}
}

// Convolve returns the full linear convolution of a and b, choosing direct
// or overlap-add convolution by the length of the shorter input.
func Convolve(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}

	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode convolves a with b and trims the result to mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), len(b), mode), nil
}

func trimToMode(full []float64, lenA, lenB int, mode Mode) []float64 {
	switch mode {
	case ModeSame:
		start := (lenB - 1) / 2
		return full[start : start+lenA]
	case ModeValid:
		if lenA >= lenB {
			return full[lenB-1 : lenA]
		}

		return full[lenA-1 : lenB]
	default:
		return full
	}
}

// nextPowerOf2 returns the smallest power of two >= n.
func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
