package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrChannelCount is returned when a buffer has an unsupported number
	// of channels for the requested conversion.
	ErrChannelCount = errors.New("buffer: unsupported channel count")

	// ErrRaggedChannels is returned when channels differ in length.
	ErrRaggedChannels = errors.New("buffer: channels differ in length")

	// ErrInterleavedLength is returned when an interleaved slice is not a
	// whole number of frames.
	ErrInterleavedLength = errors.New("buffer: interleaved length is not a multiple of the channel count")
)

// Audio is a planar block of audio samples at a fixed sample rate.
type Audio struct {
	Channels   [][]float64
	SampleRate int
}

// New returns a zero-filled Audio with the given shape.
func New(channels, frames, sampleRate int) *Audio {
	if channels < 0 {
		channels = 0
	}

	if frames < 0 {
		frames = 0
	}

	a := &Audio{
		Channels:   make([][]float64, channels),
		SampleRate: sampleRate,
	}
	for i := range a.Channels {
		a.Channels[i] = make([]float64, frames)
	}

	return a
}

// FromChannels wraps existing channel slices without copying.
func FromChannels(sampleRate int, channels ...[]float64) (*Audio, error) {
	a := &Audio{Channels: channels, SampleRate: sampleRate}

	err := a.Validate()
	if err != nil {
		return nil, err
	}

	return a, nil
}

// FromInterleaved de-interleaves data (frame-major, as stored in PCM
// files) into a new planar Audio.
func FromInterleaved(data []float64, channels, sampleRate int) (*Audio, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, channels)
	}

	if len(data)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples, %d channels", ErrInterleavedLength, len(data), channels)
	}

	frames := len(data) / channels
	a := New(channels, frames, sampleRate)

	for f := range frames {
		base := f * channels
		for ch := range channels {
			a.Channels[ch][f] = data[base+ch]
		}
	}

	return a, nil
}

// NumChannels returns the channel count.
func (a *Audio) NumChannels() int {
	return len(a.Channels)
}

// Frames returns the number of frames (samples per channel).
func (a *Audio) Frames() int {
	if len(a.Channels) == 0 {
		return 0
	}

	return len(a.Channels[0])
}

// Validate reports ErrRaggedChannels if the channels differ in length.
func (a *Audio) Validate() error {
	frames := a.Frames()
	for i, ch := range a.Channels {
		if len(ch) != frames {
			return fmt.Errorf("%w: channel %d has %d frames, want %d", ErrRaggedChannels, i, len(ch), frames)
		}
	}

	return nil
}

// Interleaved returns the samples in frame-major order.
func (a *Audio) Interleaved() []float64 {
	channels := a.NumChannels()
	frames := a.Frames()
	out := make([]float64, channels*frames)

	for ch, samples := range a.Channels {
		for f, v := range samples {
			out[f*channels+ch] = v
		}
	}

	return out
}

// Stereo returns a new two-channel copy of a. Mono input is duplicated to
// both channels (L = R). Any channel count other than 1 or 2 is rejected.
func (a *Audio) Stereo() (*Audio, error) {
	err := a.Validate()
	if err != nil {
		return nil, err
	}

	var left, right []float64

	switch a.NumChannels() {
	case 1:
		left, right = a.Channels[0], a.Channels[0]
	case 2:
		left, right = a.Channels[0], a.Channels[1]
	default:
		return nil, fmt.Errorf("%w: %d", ErrChannelCount, a.NumChannels())
	}

	out := New(2, a.Frames(), a.SampleRate)
	copy(out.Channels[0], left)
	copy(out.Channels[1], right)

	return out, nil
}
