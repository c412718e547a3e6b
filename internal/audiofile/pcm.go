package audiofile

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
)

const (
	defaultBitDepth = 16
	floatBitDepth   = 32
)

func supportedBitDepth(bits int) bool {
	return bits == 16 || bits == 24 || bits == 32
}

// SampleFormat selects how samples are stored in a file. The zero value is
// 16-bit integer PCM.
type SampleFormat struct {
	// BitDepth is 16, 24 or 32. Zero means 16 for PCM and 32 for float.
	BitDepth int
	// Float selects 32-bit IEEE float samples (WAV only).
	Float bool
}

func (s SampleFormat) String() string {
	if s.Float {
		return fmt.Sprintf("float%d", s.BitDepth)
	}
	return fmt.Sprintf("pcm%d", s.BitDepth)
}

// resolve fills in the default depth and rejects unsupported layouts.
func (s SampleFormat) resolve(f Format) (SampleFormat, error) {
	if s.Float {
		if s.BitDepth == 0 {
			s.BitDepth = floatBitDepth
		}
		if s.BitDepth != floatBitDepth || f != FormatWAV {
			return s, fmt.Errorf("%w: %s in %s", ErrUnsupportedEncoding, s, f)
		}
		return s, nil
	}

	if s.BitDepth == 0 {
		s.BitDepth = defaultBitDepth
	}
	if !supportedBitDepth(s.BitDepth) {
		return s, fmt.Errorf("%w: %d bit", ErrUnsupportedEncoding, s.BitDepth)
	}

	return s, nil
}

// fullScale is the magnitude of the most negative sample at bits.
func fullScale(bits int) float64 {
	return math.Ldexp(1, bits-1)
}

// fromIntBuffer deinterleaves integer PCM into a planar buffer.
func fromIntBuffer(buf *goaudio.IntBuffer, bits int) (*buffer.Audio, error) {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidFile)
	}

	scale := 1 / fullScale(bits)

	data := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = float64(v) * scale
	}

	// Drop a trailing partial frame.
	nc := buf.Format.NumChannels
	data = data[:len(data)-len(data)%nc]

	a, err := buffer.FromInterleaved(data, nc, buf.Format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return a, nil
}

// toIntBuffer interleaves a and quantizes to bits with rounding and
// clipping.
func toIntBuffer(a *buffer.Audio, bits int) *goaudio.IntBuffer {
	fs := fullScale(bits)
	lo, hi := -fs, fs-1

	src := a.Interleaved()
	data := make([]int, len(src))

	for i, v := range src {
		data[i] = int(math.Max(lo, math.Min(hi, math.Round(v*fs))))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: a.NumChannels(),
			SampleRate:  a.SampleRate,
		},
		Data:           data,
		SourceBitDepth: bits,
	}
}

// fromFloatBits deinterleaves 32-bit IEEE float samples that the WAV
// decoder delivered as their raw bit patterns.
func fromFloatBits(buf *goaudio.IntBuffer) (*buffer.Audio, error) {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil, fmt.Errorf("%w: missing format", ErrInvalidFile)
	}

	nc := buf.Format.NumChannels
	data := make([]float64, len(buf.Data)-len(buf.Data)%nc)
	for i := range data {
		data[i] = float64(math.Float32frombits(uint32(buf.Data[i])))
	}

	a, err := buffer.FromInterleaved(data, nc, buf.Format.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return a, nil
}

// toFloatBits interleaves a as float32 bit patterns for the WAV encoder,
// which writes each int as a little-endian 32-bit word. Float output is
// not clipped.
func toFloatBits(a *buffer.Audio) *goaudio.IntBuffer {
	src := a.Interleaved()
	data := make([]int, len(src))

	for i, v := range src {
		data[i] = int(int32(math.Float32bits(float32(v))))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: a.NumChannels(),
			SampleRate:  a.SampleRate,
		},
		Data:           data,
		SourceBitDepth: floatBitDepth,
	}
}

// fromInt16LE converts little-endian 16-bit interleaved bytes.
func fromInt16LE(raw []byte, channels, sampleRate int) (*buffer.Audio, error) {
	samples := len(raw) / 2
	samples -= samples % channels

	data := make([]float64, samples)
	for i := range data {
		v := int16(uint16(raw[2*i]) | uint16(raw[2*i+1])<<8)
		data[i] = float64(v) / 32768
	}

	return buffer.FromInterleaved(data, channels, sampleRate)
}

// fromFloat32 widens interleaved float32 samples.
func fromFloat32(src []float32, channels, sampleRate int) (*buffer.Audio, error) {
	n := len(src) - len(src)%channels

	data := make([]float64, n)
	for i := range data {
		data[i] = float64(src[i])
	}

	return buffer.FromInterleaved(data, channels, sampleRate)
}
