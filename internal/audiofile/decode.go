package audiofile

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
)

// WAV format tags.
const (
	wavFormatPCM   = 1
	wavFormatFloat = 3
)

// Read decodes the file at path. The container is chosen by extension.
func Read(path string) (*buffer.Audio, Info, error) {
	f := FormatFromPath(path)
	if f == FormatUnknown {
		return nil, Info{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, Info{}, fmt.Errorf("audiofile: open: %w", err)
	}
	defer file.Close()

	return Decode(file, f)
}

// Decode reads a whole stream of the given container.
func Decode(r io.ReadSeeker, f Format) (*buffer.Audio, Info, error) {
	var (
		a    *buffer.Audio
		bits = defaultBitDepth
		fp   bool
		err  error
	)

	switch f {
	case FormatWAV:
		a, bits, fp, err = decodeWAV(r)
	case FormatAIFF:
		a, bits, err = decodeAIFF(r)
	case FormatMP3:
		a, err = decodeMP3(r)
	case FormatVorbis:
		a, err = decodeVorbis(r)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
	}

	if err != nil {
		return nil, Info{}, err
	}

	return a, Info{
		Format:     f,
		SampleRate: a.SampleRate,
		Channels:   a.NumChannels(),
		BitDepth:   bits,
		Float:      fp,
		Frames:     a.Frames(),
	}, nil
}

func decodeWAV(r io.ReadSeeker) (*buffer.Audio, int, bool, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, false, fmt.Errorf("%w: not a WAV file", ErrInvalidFile)
	}

	dec.ReadInfo()

	bits := int(dec.BitDepth)

	switch dec.WavAudioFormat {
	case wavFormatPCM:
		if !supportedBitDepth(bits) {
			return nil, 0, false, fmt.Errorf("%w: %d-bit WAV", ErrUnsupportedEncoding, bits)
		}
	case wavFormatFloat:
		if bits != floatBitDepth {
			return nil, 0, false, fmt.Errorf("%w: %d-bit float WAV", ErrUnsupportedEncoding, bits)
		}
	default:
		return nil, 0, false, fmt.Errorf("%w: WAV format tag %d", ErrUnsupportedEncoding, dec.WavAudioFormat)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, false, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if dec.WavAudioFormat == wavFormatFloat {
		a, err := fromFloatBits(buf)
		return a, bits, true, err
	}

	a, err := fromIntBuffer(buf, bits)

	return a, bits, false, err
}

func decodeAIFF(r io.ReadSeeker) (*buffer.Audio, int, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, fmt.Errorf("%w: not an AIFF file", ErrInvalidFile)
	}

	dec.ReadInfo()

	bits := int(dec.BitDepth)
	if !supportedBitDepth(bits) {
		return nil, 0, fmt.Errorf("%w: %d-bit AIFF", ErrUnsupportedEncoding, bits)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	a, err := fromIntBuffer(buf, bits)

	return a, bits, err
}

// go-mp3 always yields 16-bit little-endian stereo.
func decodeMP3(r io.Reader) (*buffer.Audio, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	return fromInt16LE(raw, 2, dec.SampleRate())
}

func decodeVorbis(r io.Reader) (*buffer.Audio, error) {
	data, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	if format.Channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidFile, format.Channels)
	}

	return fromFloat32(data, format.Channels, format.SampleRate)
}
