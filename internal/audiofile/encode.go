package audiofile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
)

// Write encodes a to path in f with sample layout s.
func Write(path string, a *buffer.Audio, f Format, s SampleFormat) (err error) {
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("audiofile: create: %w", err)
	}

	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return Encode(file, a, f, s)
}

// Encode writes a in f with sample layout s. Integer PCM samples outside
// [-1, 1) are clipped; float samples are written as is.
func Encode(w io.WriteSeeker, a *buffer.Audio, f Format, s SampleFormat) error {
	if !f.CanEncode() {
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}

	s, err := s.resolve(f)
	if err != nil {
		return err
	}

	if a == nil || a.NumChannels() == 0 {
		return fmt.Errorf("%w: no channels", buffer.ErrChannelCount)
	}

	if err := a.Validate(); err != nil {
		return err
	}

	var buf *goaudio.IntBuffer
	if s.Float {
		buf = toFloatBits(a)
	} else {
		buf = toIntBuffer(a, s.BitDepth)
	}

	var enc interface {
		Write(*goaudio.IntBuffer) error
		Close() error
	}

	switch f {
	case FormatWAV:
		tag := wavFormatPCM
		if s.Float {
			tag = wavFormatFloat
		}
		enc = wav.NewEncoder(w, a.SampleRate, s.BitDepth, a.NumChannels(), tag)
	case FormatAIFF:
		enc = aiff.NewEncoder(w, a.SampleRate, s.BitDepth, a.NumChannels())
	default:
		return fmt.Errorf("%w: cannot write %s", ErrUnsupportedFormat, f)
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("audiofile: encode %s: %w", f, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("audiofile: finalize %s: %w", f, err)
	}

	return nil
}
