package audiofile

import (
	"path/filepath"
	"strings"
)

// Format identifies a container.
type Format int

const (
	FormatUnknown Format = iota
	FormatWAV
	FormatAIFF
	FormatMP3
	FormatVorbis
)

func (f Format) String() string {
	switch f {
	case FormatWAV:
		return "wav"
	case FormatAIFF:
		return "aiff"
	case FormatMP3:
		return "mp3"
	case FormatVorbis:
		return "vorbis"
	default:
		return "unknown"
	}
}

// CanEncode reports whether Encode supports f.
func (f Format) CanEncode() bool {
	return f == FormatWAV || f == FormatAIFF
}

// Extension returns the canonical file extension including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatWAV:
		return ".wav"
	case FormatAIFF:
		return ".aiff"
	case FormatMP3:
		return ".mp3"
	case FormatVorbis:
		return ".ogg"
	default:
		return ""
	}
}

// FormatFromPath guesses the container from the file extension.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav", ".wave":
		return FormatWAV
	case ".aif", ".aiff", ".aifc":
		return FormatAIFF
	case ".mp3":
		return FormatMP3
	case ".ogg", ".oga":
		return FormatVorbis
	default:
		return FormatUnknown
	}
}

// Info describes a decoded file.
type Info struct {
	Format     Format
	SampleRate int
	Channels   int
	// BitDepth is the sample width of the source, 16 for compressed
	// formats.
	BitDepth int
	// Float is set for IEEE float WAV sources.
	Float  bool
	Frames int
}

// SampleFormat returns the source sample layout, the default for output.
func (i Info) SampleFormat() SampleFormat {
	return SampleFormat{BitDepth: i.BitDepth, Float: i.Float}
}

// OutputFormat returns the container to write results in: the source
// container when it can be encoded, WAV otherwise.
func (i Info) OutputFormat() Format {
	if i.Format.CanEncode() {
		return i.Format
	}

	return FormatWAV
}
