package audiofile

import "errors"

var (
	// ErrUnsupportedFormat is returned for containers that are not
	// recognized or cannot be written.
	ErrUnsupportedFormat = errors.New("audiofile: unsupported format")

	// ErrInvalidFile is returned when the data does not parse as the
	// expected container.
	ErrInvalidFile = errors.New("audiofile: invalid file")

	// ErrUnsupportedEncoding is returned for sample encodings other than
	// integer PCM at 16, 24 or 32 bit.
	ErrUnsupportedEncoding = errors.New("audiofile: unsupported sample encoding")
)
