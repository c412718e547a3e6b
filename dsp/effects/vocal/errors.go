package vocal

import (
	"errors"

	"github.com/cwbudde/algo-msvocal/dsp/buffer"
)

// Errors returned by Process. Each is fatal for the call; recoverable
// parameter problems (inverted or collapsed band) are corrected silently
// and only noted in the Report.
var (
	ErrUnsupportedChannelCount = errors.New("vocal: input must have 1 or 2 channels")
	ErrEmptyInput              = errors.New("vocal: input has no frames")
	ErrFilterDesign            = errors.New("vocal: band filter design failed")
	ErrInvalidSampleRate       = errors.New("vocal: sample rate must be positive")
	ErrInvalidParams           = errors.New("vocal: parameters must be finite")
)

// Reason returns a short stable identifier for err suitable for user-facing
// messages, logs and exit codes. It returns "" for nil and "internal" for
// errors not produced by this package.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedChannelCount):
		return "unsupported_channel_count"
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrFilterDesign):
		return "filter_design"
	case errors.Is(err, ErrInvalidSampleRate):
		return "invalid_sample_rate"
	case errors.Is(err, ErrInvalidParams):
		return "invalid_params"
	case errors.Is(err, buffer.ErrRaggedChannels):
		return "ragged_channels"
	default:
		return "internal"
	}
}
