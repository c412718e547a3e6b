// Package conv provides linear convolution of real signals.
//
// Two strategies are available:
//
//   - Direct: O(N*M) time-domain convolution, used for short kernels.
//   - Overlap-add: FFT block convolution, used for long kernels such as the
//     1024-tap moving average of the vocal gate envelope.
//
// Convolve picks between them by kernel length. ConvolveMode trims the full
// result to the numpy-style "full", "same" or "valid" region:
//
//	env, err := conv.ConvolveMode(power, kernel, conv.ModeSame)
package conv
