// Package buffer provides the planar multi-channel sample container used
// at the boundary between file I/O and the DSP packages.
//
// Samples are float64 in nominal range [-1, 1], one slice per channel.
// DSP functions accept raw []float64; Audio only adds the channel and
// sample-rate bookkeeping around them.
package buffer
