// Package zerophase runs a biquad cascade forward and backward over a whole
// signal so the result has no phase shift and twice the magnitude response
// in dB.
//
// Edges are handled the usual offline way: the signal is extended at both
// ends by an odd (point-reflected) copy of itself, and each pass starts
// from the cascade's steady state for the first sample it sees. A filter
// whose passband covers the signal content therefore returns it nearly
// unchanged, including at the first and last samples. The extension is at
// least the customary 3·(2·sections+1) samples and is lengthened until the
// slowest pole's start-up transient has died out.
package zerophase
