// Package band measures how much of a signal's power falls inside a
// frequency range.
//
// Energy and Split window the whole signal (periodic Hann), take one FFT
// and sum the one-sided bin powers inside the range, normalized so a
// full-length sine of amplitude A reports A²/2 and white noise reports its
// mean square times the covered fraction of the spectrum. ToneAmplitude
// reads a single frequency with a windowed Goertzel analyzer.
//
// The results are meant for before/after comparisons of the same signal
// length, as in
//
//	before, _ := band.EnergyDB(mid, 44100, 200, 6000)
//	after, _ := band.EnergyDB(processedMid, 44100, 200, 6000)
//	reduction := before - after
package band
