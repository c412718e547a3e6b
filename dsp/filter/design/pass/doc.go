// Package pass designs Butterworth low-pass and band-pass filters as
// cascades of biquad sections.
//
// Designs follow the analog-prototype route: Butterworth poles on the unit
// circle, optional low-pass to band-pass transformation, and the bilinear
// transform with cutoff pre-warping. Band edges therefore land exactly at
// -3 dB in the digital domain. The returned sections run on
// [biquad.Chain] or, for zero-phase use, on dsp/filter/zerophase.
package pass
