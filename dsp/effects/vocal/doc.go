// Package vocal implements a mid/side vocal attenuator for stereo audio.
//
// The center (mid) channel carries most lead vocals. Process isolates a
// frequency band of the mid signal with a zero-phase Butterworth band-pass,
// subtracts a scaled copy of it, and resynthesizes left/right with an
// independently scaled side channel:
//
//	mid  = (L+R)/2         side = (L-R)/2
//	mid' = mid - k(1-g)·band(mid)
//	L'   = mid' + side'    R'   = mid' - side'
//
// Near full removal (MidGainDB <= -60) the residual is further suppressed
// with a small uniform center cut and an RMS noise gate with asymmetric
// attack/release smoothing. The output is then scaled, protected against
// clipping with a uniform safety gain, and finally low-passed zero-phase
// above ProtectHighHz.
//
// Processing is offline: the whole buffer is needed up front, no state is
// kept between calls, and filters are designed fresh per call.
package vocal
