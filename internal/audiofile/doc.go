// Package audiofile reads and writes audio files as planar float64 buffers.
//
// WAV and AIFF are decoded and encoded as integer PCM (16, 24 or 32 bit);
// WAV also carries 32-bit IEEE float. MP3 and Ogg Vorbis are decode only.
// Integer samples are normalized to [-1, 1).
package audiofile
