// Package loudness measures programme loudness after ITU-R BS.1770 / EBU R128.
//
// Each channel is K-weighted (a high shelf followed by a high-pass),
// squared and averaged over 400 ms blocks with 75 % overlap. Integrated
// loudness gates those blocks at -70 LUFS absolute and 10 LU below the
// ungated mean. Left and right carry unit weight; surround weights are not
// applied.
package loudness
