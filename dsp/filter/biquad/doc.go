// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain] for higher-order Butterworth designs.
//
// Besides plain processing the package exposes the pieces needed for
// forward/backward (zero-phase) filtering: saving and restoring delay-line
// state and the steady-state state a chain settles into for a constant
// input ([Chain.SteadyState]).
//
// Coefficient design lives in dsp/filter/design/pass.
package biquad
