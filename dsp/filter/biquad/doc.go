// Package biquad provides the second-order IIR section used by every band of
// the equalizer.
//
// A [Section] runs Direct Form II Transposed processing for one set of
// [Coefficients]. Coefficients are plain values: a section copies them in and
// never shares them, so the left and right channel filters can be retuned
// independently. Replacing coefficients keeps the delay line, which is what
// lets parameter changes take effect without clicks.
//
// Block processing dispatches to a kernel selected once from the detected CPU
// features. Coefficient design lives in dsp/filter/design.
package biquad
