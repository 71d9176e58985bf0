// Package design computes biquad coefficients for the equalizer bands.
//
// Second-order sections follow the RBJ Audio EQ Cookbook (Lowpass,
// Highpass, Peak). The cut filters are Butterworth cascades built from RBJ
// sections with per-section Q taken from the Butterworth pole angles, so the
// cascade is -3.01 dB at the cutoff for every order.
//
// Designers never return NaN or Inf: an out-of-range frequency, sample rate
// or Q yields identity coefficients instead.
package design
