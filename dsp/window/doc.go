// Package window generates the cosine-sum analysis windows used ahead of the
// spectrum analyzer's FFT.
package window
