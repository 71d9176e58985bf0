package design

import (
	"math"

	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad"
)

// Sections returns how many biquads a Butterworth filter of the given order
// needs: one per conjugate pole pair plus one first-order section when the
// order is odd.
func Sections(order int) int {
	if order <= 0 {
		return 0
	}
	return (order + 1) / 2
}

// ButterworthLP designs a lowpass Butterworth cascade.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	dst := make([]biquad.Coefficients, Sections(order))
	return dst[:ButterworthLPInto(dst, freq, order, sampleRate)]
}

// ButterworthHP designs a highpass Butterworth cascade.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	dst := make([]biquad.Coefficients, Sections(order))
	return dst[:ButterworthHPInto(dst, freq, order, sampleRate)]
}

// ButterworthLPInto writes a lowpass Butterworth cascade into dst without
// allocating and returns the number of sections written. Sections beyond
// len(dst) are dropped.
func ButterworthLPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	return butterworthInto(dst, freq, order, sampleRate, Lowpass, firstOrderLP)
}

// ButterworthHPInto is the highpass counterpart of ButterworthLPInto.
func ButterworthHPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) int {
	return butterworthInto(dst, freq, order, sampleRate, Highpass, firstOrderHP)
}

func butterworthInto(
	dst []biquad.Coefficients,
	freq float64, order int, sampleRate float64,
	second func(freq, q, sampleRate float64) biquad.Coefficients,
	first func(freq, sampleRate float64) biquad.Coefficients,
) int {
	n := 0
	if order <= 0 {
		return n
	}

	// Lowest-Q pair first.
	for i := order/2 - 1; i >= 0 && n < len(dst); i-- {
		dst[n] = second(freq, butterworthQ(order, i), sampleRate)
		n++
	}

	if order%2 != 0 && n < len(dst) {
		dst[n] = first(freq, sampleRate)
		n++
	}

	return n
}

// butterworthQ returns the quality factor of pole pair index for an
// order-N Butterworth filter: 1 / (2 sin((2i+1)π / 2N)).
func butterworthQ(order, index int) float64 {
	s := math.Sin(math.Pi * float64(2*index+1) / (2 * float64(order)))
	if s == 0 {
		return defaultQ
	}

	return 1 / (2 * s)
}

func firstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Identity()
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{B0: k * norm, B1: k * norm, A1: (k - 1) * norm}
}

func firstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Identity()
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{B0: norm, B1: -norm, A1: (k - 1) * norm}
}
