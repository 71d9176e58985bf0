package core

import "math"

const defaultEpsilon = 1e-12

// DenormalThreshold is the magnitude below which filter state is flushed to zero.
const DenormalThreshold = 1e-30

// Clamp limits value to the inclusive range [lo, hi]. Swapped bounds are
// reordered. NaN is mapped to lo so it can never leak into filter state.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	switch {
	case math.IsNaN(value):
		return lo
	case value < lo:
		return lo
	case value > hi:
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps (absolute or relative).
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return false
	}

	return diff/largest <= eps
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// FlushDenormals converts tiny values to exact zero.
func FlushDenormals(x float64) float64 {
	if x > -DenormalThreshold && x < DenormalThreshold {
		return 0
	}

	return x
}

// DBToLinear converts dB to linear amplitude (20*log10 convention).
func DBToLinear(db float64) float64 {
	return math.Pow(10, db/20)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// GainToDB converts a linear magnitude to dB, never returning less than
// floorDB. Non-positive and non-finite magnitudes map to the floor.
func GainToDB(linear, floorDB float64) float64 {
	if !(linear > 0) || math.IsInf(linear, 0) {
		return floorDB
	}

	db := 20 * math.Log10(linear)
	if db < floorDB {
		return floorDB
	}

	return db
}

// Jmap maps value linearly from [srcLo, srcHi] to [dstLo, dstHi].
func Jmap(value, srcLo, srcHi, dstLo, dstHi float64) float64 {
	if srcHi == srcLo {
		return dstLo
	}

	return dstLo + (value-srcLo)*(dstHi-dstLo)/(srcHi-srcLo)
}

// MapToLog10 maps a proportion in [0, 1] onto the logarithmic range [lo, hi].
// lo and hi must be positive.
func MapToLog10(proportion, lo, hi float64) float64 {
	return math.Exp(math.Log(lo) + proportion*(math.Log(hi)-math.Log(lo)))
}

// MapFromLog10 is the inverse of MapToLog10: it returns the proportion in
// [0, 1] that value occupies on the logarithmic range [lo, hi].
func MapFromLog10(value, lo, hi float64) float64 {
	return (math.Log(value) - math.Log(lo)) / (math.Log(hi) - math.Log(lo))
}
