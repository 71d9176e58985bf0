package window

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeBlackmanHarris4Term
)

func (t Type) String() string {
	switch t {
	case TypeRectangular:
		return "rectangular"
	case TypeHann:
		return "hann"
	case TypeBlackmanHarris4Term:
		return "blackman-harris"
	default:
		return "unknown"
	}
}

// Cosine-sum terms; odd terms are subtracted.
var (
	rectangularCoeffs     = []float64{1}
	hannCoeffs            = []float64{0.5, 0.5}
	blackmanHarris4Coeffs = []float64{0.35875, 0.48829, 0.14128, 0.01168}
)

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic  bool
	normalize bool
}

// WithPeriodic selects the periodic (DFT-even) form instead of the
// symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// WithNormalize scales the window to unit mean, so a windowed full-scale
// sinusoid keeps its amplitude in the spectrum.
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Generate returns window coefficients of the given length, or nil for a
// non-positive length or an unknown type.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if err := Fill(out, t, opts...); err != nil {
		return nil
	}
	return out
}

// Fill writes the window into dst without allocating.
func Fill(dst []float64, t Type, opts ...Option) error {
	if err := validateLength(len(dst)); err != nil {
		return err
	}

	coeffs, ok := cosineTerms(t)
	if !ok {
		return errUnknownType
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	sum := 0.0
	for i := range dst {
		dst[i] = cosineSum(samplePosition(i, len(dst), cfg.periodic), coeffs)
		sum += dst[i]
	}

	if cfg.normalize && sum != 0 {
		scale := float64(len(dst)) / sum
		for i := range dst {
			dst[i] *= scale
		}
	}

	return nil
}

// Apply multiplies samples in place by coeffs.
func Apply(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

// CoherentGain returns the mean of the coefficients.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}

func cosineTerms(t Type) ([]float64, bool) {
	switch t {
	case TypeRectangular:
		return rectangularCoeffs, true
	case TypeHann:
		return hannCoeffs, true
	case TypeBlackmanHarris4Term:
		return blackmanHarris4Coeffs, true
	default:
		return nil, false
	}
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	sign := 1.0
	for k, c := range coeffs {
		sum += sign * c * math.Cos(float64(k)*phase)
		sign = -sign
	}
	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}

	return float64(n) / den
}
