package analysis

import "errors"

var (
	// ErrInvalidFFTOrder is returned for FFT orders other than Order2048 and Order4096.
	ErrInvalidFFTOrder = errors.New("analysis: unsupported FFT order")
	// ErrInvalidBlockSize is returned for non-positive block sizes.
	ErrInvalidBlockSize = errors.New("analysis: block size must be > 0")
	// ErrInvalidSampleRate is returned for non-positive or non-finite sample rates.
	ErrInvalidSampleRate = errors.New("analysis: sample rate must be > 0")
)
