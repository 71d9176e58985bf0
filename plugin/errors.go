package plugin

import "errors"

var (
	// ErrUnknownParameter is returned for control IDs the store does not know.
	ErrUnknownParameter = errors.New("plugin: unknown parameter")
	// ErrInvalidValue is returned for NaN or infinite control values.
	ErrInvalidValue = errors.New("plugin: invalid parameter value")
	// ErrInvalidSampleRate is returned by Prepare for non-positive or
	// non-finite sample rates.
	ErrInvalidSampleRate = errors.New("plugin: invalid sample rate")
	// ErrInvalidBlockSize is returned by Prepare for non-positive block sizes.
	ErrInvalidBlockSize = errors.New("plugin: invalid block size")
)
