//go:build !amd64 || purego

package biquad

import (
	_ "github.com/cwbudde/algo-simpleeq/dsp/filter/biquad/internal/arch/generic"
)
