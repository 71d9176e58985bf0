//go:build amd64 && !purego

// Package avx2 registers the wide-unrolled biquad kernel used on AVX2 CPUs.
package avx2

import (
	"github.com/cwbudde/algo-simpleeq/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "avx2",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: processBlock,
	})
}

// processBlock is a 4x-unrolled scalar kernel. The recursion is serial, so
// the gain comes from fewer bounds checks and a wider scheduling window.
func processBlock(c registry.Coefficients, d0, d1 float64, buf []float64) (newD0, newD1 float64) {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2

	n := len(buf)
	i := 0
	for ; i+3 < n; i += 4 {
		blk := buf[i : i+4 : i+4]

		y0 := b0*blk[0] + d0
		p0 := b1*blk[0] - a1*y0 + d1
		q0 := b2*blk[0] - a2*y0

		y1 := b0*blk[1] + p0
		p1 := b1*blk[1] - a1*y1 + q0
		q1 := b2*blk[1] - a2*y1

		y2 := b0*blk[2] + p1
		p2 := b1*blk[2] - a1*y2 + q1
		q2 := b2*blk[2] - a2*y2

		y3 := b0*blk[3] + p2
		d0 = b1*blk[3] - a1*y3 + q2
		d1 = b2*blk[3] - a2*y3

		blk[0], blk[1], blk[2], blk[3] = y0, y1, y2, y3
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + d0
		d0 = b1*x - a1*y + d1
		d1 = b2*x - a2*y
		buf[i] = y
	}

	return d0, d1
}
