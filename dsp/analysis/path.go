package analysis

import (
	"math"

	"github.com/cwbudde/algo-simpleeq/dsp/core"
)

// Display frequency range of the x axis.
const (
	MinDisplayFrequency = 20.0
	MaxDisplayFrequency = 20000.0
)

// Point is one polyline vertex in screen space.
type Point struct {
	X, Y float64
}

// Rect is a screen-space area. Y grows downwards.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the y coordinate of the lower edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Path is a polyline. Its capacity is fixed by NewPath so generation never
// allocates.
type Path struct {
	Points []Point
}

// NewPath allocates room for capacity vertices.
func NewPath(capacity int) Path {
	return Path{Points: make([]Point, 0, capacity)}
}

// CopyPath copies src's vertices into dst's storage.
func CopyPath(dst, src *Path) {
	dst.Points = append(dst.Points[:0], src.Points...)
}

// Len returns the vertex count.
func (p *Path) Len() int { return len(p.Points) }

// PathGenerator maps frames onto polylines: frequency on a log axis from
// MinDisplayFrequency to MaxDisplayFrequency, level on a linear axis from
// FloorDB at the bottom to 0 dB at the top.
type PathGenerator struct {
	// Stride is the bin step between vertices.
	Stride  int
	FloorDB float64
}

// NewPathGenerator returns a generator with stride 2 and the default floor.
func NewPathGenerator() PathGenerator {
	return PathGenerator{Stride: 2, FloorDB: DefaultFloorDB}
}

// Capacity returns the most vertices Generate can emit for a frame with
// numBins bins.
func (g PathGenerator) Capacity(numBins int) int {
	return 1 + numBins/max(g.Stride, 1)
}

// Generate writes the polyline for frame into dst, replacing its contents.
// The first vertex is bin 0 at the left edge; later vertices take every
// Stride-th bin inside the display range. Non-finite levels are skipped.
// Vertices beyond dst's capacity are dropped.
func (g PathGenerator) Generate(frame *Frame, bounds Rect, dst *Path) {
	dst.Points = dst.Points[:0]
	if len(frame.Bins) == 0 || cap(dst.Points) == 0 {
		return
	}

	stride := max(g.Stride, 1)
	width := frame.BinWidth()

	if y, ok := g.level(frame.Bins[0], bounds); ok {
		dst.Points = append(dst.Points, Point{X: bounds.X, Y: y})
	}

	for bin := 1; bin < len(frame.Bins); bin += stride {
		if len(dst.Points) == cap(dst.Points) {
			return
		}

		y, ok := g.level(frame.Bins[bin], bounds)
		if !ok {
			continue
		}

		freq := float64(bin) * width
		if freq < MinDisplayFrequency || freq > MaxDisplayFrequency {
			continue
		}

		prop := core.MapFromLog10(freq, MinDisplayFrequency, MaxDisplayFrequency)
		x := bounds.X + math.Floor(prop*bounds.Width)
		dst.Points = append(dst.Points, Point{X: x, Y: y})
	}
}

func (g PathGenerator) level(db float64, bounds Rect) (float64, bool) {
	y := core.Jmap(db, g.FloorDB, 0, bounds.Bottom(), bounds.Y)
	return y, core.IsFinite(y)
}
