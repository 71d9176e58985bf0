package analysis

// Frame is one analyzed window: FFTSize/2 magnitude bins in decibels,
// floored at the analyzer's floor.
type Frame struct {
	Bins       []float64
	FFTSize    int
	SampleRate float64
}

// NewFrame allocates a frame for an FFT of fftSize points.
func NewFrame(fftSize int) Frame {
	return Frame{
		Bins:    make([]float64, 0, fftSize/2),
		FFTSize: fftSize,
	}
}

// CopyFrame copies src into dst's storage, growing dst only when its
// capacity is too small.
func CopyFrame(dst, src *Frame) {
	dst.Bins = append(dst.Bins[:0], src.Bins...)
	dst.FFTSize = src.FFTSize
	dst.SampleRate = src.SampleRate
}

// BinWidth returns the frequency spacing of the bins in Hz.
func (f *Frame) BinWidth() float64 {
	if f.FFTSize <= 0 {
		return 0
	}
	return f.SampleRate / float64(f.FFTSize)
}

// BinFrequency returns the centre frequency of bin i in Hz.
func (f *Frame) BinFrequency(i int) float64 {
	return float64(i) * f.BinWidth()
}
