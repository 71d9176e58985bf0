package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/gopxl/beep/v2"
)

const bytesPerFrame = 8 // two float32 channels

// pcmReader adapts a beep.Streamer to the interleaved float32
// little-endian byte stream an oto player pulls from.
type pcmReader struct {
	src    beep.Streamer
	frames [][2]float64
}

func newPCMReader(src beep.Streamer, maxFrames int) *pcmReader {
	return &pcmReader{src: src, frames: make([][2]float64, maxFrames)}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	n := min(len(p)/bytesPerFrame, len(r.frames))
	if n == 0 {
		return 0, nil
	}

	got, ok := r.src.Stream(r.frames[:n])
	for i, f := range r.frames[:got] {
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], math.Float32bits(float32(f[0])))
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame+4:], math.Float32bits(float32(f[1])))
	}
	if got == 0 && !ok {
		return 0, io.EOF
	}
	return got * bytesPerFrame, nil
}
