// Package analysis turns post-filter audio into spectrum curves for display.
//
// The pipeline crosses threads exactly once. On the audio thread a
// [SampleFifo] slices host buffers of any size into fixed-size blocks and
// pushes them into a relay. Everything else runs on the polling goroutine:
// an [Analyzer] keeps a sliding history of the newest FFT-size samples,
// windows and transforms it once per incoming block, and emits decibel
// [Frame]s; a [PathGenerator] maps frames onto screen-space polylines; a
// [PathProducer] chains the stages and hands the newest [Path] to the
// renderer.
package analysis
