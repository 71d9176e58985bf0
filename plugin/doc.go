// Package plugin assembles the equalizer engine a host drives.
//
// A [Store] holds the user controls and publishes them as immutable
// [eq.ChainSettings] snapshots. A [Processor] owns the left and right
// filter chains and runs on the real-time audio thread: at each block
// boundary it consumes the store's dirty flag, recomputes coefficients from
// one snapshot, filters in place and feeds the analysis FIFOs. The polling
// side reads spectrum paths through [Analysis] and draws the filter response
// with a [ResponseCurve], which owns its own chain so it never touches the
// processor's state.
//
// Logging goes through an injected logrus.FieldLogger and only happens on
// non-real-time paths.
package plugin
