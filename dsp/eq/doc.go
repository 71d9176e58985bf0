// Package eq assembles the equalizer's per-channel filter chain: a low-cut
// Butterworth cascade, one RBJ peaking band and a high-cut Butterworth
// cascade, processed in that order.
//
// [ChainSettings] is the plain-value snapshot of every user control. The
// coefficient factory ([MakePeakFilter], [MakeLowCutFilter],
// [MakeHighCutFilter]) turns a snapshot into coefficients, clamping every
// input first so NaN or Inf can never reach filter state. [ChannelChain]
// owns the filters for one channel; [ChannelChain.UpdateAll] retunes it
// in place without touching delay lines and without allocating.
package eq
