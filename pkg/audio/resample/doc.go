// ABOUTME: Audio resampling package using linear interpolation
// ABOUTME: Converts finalized buffers between sample rates
// Package resample provides audio sample rate conversion.
//
// Uses linear interpolation for converting between sample rates.
// Handles both upsampling and downsampling. Playback uses it when the
// device runs at a different rate from the synthesized buffer.
//
// Example:
//
//	r := resample.New(22050, 48000)
//	out := r.Buffer(buf)
package resample
