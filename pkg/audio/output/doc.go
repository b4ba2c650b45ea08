// ABOUTME: Audio output package for playing finalized buffers
// ABOUTME: Provides the Output interface, device backends and the Play driver
// Package output provides audio playback for synthesized buffers.
//
// Backends:
//   - oto: default, pure Go on most platforms
//   - malgo: miniaudio through cgo
//   - portaudio: requires building with -tags portaudio
//
// Play resamples to the device rate when needed, applies volume, and writes
// the buffer in quarter-second blocks until done or the context is cancelled.
//
// Example:
//
//	out, err := output.New("oto")
//	err = output.Play(ctx, out, buf, output.PlayOptions{Volume: 80})
package output
