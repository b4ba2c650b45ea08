// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines the sample Buffer, Format and sample conversion functions
// Package audio provides the fundamental audio types used by the CW pipeline.
//
// This package defines core types used throughout cwgen:
//   - Buffer: mono floating-point samples at a fixed sample rate, append-only
//     until finalized
//   - Format: describes an export or playback format (sample rate, channels, bit depth)
//
// It also provides utilities for converting between sample formats:
//   - float64 [-1, 1] → 24-bit int32
//   - 24-bit → 16-bit narrowing
//   - int32 ↔ packed byte conversions
//
// Example:
//
//	buf := audio.NewBuffer(22050, 0)
//	_ = buf.Append(0.0, 0.25, 0.5)
//	buf.Finalize()
//
//	sample24 := audio.SampleFromFloat(buf.Samples()[2])
package audio
