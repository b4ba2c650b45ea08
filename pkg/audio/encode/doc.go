// ABOUTME: Audio encoder package for encoding float samples to PCM bytes
// ABOUTME: Provides the Encoder interface and a little-endian PCM implementation
// Package encode provides raw PCM encoding for playback backends.
//
// Supports: PCM (16-bit and 24-bit, little-endian, signed)
//
// Encoders accept float samples in [-1, 1]; out-of-range samples are
// clamped before quantization.
//
// Example:
//
//	encoder, err := encode.NewPCM(buf.Format(16))
//	data, err := encoder.Encode(buf.Samples())
package encode
