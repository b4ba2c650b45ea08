// ABOUTME: Noise mixer package adding colored noise to a sample buffer
// ABOUTME: White, pink, brown, blue and violet sources in a closed table
// Package noise generates colored noise and mixes it into a buffer.
//
// The set of kinds is closed. Each Kind indexes a fixed table of source
// constructors, and every source yields samples in [-1, 1]. Mixed output is
// clamped to [-1, 1]; clamping is the saturation policy, not an error.
//
// Example:
//
//	out, err := noise.Mix(buf, noise.Profile{Kind: noise.Pink, Level: 0.2}, rng)
package noise
