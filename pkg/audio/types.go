// ABOUTME: Audio type definitions
// ABOUTME: Defines audio formats and sample conversions
package audio

import "math"

const (
	// 24-bit audio range constants
	Max24Bit = 8388607  // 2^23 - 1
	Min24Bit = -8388608 // -2^23
)

// Format describes an export or playback format
type Format struct {
	Codec      string
	SampleRate int
	Channels   int
	BitDepth   int
}

// Clamp limits a float sample to the valid amplitude range [-1, 1]
func Clamp(sample float64) float64 {
	if sample > 1 {
		return 1
	}
	if sample < -1 {
		return -1
	}
	return sample
}

// SampleFromFloat converts a float sample in [-1, 1] to int32 in 24-bit range
func SampleFromFloat(sample float64) int32 {
	return int32(math.Round(Clamp(sample) * Max24Bit))
}

// FloatsTo24Bit converts a slice of float samples to int32 24-bit samples
func FloatsTo24Bit(samples []float64) []int32 {
	out := make([]int32, len(samples))
	for i, s := range samples {
		out[i] = SampleFromFloat(s)
	}
	return out
}

// SampleToInt16 converts int32 sample to int16 (for 16-bit playback)
func SampleToInt16(sample int32) int16 {
	// Right-shift to convert 24-bit to 16-bit range
	return int16(sample >> 8)
}

// SampleTo24Bit converts int32 to 24-bit packed bytes (little-endian)
func SampleTo24Bit(sample int32) [3]byte {
	return [3]byte{
		byte(sample),
		byte(sample >> 8),
		byte(sample >> 16),
	}
}

// SampleFrom24Bit converts 24-bit packed bytes to int32 (little-endian)
func SampleFrom24Bit(b [3]byte) int32 {
	val := int32(b[0]) | int32(b[1])<<8 | int32(b[2])<<16
	// Sign extend from 24-bit to 32-bit
	if val&0x800000 != 0 {
		val |= ^0xFFFFFF
	}
	return val
}
