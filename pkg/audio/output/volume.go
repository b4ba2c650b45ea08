// ABOUTME: Software volume control for playback
// ABOUTME: Scales samples with clipping protection
package output

import "github.com/cwgen/cwgen-go/pkg/audio"

// applyVolume applies volume and mute to samples with clipping protection
func applyVolume(samples []float64, volume int, muted bool) []float64 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]float64, len(samples))
	for i, sample := range samples {
		result[i] = audio.Clamp(sample * multiplier)
	}

	return result
}

// getVolumeMultiplier calculates volume multiplier
func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	return float64(volume) / 100.0
}
