// ABOUTME: High-level playback of a generated result
// ABOUTME: Opens the chosen backend and reports progress in seconds and characters
package cwgen

import (
	"context"
	"fmt"

	"github.com/cwgen/cwgen-go/pkg/audio/output"
)

// PlayConfig holds playback configuration
type PlayConfig struct {
	// Backend names the audio backend (default: output.DefaultBackend)
	Backend string

	// Output overrides Backend with a ready-made output
	Output output.Output

	// DeviceRate is the device sample rate (default: the synthesis rate)
	DeviceRate int

	// Volume is the playback volume (0-100, default: 100)
	Volume int

	// Muted silences playback without stopping it
	Muted bool

	// OnProgress is called as audio is handed to the device
	OnProgress func(Progress)
}

// Progress describes how far playback has got
type Progress struct {
	Elapsed float64 // seconds
	Total   float64 // seconds
	Mark    int     // index into Result.Marks, -1 before the first character
}

// Play sends res to an audio device and returns when it has played out or
// ctx is cancelled
func Play(ctx context.Context, res *Result, config PlayConfig) error {
	if res == nil || res.Buffer == nil {
		return fmt.Errorf("nothing to play")
	}

	// Set defaults
	if config.Volume == 0 {
		config.Volume = 100
	}

	out := config.Output
	if out == nil {
		var err error
		out, err = output.New(config.Backend)
		if err != nil {
			return err
		}
	}

	total := res.Buffer.Duration().Seconds()
	var onProgress func(played, samples int)
	if config.OnProgress != nil {
		onProgress = func(played, samples int) {
			elapsed := total
			if samples > 0 {
				elapsed = total * float64(played) / float64(samples)
			}
			config.OnProgress(Progress{
				Elapsed: elapsed,
				Total:   total,
				Mark:    res.MarkAt(elapsed),
			})
		}
	}

	return output.Play(ctx, out, res.Buffer, output.PlayOptions{
		DeviceRate: config.DeviceRate,
		Volume:     config.Volume,
		Muted:      config.Muted,
		OnProgress: onProgress,
	})
}
