// ABOUTME: Playback driver for rendered buffers
// ABOUTME: Resamples to the device rate and streams blocks to an Output
package output

import (
	"context"
	"fmt"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"github.com/cwgen/cwgen-go/pkg/audio/resample"
)

// PlayOptions control how a buffer is played
type PlayOptions struct {
	// DeviceRate is the rate the device is opened at (0 uses the buffer rate)
	DeviceRate int
	// Volume is 0-100
	Volume int
	Muted  bool
	// OnProgress is called after every block with samples played so far
	OnProgress func(played, total int)
}

// Play streams buf to out and closes out when done or when ctx is cancelled.
// Audio already queued when ctx is cancelled still plays out.
func Play(ctx context.Context, out Output, buf *audio.Buffer, opts PlayOptions) error {
	if buf == nil {
		return fmt.Errorf("nothing to play")
	}

	rate := opts.DeviceRate
	if rate <= 0 {
		rate = buf.SampleRate
	}

	if rate != buf.SampleRate {
		buf = resample.New(buf.SampleRate, rate).Buffer(buf)
	}
	samples := applyVolume(buf.Samples(), opts.Volume, opts.Muted)

	if err := out.Open(rate); err != nil {
		return fmt.Errorf("failed to open audio output: %w", err)
	}

	err := writeBlocks(ctx, out, samples, blockSize(rate), opts.OnProgress)
	if closeErr := out.Close(); err == nil && closeErr != nil {
		err = fmt.Errorf("failed to close audio output: %w", closeErr)
	}
	return err
}

// blockSize is a quarter second of audio
func blockSize(rate int) int {
	if n := rate / 4; n > 0 {
		return n
	}
	return 1
}

func writeBlocks(ctx context.Context, out Output, samples []float64, block int, progress func(int, int)) error {
	total := len(samples)
	for start := 0; start < total; start += block {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		end := start + block
		if end > total {
			end = total
		}
		if err := out.Write(samples[start:end]); err != nil {
			return fmt.Errorf("audio write failed: %w", err)
		}
		if progress != nil {
			progress(end, total)
		}
	}
	return nil
}
