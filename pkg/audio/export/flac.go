// ABOUTME: FLAC container writer
// ABOUTME: Encodes mono verbatim frames through mewkiz/flac
package export

import (
	"fmt"
	"io"

	"github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"
	"github.com/mewkiz/flac/meta"

	"github.com/cwgen/cwgen-go/pkg/audio"
)

const flacBlockSize = 4096

// streamWriter hides Close and Seek from the flac encoder. Without Seek the
// encoder keeps the StreamInfo written up front, whose BlockSizeMin stays
// valid when the final block is shorter than 16 samples. Close is left to
// WriteAtomic.
type streamWriter struct {
	w io.Writer
}

func (s streamWriter) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func encodeFLAC(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	samples := quantize(buf.Samples(), bitDepth)

	info := &meta.StreamInfo{
		BlockSizeMin:  16,
		BlockSizeMax:  flacBlockSize,
		SampleRate:    uint32(buf.SampleRate),
		NChannels:     1,
		BitsPerSample: uint8(bitDepth),
		NSamples:      uint64(len(samples)),
	}

	enc, err := flac.NewEncoder(streamWriter{w}, info)
	if err != nil {
		return fmt.Errorf("failed to create flac encoder: %w", err)
	}

	for start := 0; start < len(samples); start += flacBlockSize {
		end := start + flacBlockSize
		if end > len(samples) {
			end = len(samples)
		}
		block := samples[start:end]

		f := &frame.Frame{
			Header: frame.Header{
				HasFixedBlockSize: false,
				BlockSize:         uint16(len(block)),
				SampleRate:        uint32(buf.SampleRate),
				Channels:          frame.ChannelsMono,
				BitsPerSample:     uint8(bitDepth),
				Num:               uint64(start),
			},
			Subframes: []*frame.Subframe{
				{
					SubHeader: frame.SubHeader{Pred: frame.PredVerbatim},
					Samples:   block,
					NSamples:  len(block),
				},
			},
		}
		if err := enc.WriteFrame(f); err != nil {
			return fmt.Errorf("flac encode error: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flac finalize error: %w", err)
	}
	return nil
}
