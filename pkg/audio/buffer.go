// ABOUTME: Append-only sample buffer for synthesized audio
// ABOUTME: Mutable while being built, immutable once finalized
package audio

import (
	"errors"
	"time"
)

// ErrFinalized is returned when appending to a finalized buffer
var ErrFinalized = errors.New("audio buffer is finalized")

// Buffer holds mono float samples in [-1, 1] at a fixed sample rate
type Buffer struct {
	SampleRate int

	samples   []float64
	finalized bool
}

// NewBuffer creates an empty buffer with room for capacity samples
func NewBuffer(sampleRate, capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		SampleRate: sampleRate,
		samples:    make([]float64, 0, capacity),
	}
}

// NewBufferFrom wraps existing samples in a finalized buffer
func NewBufferFrom(sampleRate int, samples []float64) *Buffer {
	return &Buffer{
		SampleRate: sampleRate,
		samples:    samples,
		finalized:  true,
	}
}

// Append adds samples to the end of the buffer
func (b *Buffer) Append(samples ...float64) error {
	if b.finalized {
		return ErrFinalized
	}
	b.samples = append(b.samples, samples...)
	return nil
}

// AppendSilence adds n zero-amplitude samples
func (b *Buffer) AppendSilence(n int) error {
	if b.finalized {
		return ErrFinalized
	}
	for i := 0; i < n; i++ {
		b.samples = append(b.samples, 0)
	}
	return nil
}

// Finalize freezes the buffer; further appends fail with ErrFinalized
func (b *Buffer) Finalize() {
	b.finalized = true
}

// Finalized reports whether the buffer has been frozen
func (b *Buffer) Finalized() bool {
	return b.finalized
}

// Samples returns the underlying samples. Callers must not modify them.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the number of samples
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Duration returns the playing time of the buffer
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(len(b.samples)) / float64(b.SampleRate) * float64(time.Second))
}

// Clone returns a mutable copy of the buffer
func (b *Buffer) Clone() *Buffer {
	samples := make([]float64, len(b.samples))
	copy(samples, b.samples)
	return &Buffer{
		SampleRate: b.SampleRate,
		samples:    samples,
	}
}

// Format returns the mono format of the buffer at the given bit depth
func (b *Buffer) Format(bitDepth int) Format {
	return Format{
		Codec:      "pcm",
		SampleRate: b.SampleRate,
		Channels:   1,
		BitDepth:   bitDepth,
	}
}
