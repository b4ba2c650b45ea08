//go:build portaudio

// ABOUTME: PortAudio output implementation
// ABOUTME: Cross-platform audio output using PortAudio blocking I/O
package output

import (
	"fmt"
	"log"

	"github.com/gordonklaus/portaudio"
)

const portAudioFrames = 1024

// PortAudio output implementation
type PortAudio struct {
	stream *portaudio.Stream
	buffer []float32
}

// NewPortAudio creates a new PortAudio output
func NewPortAudio() Output {
	return &PortAudio{}
}

// Open initializes PortAudio
func (p *PortAudio) Open(sampleRate int) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize portaudio: %w", err)
	}

	p.buffer = make([]float32, portAudioFrames)
	stream, err := portaudio.OpenDefaultStream(0, 1, float64(sampleRate), len(p.buffer), &p.buffer)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("failed to open stream: %w", err)
	}

	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("failed to start stream: %w", err)
	}

	p.stream = stream
	log.Printf("Audio output initialized: %dHz mono (portaudio)", sampleRate)
	return nil
}

// Write outputs audio samples one device buffer at a time
func (p *PortAudio) Write(samples []float64) error {
	if p.stream == nil {
		return fmt.Errorf("output not opened")
	}

	for start := 0; start < len(samples); start += len(p.buffer) {
		n := copy32(p.buffer, samples[start:])
		for i := n; i < len(p.buffer); i++ {
			p.buffer[i] = 0
		}
		if err := p.stream.Write(); err != nil {
			return fmt.Errorf("portaudio write failed: %w", err)
		}
	}

	return nil
}

// Close releases resources
func (p *PortAudio) Close() error {
	if p.stream != nil {
		if err := p.stream.Stop(); err != nil {
			return err
		}
		if err := p.stream.Close(); err != nil {
			return err
		}
		p.stream = nil
	}
	return portaudio.Terminate()
}

func copy32(dst []float32, src []float64) int {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	for i := 0; i < n; i++ {
		dst[i] = float32(src[i])
	}
	return n
}
