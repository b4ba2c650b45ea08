// ABOUTME: Oto-based audio output implementation
// ABOUTME: Streams 16-bit PCM through a pipe into a persistent oto player
package output

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"github.com/cwgen/cwgen-go/pkg/audio/encode"
	"github.com/ebitengine/oto/v3"
)

// Oto output implementation using oto library
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	encoder    encode.Encoder
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	sampleRate int
	ready      bool
}

// NewOto creates a new Oto output
func NewOto() Output {
	return &Oto{}
}

// Open initializes the output device
func (o *Oto) Open(sampleRate int) error {
	// oto only allows one context per process
	if o.otoCtx != nil {
		if o.sampleRate != sampleRate {
			return fmt.Errorf("oto cannot change rate (%dHz -> %dHz) within one process", o.sampleRate, sampleRate)
		}
		if o.ready {
			return nil
		}
		if err := o.otoCtx.Resume(); err != nil {
			return fmt.Errorf("failed to resume oto context: %w", err)
		}
	} else {
		format := audio.Format{Codec: "pcm", SampleRate: sampleRate, Channels: 1, BitDepth: 16}
		encoder, err := encode.NewPCM(format)
		if err != nil {
			return err
		}

		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, readyChan, err := oto.NewContext(op)
		if err != nil {
			return fmt.Errorf("failed to create oto context: %w", err)
		}

		<-readyChan

		o.otoCtx = ctx
		o.encoder = encoder
		o.sampleRate = sampleRate
	}

	// Create pipe for continuous streaming
	o.pipeReader, o.pipeWriter = io.Pipe()

	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()

	o.ready = true

	log.Printf("Audio output initialized: %dHz mono (oto)", sampleRate)

	return nil
}

// Write outputs audio samples (blocks until the player has taken them)
func (o *Oto) Write(samples []float64) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	data, err := o.encoder.Encode(samples)
	if err != nil {
		return err
	}

	if _, err := o.pipeWriter.Write(data); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Close waits for buffered audio to play out and releases output resources
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		for o.player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := o.player.Close(); err != nil {
			log.Printf("Warning: oto player close error: %v", err)
		}
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		if err := o.otoCtx.Suspend(); err != nil {
			log.Printf("Warning: oto suspend error: %v", err)
		}
	}
	o.ready = false
	return nil
}
