// ABOUTME: WAV container writer
// ABOUTME: Encodes mono PCM through go-audio/wav
package export

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwgen/cwgen-go/pkg/audio"
)

const wavFormatPCM = 1

func encodeWAV(w io.WriteSeeker, buf *audio.Buffer, bitDepth int) error {
	enc := wav.NewEncoder(w, buf.SampleRate, bitDepth, 1, wavFormatPCM)

	samples := quantize(buf.Samples(), bitDepth)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s)
	}

	ib := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: buf.SampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(ib); err != nil {
		return fmt.Errorf("wav encode error: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav finalize error: %w", err)
	}
	return nil
}
