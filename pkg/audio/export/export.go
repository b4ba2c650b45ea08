// ABOUTME: Container selection and file export entry point
// ABOUTME: Maps file extensions to WAV or FLAC writers
package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cwgen/cwgen-go/pkg/audio"
)

// Container identifies an output file format
type Container string

const (
	WAV  Container = "wav"
	FLAC Container = "flac"
)

// ContainerForPath picks the container from the file extension
func ContainerForPath(path string) (Container, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".wave":
		return WAV, nil
	case ".flac":
		return FLAC, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (supported: .wav, .flac)", ext)
	}
}

// ValidBitDepth reports whether bitDepth can be exported
func ValidBitDepth(bitDepth int) bool {
	return bitDepth == 16 || bitDepth == 24
}

// Encode writes buf to w in the given container
func Encode(w io.WriteSeeker, c Container, buf *audio.Buffer, bitDepth int) error {
	if !ValidBitDepth(bitDepth) {
		return fmt.Errorf("unsupported bit depth: %d (supported: 16, 24)", bitDepth)
	}
	if buf.SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate: %d", buf.SampleRate)
	}

	switch c {
	case WAV:
		return encodeWAV(w, buf, bitDepth)
	case FLAC:
		return encodeFLAC(w, buf, bitDepth)
	default:
		return fmt.Errorf("unsupported container: %q", c)
	}
}

// WriteFile atomically writes buf to path, choosing the container by extension
func WriteFile(path string, buf *audio.Buffer, bitDepth int) error {
	c, err := ContainerForPath(path)
	if err != nil {
		return &OutputWriteError{Path: path, Err: err}
	}
	return WriteAtomic(path, func(w io.WriteSeeker) error {
		return Encode(w, c, buf, bitDepth)
	})
}

// quantize converts float samples to integers at the given bit depth
func quantize(samples []float64, bitDepth int) []int32 {
	out := audio.FloatsTo24Bit(samples)
	if bitDepth == 16 {
		for i, v := range out {
			out[i] = int32(audio.SampleToInt16(v))
		}
	}
	return out
}
