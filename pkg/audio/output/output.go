// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio playback backends and backend selection
package output

import (
	"fmt"
	"sort"
	"strings"
)

// Output represents an audio output device
type Output interface {
	// Open initializes the output device for mono audio at sampleRate
	Open(sampleRate int) error

	// Write queues samples in [-1, 1] for playback (blocks while the device is busy)
	Write(samples []float64) error

	// Close waits for queued audio to finish and releases output resources
	Close() error
}

// DefaultBackend is used when no backend is named
const DefaultBackend = "oto"

var backends = map[string]func() Output{
	"oto":       NewOto,
	"malgo":     NewMalgo,
	"portaudio": NewPortAudio,
}

// Backends returns the names of all backends
func Backends() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidBackend reports whether name is a known backend
func ValidBackend(name string) bool {
	_, ok := backends[strings.ToLower(name)]
	return ok
}

// New creates the named backend
func New(name string) (Output, error) {
	if name == "" {
		name = DefaultBackend
	}
	ctor, ok := backends[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown audio backend %q (supported: %s)", name, strings.Join(Backends(), ", "))
	}
	return ctor(), nil
}
