// ABOUTME: Pipeline options with defaults and validation
// ABOUTME: Rejects out-of-domain values before any synthesis starts
package cwgen

import (
	"math"

	"github.com/cwgen/cwgen-go/pkg/audio/export"
	"github.com/cwgen/cwgen-go/pkg/audio/output"
	"github.com/cwgen/cwgen-go/pkg/morse"
	"github.com/cwgen/cwgen-go/pkg/noise"
	"github.com/cwgen/cwgen-go/pkg/synth"
)

// MaxWPM keeps a nominal dit above timing.MinSegmentDuration
const MaxWPM = 200

// Options configures Generate and the outputs built on its result
type Options struct {
	// Policy decides what happens to characters with no Morse mapping
	Policy morse.Policy
	// Normalise strips diacritics before lookup
	Normalise bool

	// WPM is the initial speed in words per minute
	WPM float64
	// MinWPM and MaxWPM bound drift (0 = half and one and a half times WPM)
	MinWPM float64
	MaxWPM float64
	// StdDev is the relative standard deviation of element lengths
	StdDev float64
	// Drift is the relative per-character speed drift
	Drift float64

	// Frequency is the tone pitch in Hz
	Frequency float64
	// SampleRate is the synthesis rate in Hz
	SampleRate int

	NoiseKind  noise.Kind
	NoiseLevel float64

	// Seed drives jitter, drift and noise; equal seeds give equal output
	Seed uint64

	// BitDepth is used for file export (16 or 24)
	BitDepth int
	// Volume is the playback volume (0-100)
	Volume int
	// Backend names the playback backend ("" = output.DefaultBackend)
	Backend string
}

// DefaultOptions returns the stock configuration
func DefaultOptions() Options {
	return Options{
		WPM:        12,
		Frequency:  synth.DefaultFrequency,
		SampleRate: synth.DefaultSampleRate,
		NoiseKind:  noise.Pink,
		BitDepth:   16,
		Volume:     100,
		Backend:    output.DefaultBackend,
	}
}

// Validate returns *InvalidConfigurationError for the first bad option
func (o Options) Validate() error {
	if !finite(o.WPM) || o.WPM <= 0 || o.WPM > MaxWPM {
		return invalid("wpm", "must be in (0, %d], got %v", MaxWPM, o.WPM)
	}
	if !finite(o.MinWPM) || o.MinWPM < 0 {
		return invalid("min-wpm", "must not be negative, got %v", o.MinWPM)
	}
	if !finite(o.MaxWPM) || o.MaxWPM < 0 {
		return invalid("max-wpm", "must not be negative, got %v", o.MaxWPM)
	}
	if o.MinWPM > 0 && o.MinWPM > o.WPM {
		return invalid("min-wpm", "%v exceeds the initial speed %v", o.MinWPM, o.WPM)
	}
	if o.MaxWPM > 0 && o.MaxWPM < o.WPM {
		return invalid("max-wpm", "%v is below the initial speed %v", o.MaxWPM, o.WPM)
	}
	if !finite(o.StdDev) || o.StdDev < 0 {
		return invalid("length-standard-deviation", "must not be negative, got %v", o.StdDev)
	}
	if !finite(o.Drift) || o.Drift < 0 {
		return invalid("length-drift", "must not be negative, got %v", o.Drift)
	}
	if o.SampleRate <= 0 {
		return invalid("frame-rate", "must be positive, got %d", o.SampleRate)
	}
	nyquist := float64(o.SampleRate) / 2
	if !finite(o.Frequency) || o.Frequency <= 0 || o.Frequency >= nyquist {
		return invalid("frequency", "must be in (0, %v) Hz, got %v", nyquist, o.Frequency)
	}
	if !o.NoiseKind.Valid() {
		return invalid("noise-kind", "unknown kind %d", int(o.NoiseKind))
	}
	if !(o.NoiseLevel >= 0 && o.NoiseLevel <= 1) {
		return invalid("noise-level", "must be in [0, 1], got %v", o.NoiseLevel)
	}
	if !export.ValidBitDepth(o.BitDepth) {
		return invalid("bit-depth", "must be 16 or 24, got %d", o.BitDepth)
	}
	if o.Volume < 0 || o.Volume > 100 {
		return invalid("volume", "must be in [0, 100], got %d", o.Volume)
	}
	if o.Backend != "" && !output.ValidBackend(o.Backend) {
		return invalid("backend", "unknown backend %q", o.Backend)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
