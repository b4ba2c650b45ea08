// ABOUTME: Text to audio pipeline
// ABOUTME: Chains encoder, timing generator, synthesizer and noise mixer
package cwgen

import (
	"fmt"
	"io"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"github.com/cwgen/cwgen-go/pkg/audio/export"
	"github.com/cwgen/cwgen-go/pkg/morse"
	"github.com/cwgen/cwgen-go/pkg/noise"
	"github.com/cwgen/cwgen-go/pkg/synth"
	"github.com/cwgen/cwgen-go/pkg/timing"
	"golang.org/x/exp/rand"
)

// noise draws from its own stream so changing the noise settings leaves the
// timing of a given seed untouched
const noiseSeedSalt = 0x9e3779b97f4a7c15

// Mark is a character in the rendered audio
type Mark struct {
	Start float64 // seconds from the start of the buffer
	Char  rune    // ' ' for a word gap
}

// Result holds every stage of one pipeline run
type Result struct {
	Text     string
	Symbols  []morse.Symbol
	Segments []timing.Segment
	Marks    []Mark
	Buffer   *audio.Buffer
	Options  Options
}

// Generate runs the pipeline on text. The same text, options and seed always
// produce the same result.
func Generate(text string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	enc := morse.Encoder{Policy: opts.Policy, Normalise: opts.Normalise}
	symbols, err := enc.Encode(text)
	if err != nil {
		return nil, err
	}

	gen, err := timing.NewGenerator(timing.Params{
		WPM:    opts.WPM,
		MinWPM: opts.MinWPM,
		MaxWPM: opts.MaxWPM,
		StdDev: opts.StdDev,
		Drift:  opts.Drift,
	}, rand.New(rand.NewSource(opts.Seed)))
	if err != nil {
		return nil, fmt.Errorf("failed to create timing generator: %w", err)
	}
	segments := gen.Generate(symbols)

	tone, err := synth.New(opts.SampleRate, opts.Frequency).Render(segments)
	if err != nil {
		return nil, fmt.Errorf("failed to render tone: %w", err)
	}

	profile := noise.Profile{Kind: opts.NoiseKind, Level: opts.NoiseLevel}
	buf, err := noise.Mix(tone, profile, rand.New(rand.NewSource(opts.Seed^noiseSeedSalt)))
	if err != nil {
		return nil, fmt.Errorf("failed to mix noise: %w", err)
	}

	return &Result{
		Text:     text,
		Symbols:  symbols,
		Segments: segments,
		Marks:    marks(segments),
		Buffer:   buf,
		Options:  opts,
	}, nil
}

// Duration returns the length of the rendered audio in seconds
func (r *Result) Duration() float64 {
	return timing.Total(r.Segments)
}

// MarkAt returns the index of the mark being sent at t seconds, or -1 before
// the first one
func (r *Result) MarkAt(t float64) int {
	idx := -1
	for i, m := range r.Marks {
		if m.Start > t {
			break
		}
		idx = i
	}
	return idx
}

// WriteAudio writes the buffer to path as WAV or FLAC, chosen by extension
func (r *Result) WriteAudio(path string, bitDepth int) error {
	return export.WriteFile(path, r.Buffer, bitDepth)
}

// WriteCSV writes the segment timing table to path
func (r *Result) WriteCSV(path string) error {
	return export.WriteAtomic(path, func(w io.WriteSeeker) error {
		return timing.WriteCSV(w, r.Segments)
	})
}

// marks recovers the sent characters from the segments
func marks(segments []timing.Segment) []Mark {
	var (
		out   []Mark
		code  []byte
		start float64
		t     float64
	)

	flush := func() {
		if len(code) == 0 {
			return
		}
		if r, ok := morse.Lookup(string(code)); ok {
			out = append(out, Mark{Start: start, Char: r})
		}
		code = code[:0]
	}

	for _, seg := range segments {
		switch seg.Symbol {
		case morse.Dit, morse.Dah:
			if len(code) == 0 {
				start = t
			}
			if seg.Symbol == morse.Dit {
				code = append(code, '.')
			} else {
				code = append(code, '-')
			}
		case morse.InterCharGap:
			flush()
		case morse.InterWordGap:
			flush()
			out = append(out, Mark{Start: t, Char: ' '})
		}
		t += seg.Duration
	}
	flush()

	return out
}
