// ABOUTME: Waveform synthesizer package rendering segments to samples
// ABOUTME: Continuous-phase sine keying with raised-cosine edges
// Package synth renders timing segments into a mono sample buffer.
//
// Keyed segments carry a sine tone; silent segments carry zeros. One
// oscillator runs through the whole render, so the phase never resets at a
// segment boundary. Keyed segments get a short raised-cosine attack and
// release to avoid key clicks.
//
// Example:
//
//	s := synth.New(22050, 600)
//	buf, err := s.Render(segments)
package synth
