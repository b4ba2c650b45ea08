// ABOUTME: High-level cwgen library API
// ABOUTME: Runs the whole text to audio pipeline behind one call
// Package cwgen turns plaintext into a synthesized Morse code (CW) recording.
//
// This is the main entry point for most library users. Generate runs the
// full pipeline:
//   - morse: text to symbols
//   - timing: symbols to segments with jitter and drift
//   - synth: segments to a continuous-phase tone
//   - noise: additive background noise
//
// The result can be written to WAV or FLAC, exported as a timing CSV, or
// played on an audio device. For lower-level control, see the morse, timing,
// synth, noise and audio packages.
//
// Example:
//
//	opts := cwgen.DefaultOptions()
//	opts.WPM = 20
//	opts.NoiseLevel = 0.1
//	res, err := cwgen.Generate("CQ CQ DE TEST", opts)
//	err = res.WriteAudio("cq.wav", 16)
//	err = cwgen.Play(ctx, res, cwgen.PlayConfig{Volume: 80})
package cwgen
