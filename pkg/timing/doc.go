// ABOUTME: Timing generator package turning Morse symbols into keyed segments
// ABOUTME: Applies bounded jitter and a stateful wpm drift
// Package timing converts Morse symbols into tone-on/tone-off segments.
//
// The base unit is 1.2/wpm seconds (PARIS standard). Each segment's nominal
// length is the unit times the symbol's unit count. A Generator perturbs it
// with a bounded per-symbol jitter and a per-character speed drift whose
// state carries through the whole sequence.
//
// Example:
//
//	gen, err := timing.NewGenerator(timing.Params{WPM: 20}, rand.New(rand.NewSource(1)))
//	segments := gen.Generate(symbols)
package timing
