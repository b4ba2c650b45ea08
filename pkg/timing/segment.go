// ABOUTME: Segment type and helpers
// ABOUTME: A keyed or silent span of time with its source symbol
package timing

import "github.com/cwgen/cwgen-go/pkg/morse"

// MinSegmentDuration is the shortest segment the generator produces, in seconds
const MinSegmentDuration = 0.005

// Segment is a span of tone or silence
type Segment struct {
	ToneOn   bool
	Duration float64 // seconds
	Symbol   morse.Symbol
}

// UnitDuration returns the dit length in seconds for the given speed
func UnitDuration(wpm float64) float64 {
	return 1.2 / wpm
}

// Total returns the summed duration of segments in seconds
func Total(segments []Segment) float64 {
	var total float64
	for _, s := range segments {
		total += s.Duration
	}
	return total
}
