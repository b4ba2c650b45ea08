// ABOUTME: Colored noise sources
// ABOUTME: Each constructor returns a stateful sample function bounded to [-1, 1]
package noise

import (
	"math"
	"math/bits"

	"golang.org/x/exp/rand"
)

// Source yields the next noise sample in [-1, 1]
type Source func() float64

const (
	pinkRows = 16

	// brown noise leak and make-up gain
	brownLeak = 0.99
	brownGain = 8.0
)

// sources maps every Kind to its constructor
var sources = [kindCount]func(rng *rand.Rand) Source{
	White:  newWhite,
	Pink:   newPink,
	Brown:  newBrown,
	Blue:   newBlue,
	Violet: newViolet,
}

// NewSource creates a noise source of kind k
func NewSource(k Kind, rng *rand.Rand) Source {
	return sources[k](rng)
}

func newWhite(rng *rand.Rand) Source {
	return func() float64 {
		return 2*rng.Float64() - 1
	}
}

// newPink implements Voss-McCartney: row i is refreshed every 2^i samples,
// chosen by the trailing zeros of a running counter.
func newPink(rng *rand.Rand) Source {
	var rows [pinkRows]float64
	var sum float64
	for i := range rows {
		rows[i] = 2*rng.Float64() - 1
		sum += rows[i]
	}

	var counter uint32
	return func() float64 {
		counter++
		row := bits.TrailingZeros32(counter)
		if row < pinkRows {
			sum -= rows[row]
			rows[row] = 2*rng.Float64() - 1
			sum += rows[row]
		}
		white := 2*rng.Float64() - 1
		return (sum + white) / (pinkRows + 1)
	}
}

func newBrown(rng *rand.Rand) Source {
	var y float64
	return func() float64 {
		y = brownLeak*y + (1-brownLeak)*(2*rng.Float64()-1)
		return math.Max(-1, math.Min(1, y*brownGain))
	}
}

func newBlue(rng *rand.Rand) Source {
	pink := newPink(rng)
	prev := pink()
	return func() float64 {
		cur := pink()
		d := (cur - prev) / 2
		prev = cur
		return d
	}
}

func newViolet(rng *rand.Rand) Source {
	white := newWhite(rng)
	prev := white()
	return func() float64 {
		cur := white()
		d := (cur - prev) / 2
		prev = cur
		return d
	}
}
