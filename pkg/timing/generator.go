// ABOUTME: Stateful timing generator with jitter and drift
// ABOUTME: Carries the drifting speed across the symbol sequence
package timing

import (
	"fmt"
	"math"

	"github.com/cwgen/cwgen-go/pkg/morse"
	"golang.org/x/exp/rand"
)

// Drift bounds relative to the initial speed when MinWPM/MaxWPM are unset
const (
	DefaultMinWPMRatio = 0.5
	DefaultMaxWPMRatio = 1.5
)

// Params configures a Generator
type Params struct {
	WPM    float64 // initial speed
	MinWPM float64 // lower drift bound, 0 = WPM*DefaultMinWPMRatio
	MaxWPM float64 // upper drift bound, 0 = WPM*DefaultMaxWPMRatio
	StdDev float64 // jitter standard deviation relative to the nominal length
	Drift  float64 // per-character speed drift
}

// Generator turns symbols into segments. It is not safe for concurrent use.
type Generator struct {
	params Params
	minWPM float64
	maxWPM float64
	wpm    float64
	rng    *rand.Rand
}

// NewGenerator creates a generator. rng may be nil when StdDev and Drift are zero.
func NewGenerator(p Params, rng *rand.Rand) (*Generator, error) {
	if p.WPM <= 0 || !finite(p.WPM) {
		return nil, fmt.Errorf("wpm must be positive, got %v", p.WPM)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"length standard deviation", p.StdDev},
		{"length drift", p.Drift},
		{"min wpm", p.MinWPM},
		{"max wpm", p.MaxWPM},
	} {
		if !finite(f.v) {
			return nil, fmt.Errorf("%s must be finite, got %v", f.name, f.v)
		}
	}
	if p.StdDev < 0 {
		return nil, fmt.Errorf("length standard deviation must not be negative, got %v", p.StdDev)
	}
	if p.Drift < 0 {
		return nil, fmt.Errorf("length drift must not be negative, got %v", p.Drift)
	}
	if rng == nil && (p.StdDev > 0 || p.Drift > 0) {
		return nil, fmt.Errorf("random source required for jitter or drift")
	}

	minWPM := p.MinWPM
	if minWPM <= 0 {
		minWPM = p.WPM * DefaultMinWPMRatio
	}
	maxWPM := p.MaxWPM
	if maxWPM <= 0 {
		maxWPM = p.WPM * DefaultMaxWPMRatio
	}
	if minWPM > maxWPM {
		return nil, fmt.Errorf("min wpm %v exceeds max wpm %v", minWPM, maxWPM)
	}

	return &Generator{
		params: p,
		minWPM: minWPM,
		maxWPM: maxWPM,
		wpm:    p.WPM,
		rng:    rng,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// WPM returns the current, possibly drifted, speed
func (g *Generator) WPM() float64 {
	return g.wpm
}

// Reset restores the initial speed
func (g *Generator) Reset() {
	g.wpm = g.params.WPM
}

// Generate converts symbols to segments. Drift is applied after each
// completed character and persists across calls.
func (g *Generator) Generate(symbols []morse.Symbol) []Segment {
	segments := make([]Segment, 0, len(symbols))

	for _, sym := range symbols {
		if sym == morse.InterCharGap || sym == morse.InterWordGap {
			g.drift()
		}

		nominal := UnitDuration(g.wpm) * float64(sym.Units())
		duration := nominal * g.jitter()
		if duration < MinSegmentDuration {
			duration = MinSegmentDuration
		}

		segments = append(segments, Segment{
			ToneOn:   sym.ToneOn(),
			Duration: duration,
			Symbol:   sym,
		})
	}

	return segments
}

// jitter returns 1 + N(0, σ) clamped to [1-σ, 1+σ]
func (g *Generator) jitter() float64 {
	sigma := g.params.StdDev
	if sigma == 0 {
		return 1
	}
	return 1 + clamp(g.rng.NormFloat64()*sigma, -sigma, sigma)
}

// drift scales the speed by N(1, δ) clamped to [1-δ, 1+δ], within the wpm bounds
func (g *Generator) drift() {
	delta := g.params.Drift
	if delta == 0 {
		return
	}
	factor := clamp(1+g.rng.NormFloat64()*delta, 1-delta, 1+delta)
	g.wpm = clamp(g.wpm*factor, g.minWPM, g.maxWPM)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
