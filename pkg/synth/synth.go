// ABOUTME: Sine tone synthesizer for keyed segments
// ABOUTME: Places segment boundaries by cumulative rounding to keep total length exact
package synth

import (
	"fmt"
	"math"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"github.com/cwgen/cwgen-go/pkg/timing"
)

const (
	DefaultSampleRate = 22050
	DefaultFrequency  = 600.0
	DefaultAmplitude  = 0.5
	// DefaultRamp is the attack/release time in seconds. It must stay below
	// timing.MinSegmentDuration.
	DefaultRamp = 0.004
)

// Synthesizer renders segments to audio
type Synthesizer struct {
	SampleRate int
	Frequency  float64 // Hz
	Amplitude  float64 // peak level in (0, 1]
	Ramp       float64 // attack/release seconds
}

// New creates a synthesizer with default amplitude and ramp
func New(sampleRate int, frequency float64) *Synthesizer {
	return &Synthesizer{
		SampleRate: sampleRate,
		Frequency:  frequency,
		Amplitude:  DefaultAmplitude,
		Ramp:       DefaultRamp,
	}
}

// Validate checks the synthesizer settings
func (s *Synthesizer) Validate() error {
	if s.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", s.SampleRate)
	}
	// Ranges are negated so NaN fails them.
	if !(s.Frequency > 0 && s.Frequency < float64(s.SampleRate)/2) {
		return fmt.Errorf("frequency %v Hz outside (0, %v)", s.Frequency, float64(s.SampleRate)/2)
	}
	if !(s.Amplitude > 0 && s.Amplitude <= 1) {
		return fmt.Errorf("amplitude %v outside (0, 1]", s.Amplitude)
	}
	if !(s.Ramp >= 0 && s.Ramp < timing.MinSegmentDuration) {
		return fmt.Errorf("ramp %vs outside [0, %v)", s.Ramp, timing.MinSegmentDuration)
	}
	return nil
}

// SampleCount returns the number of samples Render produces for segments
func (s *Synthesizer) SampleCount(segments []timing.Segment) int {
	return int(math.Round(timing.Total(segments) * float64(s.SampleRate)))
}

// Render produces a finalized buffer for segments
func (s *Synthesizer) Render(segments []timing.Segment) (*audio.Buffer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	rate := float64(s.SampleRate)
	buf := audio.NewBuffer(s.SampleRate, s.SampleCount(segments))

	step := 2 * math.Pi * s.Frequency / rate
	rampSamples := int(math.Round(s.Ramp * rate))

	var phase, elapsed float64
	start := 0
	for _, seg := range segments {
		elapsed += seg.Duration
		end := int(math.Round(elapsed * rate))
		n := end - start
		start = end

		if !seg.ToneOn {
			if err := buf.AppendSilence(n); err != nil {
				return nil, err
			}
			phase = math.Mod(phase+step*float64(n), 2*math.Pi)
			continue
		}

		ramp := rampSamples
		if ramp > n/2 {
			ramp = n / 2
		}

		samples := make([]float64, n)
		for i := range samples {
			samples[i] = s.Amplitude * envelope(i, n, ramp) * math.Sin(phase)
			phase += step
			if phase >= 2*math.Pi {
				phase -= 2 * math.Pi
			}
		}
		if err := buf.Append(samples...); err != nil {
			return nil, err
		}
	}

	buf.Finalize()
	return buf, nil
}

// envelope returns the raised-cosine gain for sample i of n with ramp-sample edges
func envelope(i, n, ramp int) float64 {
	if ramp <= 0 {
		return 1
	}
	switch {
	case i < ramp:
		return 0.5 - 0.5*math.Cos(math.Pi*float64(i)/float64(ramp))
	case i >= n-ramp:
		return 0.5 - 0.5*math.Cos(math.Pi*float64(n-1-i)/float64(ramp))
	default:
		return 1
	}
}
