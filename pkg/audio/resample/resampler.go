// ABOUTME: Simple linear resampler for converting audio sample rates
// ABOUTME: Works on mono float samples and whole buffers
package resample

import (
	"math"

	"github.com/cwgen/cwgen-go/pkg/audio"
)

// Resampler performs linear interpolation to convert between sample rates
type Resampler struct {
	inputRate  int
	outputRate int
	ratio      float64
}

// New creates a new resampler
func New(inputRate, outputRate int) *Resampler {
	return &Resampler{
		inputRate:  inputRate,
		outputRate: outputRate,
		ratio:      float64(inputRate) / float64(outputRate),
	}
}

// OutputSamplesNeeded calculates how many output samples Resample produces
// for the given number of input samples
func (r *Resampler) OutputSamplesNeeded(inputSamples int) int {
	return int(math.Round(float64(inputSamples) / r.ratio))
}

// Resample converts input samples to the output rate. The last input sample
// is held for positions past the end so the full duration is preserved.
func (r *Resampler) Resample(input []float64) []float64 {
	if len(input) == 0 {
		return nil
	}
	if r.inputRate == r.outputRate {
		out := make([]float64, len(input))
		copy(out, input)
		return out
	}

	output := make([]float64, r.OutputSamplesNeeded(len(input)))
	last := len(input) - 1

	for i := range output {
		pos := float64(i) * r.ratio
		idx := int(pos)
		if idx >= last {
			output[i] = input[last]
			continue
		}

		// Linear interpolation
		frac := pos - float64(idx)
		output[i] = input[idx]*(1.0-frac) + input[idx+1]*frac
	}

	return output
}

// Buffer resamples a whole buffer into a new finalized buffer at the output rate
func (r *Resampler) Buffer(buf *audio.Buffer) *audio.Buffer {
	return audio.NewBufferFrom(r.outputRate, r.Resample(buf.Samples()))
}
