// ABOUTME: Additive noise mixer
// ABOUTME: Adds scaled noise to every sample and clamps to [-1, 1]
package noise

import (
	"fmt"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"golang.org/x/exp/rand"
)

// Mix returns a new finalized buffer of the same length where each sample is
// clamp(x + n*level). A zero level returns an exact copy and draws nothing
// from rng.
func Mix(buf *audio.Buffer, p Profile, rng *rand.Rand) (*audio.Buffer, error) {
	if buf == nil {
		return nil, fmt.Errorf("nothing to mix: nil buffer")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	out := buf.Clone()
	if p.Level == 0 {
		out.Finalize()
		return out, nil
	}
	if rng == nil {
		return nil, fmt.Errorf("random source required for noise level %v", p.Level)
	}

	src := NewSource(p.Kind, rng)
	samples := out.Samples()
	for i, s := range samples {
		samples[i] = audio.Clamp(s + src()*p.Level)
	}

	out.Finalize()
	return out, nil
}
