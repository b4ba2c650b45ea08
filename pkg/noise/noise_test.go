// ABOUTME: Tests for noise kinds, sources and the mixer
// ABOUTME: Covers ranges, exact pass-through at zero level and spectral tilt
package noise

import (
	"math"
	"testing"

	"github.com/cwgen/cwgen-go/pkg/audio"
	"golang.org/x/exp/rand"
)

func toneBuffer(n int) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.9 * math.Sin(float64(i)*0.3)
	}
	return audio.NewBufferFrom(8000, samples)
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"white", White, false},
		{"Pink", Pink, false},
		{" BROWN ", Brown, false},
		{"blue", Blue, false},
		{"violet", Violet, false},
		{"purple", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			k, err := ParseKind(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error = %v", err)
			}
			if k != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, k)
			}
		})
	}
}

func TestEveryKindHasSource(t *testing.T) {
	for _, k := range Kinds() {
		if sources[k] == nil {
			t.Errorf("%v has no source", k)
		}
		if k.String() == "" {
			t.Errorf("%d has no name", int(k))
		}
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("%v does not round-trip through ParseKind", k)
		}
	}
	if Kind(-1).Valid() || kindCount.Valid() {
		t.Error("out-of-range kinds must be invalid")
	}
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"zero", Profile{Kind: Pink, Level: 0}, false},
		{"full", Profile{Kind: White, Level: 1}, false},
		{"negative", Profile{Kind: White, Level: -0.1}, true},
		{"too loud", Profile{Kind: White, Level: 1.1}, true},
		{"nan", Profile{Kind: White, Level: math.NaN()}, true},
		{"bad kind", Profile{Kind: Kind(42), Level: 0.5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.profile.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error = %v", err)
			}
		})
	}
}

func TestSourcesBounded(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			src := NewSource(k, rand.New(rand.NewSource(5)))
			for i := 0; i < 50000; i++ {
				v := src()
				if v < -1 || v > 1 || math.IsNaN(v) {
					t.Fatalf("sample %d = %v outside [-1, 1]", i, v)
				}
			}
		})
	}
}

// lagOneCorrelation estimates the normalized autocorrelation at lag 1
func lagOneCorrelation(src Source, n int) float64 {
	xs := make([]float64, n)
	var mean float64
	for i := range xs {
		xs[i] = src()
		mean += xs[i]
	}
	mean /= float64(n)

	var num, den float64
	for i := range xs {
		d := xs[i] - mean
		den += d * d
		if i > 0 {
			num += d * (xs[i-1] - mean)
		}
	}
	return num / den
}

func TestSpectralTilt(t *testing.T) {
	const n = 100000
	corr := func(k Kind) float64 {
		return lagOneCorrelation(NewSource(k, rand.New(rand.NewSource(11))), n)
	}

	if r := corr(White); math.Abs(r) > 0.05 {
		t.Errorf("white noise should be uncorrelated, got %v", r)
	}
	if r := corr(Pink); r < 0.5 {
		t.Errorf("pink noise should favour low frequencies, got %v", r)
	}
	if r := corr(Brown); r < 0.9 {
		t.Errorf("brown noise should be strongly correlated, got %v", r)
	}
	if r := corr(Blue); r >= 0 {
		t.Errorf("blue noise should favour high frequencies, got %v", r)
	}
	if r := corr(Violet); r > -0.3 {
		t.Errorf("violet noise should favour high frequencies, got %v", r)
	}
}

func TestMixLengthAndRange(t *testing.T) {
	in := toneBuffer(20000)

	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			out, err := Mix(in, Profile{Kind: k, Level: 1}, rand.New(rand.NewSource(3)))
			if err != nil {
				t.Fatalf("Mix() failed: %v", err)
			}
			if out.Len() != in.Len() {
				t.Fatalf("expected %d samples, got %d", in.Len(), out.Len())
			}
			if !out.Finalized() {
				t.Error("expected finalized output")
			}
			if out.SampleRate != in.SampleRate {
				t.Errorf("sample rate changed to %d", out.SampleRate)
			}
			for i, v := range out.Samples() {
				if v < -1 || v > 1 {
					t.Fatalf("sample %d = %v outside [-1, 1]", i, v)
				}
			}
		})
	}
}

func TestMixZeroLevelIsExact(t *testing.T) {
	in := toneBuffer(5000)

	out, err := Mix(in, Profile{Kind: Pink, Level: 0}, nil)
	if err != nil {
		t.Fatalf("Mix() failed: %v", err)
	}
	if out.Len() != in.Len() {
		t.Fatalf("expected %d samples, got %d", in.Len(), out.Len())
	}
	for i := range in.Samples() {
		if out.Samples()[i] != in.Samples()[i] {
			t.Fatalf("sample %d changed: %v -> %v", i, in.Samples()[i], out.Samples()[i])
		}
	}
}

func TestMixDoesNotModifyInput(t *testing.T) {
	in := toneBuffer(1000)
	before := append([]float64(nil), in.Samples()...)

	if _, err := Mix(in, Profile{Kind: White, Level: 0.5}, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("Mix() failed: %v", err)
	}
	for i := range before {
		if in.Samples()[i] != before[i] {
			t.Fatalf("input sample %d modified", i)
		}
	}
}

func TestMixDeterministic(t *testing.T) {
	in := toneBuffer(2000)
	p := Profile{Kind: Pink, Level: 0.3}

	a, _ := Mix(in, p, rand.New(rand.NewSource(8)))
	b, _ := Mix(in, p, rand.New(rand.NewSource(8)))
	for i := range a.Samples() {
		if a.Samples()[i] != b.Samples()[i] {
			t.Fatalf("sample %d differs for the same seed", i)
		}
	}
}

func TestMixErrors(t *testing.T) {
	in := toneBuffer(10)
	if _, err := Mix(in, Profile{Kind: White, Level: 2}, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for level above 1")
	}
	if _, err := Mix(in, Profile{Kind: White, Level: 0.5}, nil); err == nil {
		t.Error("expected error without random source")
	}
	if _, err := Mix(nil, Profile{Kind: White, Level: 0.5}, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for nil buffer")
	}
	if _, err := Mix(nil, Profile{Kind: White}, nil); err == nil {
		t.Error("expected error for nil buffer at zero level")
	}
}
