// ABOUTME: Audio output tests
// ABOUTME: Covers backend selection, volume and the playback driver
package output

import (
	"context"
	"errors"
	"testing"

	"github.com/cwgen/cwgen-go/pkg/audio"
)

func TestBackendsImplementOutput(t *testing.T) {
	var _ Output = (*Oto)(nil)
	var _ Output = (*Malgo)(nil)
	var _ Output = (*PortAudio)(nil)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"", false},
		{"oto", false},
		{"MALGO", false},
		{"portaudio", false},
		{"alsa", true},
	}

	for _, tt := range tests {
		out, err := New(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("New(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("New(%q): unexpected error: %v", tt.name, err)
		}
		if out == nil {
			t.Errorf("New(%q) returned nil", tt.name)
		}
	}
}

func TestBackends(t *testing.T) {
	got := Backends()
	want := []string{"malgo", "oto", "portaudio"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
	if !ValidBackend("Oto") || ValidBackend("pulse") {
		t.Error("ValidBackend mismatch")
	}
}

func TestVolumeMultiplier(t *testing.T) {
	tests := []struct {
		volume   int
		muted    bool
		expected float64
	}{
		{100, false, 1.0},
		{50, false, 0.5},
		{0, false, 0.0},
		{150, false, 1.0},
		{-5, false, 0.0},
		{80, true, 0.0}, // Muted overrides volume
	}

	for _, tt := range tests {
		result := getVolumeMultiplier(tt.volume, tt.muted)
		if result != tt.expected {
			t.Errorf("volume=%d, muted=%v: expected %f, got %f",
				tt.volume, tt.muted, tt.expected, result)
		}
	}
}

func TestApplyVolume(t *testing.T) {
	samples := []float64{0.5, -0.5, 0.25, -0.25}

	result := applyVolume(samples, 50, false)

	if result[0] != 0.25 {
		t.Errorf("expected 0.25, got %f", result[0])
	}
	if result[1] != -0.25 {
		t.Errorf("expected -0.25, got %f", result[1])
	}
	if samples[0] != 0.5 {
		t.Error("input samples were modified")
	}
}

type fakeOutput struct {
	rate     int
	written  []float64
	writes   int
	closed   bool
	failOpen bool
	onWrite  func()
}

func (f *fakeOutput) Open(sampleRate int) error {
	if f.failOpen {
		return errors.New("no device")
	}
	f.rate = sampleRate
	return nil
}

func (f *fakeOutput) Write(samples []float64) error {
	f.written = append(f.written, samples...)
	f.writes++
	if f.onWrite != nil {
		f.onWrite()
	}
	return nil
}

func (f *fakeOutput) Close() error {
	f.closed = true
	return nil
}

func testBuffer(rate, n int) *audio.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5
	}
	return audio.NewBufferFrom(rate, samples)
}

func TestPlayWritesAllSamples(t *testing.T) {
	out := &fakeOutput{}
	buf := testBuffer(8000, 5000)

	var lastPlayed, lastTotal int
	err := Play(context.Background(), out, buf, PlayOptions{
		Volume: 100,
		OnProgress: func(played, total int) {
			lastPlayed, lastTotal = played, total
		},
	})
	if err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if out.rate != 8000 {
		t.Errorf("expected device rate 8000, got %d", out.rate)
	}
	if len(out.written) != 5000 {
		t.Errorf("expected 5000 samples, got %d", len(out.written))
	}
	// 2000-sample blocks
	if out.writes != 3 {
		t.Errorf("expected 3 writes, got %d", out.writes)
	}
	if lastPlayed != 5000 || lastTotal != 5000 {
		t.Errorf("expected final progress 5000/5000, got %d/%d", lastPlayed, lastTotal)
	}
	if !out.closed {
		t.Error("output was not closed")
	}
}

func TestPlayResamples(t *testing.T) {
	out := &fakeOutput{}
	buf := testBuffer(22050, 22050)

	if err := Play(context.Background(), out, buf, PlayOptions{DeviceRate: 44100, Volume: 100}); err != nil {
		t.Fatalf("Play failed: %v", err)
	}

	if out.rate != 44100 {
		t.Errorf("expected device rate 44100, got %d", out.rate)
	}
	if len(out.written) != 44100 {
		t.Errorf("expected 44100 samples, got %d", len(out.written))
	}
}

func TestPlayAppliesVolume(t *testing.T) {
	out := &fakeOutput{}
	buf := testBuffer(8000, 100)

	if err := Play(context.Background(), out, buf, PlayOptions{Muted: true, Volume: 100}); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	for i, s := range out.written {
		if s != 0 {
			t.Fatalf("sample %d: expected silence, got %f", i, s)
		}
	}
}

func TestPlayCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := &fakeOutput{onWrite: cancel}
	buf := testBuffer(8000, 8000)

	err := Play(ctx, out, buf, PlayOptions{Volume: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.writes != 1 {
		t.Errorf("expected 1 write before cancel, got %d", out.writes)
	}
	if !out.closed {
		t.Error("output was not closed after cancel")
	}
}

func TestPlayOpenError(t *testing.T) {
	out := &fakeOutput{failOpen: true}
	if err := Play(context.Background(), out, testBuffer(8000, 10), PlayOptions{}); err == nil {
		t.Fatal("expected open error")
	}
	if err := Play(context.Background(), out, nil, PlayOptions{}); err == nil {
		t.Fatal("expected error for nil buffer")
	}
}

func TestRingBuffer(t *testing.T) {
	rb := NewRingBuffer(4)

	if n := rb.Write([]float64{1, 2, 3, 4, 5}); n != 4 {
		t.Fatalf("expected 4 written, got %d", n)
	}
	if rb.Free() != 0 {
		t.Errorf("expected full buffer, free=%d", rb.Free())
	}

	out := make([]float64, 6)
	if n := rb.Read(out); n != 4 {
		t.Fatalf("expected 4 read, got %d", n)
	}
	want := []float64{1, 2, 3, 4, 0, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Errorf("index %d: expected %f, got %f", i, want[i], out[i])
		}
	}
	if rb.Available() != 0 {
		t.Errorf("expected empty buffer, available=%d", rb.Available())
	}
}
