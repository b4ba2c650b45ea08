// ABOUTME: Tests for CSV timing export
// ABOUTME: Verifies header and millisecond rows
package timing

import (
	"bytes"
	"testing"

	"github.com/cwgen/cwgen-go/pkg/morse"
)

func TestWriteCSV(t *testing.T) {
	gen, _ := NewGenerator(Params{WPM: 20}, nil)
	symbols, _ := morse.Encode("et")
	segments := gen.Generate(symbols)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, segments); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}

	expected := "On,Duration\nTrue,60\nFalse,180\nTrue,180\n"
	if buf.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, buf.String())
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() failed: %v", err)
	}
	if buf.String() != "On,Duration\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}
