// ABOUTME: Noise kind enumeration and profile
// ABOUTME: Parses kind names and validates mix levels
package noise

import (
	"fmt"
	"strings"
)

// Kind selects a noise color
type Kind int

const (
	White Kind = iota
	Pink
	Brown
	Blue
	Violet

	kindCount
)

var kindNames = [kindCount]string{
	White:  "white",
	Pink:   "pink",
	Brown:  "brown",
	Blue:   "blue",
	Violet: "violet",
}

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Kinds returns every supported kind
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// ParseKind converts a case-insensitive name to a Kind
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown noise kind %q (supported: %s)", name, strings.Join(kindNames[:], ", "))
}

// Profile selects the noise kind and mix level
type Profile struct {
	Kind  Kind
	Level float64 // in [0, 1]
}

// Validate checks the profile
func (p Profile) Validate() error {
	if !p.Kind.Valid() {
		return fmt.Errorf("unknown noise kind %d", int(p.Kind))
	}
	if p.Level < 0 || p.Level > 1 || p.Level != p.Level {
		return fmt.Errorf("noise level %v outside [0, 1]", p.Level)
	}
	return nil
}
