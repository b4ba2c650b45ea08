// ABOUTME: Morse timing symbol definitions
// ABOUTME: Dit, dah and the three gap kinds with their unit lengths
package morse

import (
	"fmt"
	"strings"
)

// Symbol is one timing element of a Morse sequence
type Symbol int

const (
	Dit Symbol = iota
	Dah
	IntraCharGap
	InterCharGap
	InterWordGap
)

// Units returns the nominal length of the symbol in dit units
func (s Symbol) Units() int {
	switch s {
	case Dit, IntraCharGap:
		return 1
	case Dah, InterCharGap:
		return 3
	case InterWordGap:
		return 7
	default:
		return 0
	}
}

// ToneOn reports whether the symbol is keyed
func (s Symbol) ToneOn() bool {
	return s == Dit || s == Dah
}

func (s Symbol) String() string {
	switch s {
	case Dit:
		return "DIT"
	case Dah:
		return "DAH"
	case IntraCharGap:
		return "INTRA_CHAR_GAP"
	case InterCharGap:
		return "INTER_CHAR_GAP"
	case InterWordGap:
		return "INTER_WORD_GAP"
	default:
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
}

// Notation renders symbols as dots and dashes. Character gaps become a
// space and word gaps " / ".
func Notation(symbols []Symbol) string {
	var sb strings.Builder
	for _, s := range symbols {
		switch s {
		case Dit:
			sb.WriteByte('.')
		case Dah:
			sb.WriteByte('-')
		case InterCharGap:
			sb.WriteByte(' ')
		case InterWordGap:
			sb.WriteString(" / ")
		}
	}
	return sb.String()
}
