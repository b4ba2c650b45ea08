// ABOUTME: Text to Morse symbol encoder
// ABOUTME: Applies gap rules, normalisation and the unsupported-character policy
package morse

import (
	"errors"
	"fmt"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrUnsupportedCharacter matches any *UnsupportedCharacterError
var ErrUnsupportedCharacter = errors.New("unsupported character")

// UnsupportedCharacterError reports a character with no Morse mapping
type UnsupportedCharacterError struct {
	Char     rune
	Position int // rune index in the input text
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("unsupported character %q at position %d", e.Char, e.Position)
}

func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}

// Policy decides what happens to characters missing from the table
type Policy int

const (
	// PolicyError fails the encode with *UnsupportedCharacterError
	PolicyError Policy = iota
	// PolicySkip drops the character without emitting any gap for it
	PolicySkip
)

func (p Policy) String() string {
	if p == PolicySkip {
		return "skip"
	}
	return "error"
}

// Encoder converts text to Morse symbols
type Encoder struct {
	Policy Policy
	// Normalise strips diacritics before lookup, so 'á' is sent as 'a'.
	// Letters with no decomposition are folded by hand, so 'ß' is sent as "ss".
	Normalise bool
}

// Encode converts text using the default encoder (PolicyError, no normalisation)
func Encode(text string) ([]Symbol, error) {
	return Encoder{}.Encode(text)
}

// Encode converts text to a symbol sequence
func (e Encoder) Encode(text string) ([]Symbol, error) {
	words, err := e.words(text)
	if err != nil {
		return nil, err
	}

	var symbols []Symbol
	for wi, word := range words {
		if wi > 0 {
			symbols = append(symbols, InterWordGap)
		}
		for ci, code := range word {
			if ci > 0 {
				symbols = append(symbols, InterCharGap)
			}
			symbols = appendCode(symbols, code)
		}
	}

	return symbols, nil
}

// words splits text into words of dot-dash codes, dropping empty words
func (e Encoder) words(text string) ([][]string, error) {
	var words [][]string
	var current []string

	flush := func() {
		if len(current) > 0 {
			words = append(words, current)
			current = nil
		}
	}

	pos := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			flush()
			pos++
			continue
		}

		codes, ok := e.lookup(r)
		if !ok {
			if e.Policy == PolicyError {
				return nil, &UnsupportedCharacterError{Char: r, Position: pos}
			}
		} else {
			current = append(current, codes...)
		}
		pos++
	}
	flush()

	return words, nil
}

// lookup maps one input rune to one or more codes
func (e Encoder) lookup(r rune) ([]string, bool) {
	if code, ok := Code(r); ok {
		return []string{code}, true
	}
	if !e.Normalise {
		return nil, false
	}

	stripped, ok := folds[unicode.ToLower(r)]
	if !ok {
		stripped = stripDiacritics(string(r))
	}
	if stripped == "" || stripped == string(r) {
		return nil, false
	}

	var codes []string
	for _, sr := range stripped {
		code, ok := Code(sr)
		if !ok {
			return nil, false
		}
		codes = append(codes, code)
	}
	return codes, true
}

// folds covers Latin letters that NFD leaves whole
var folds = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'ł': "l",
	'đ': "d",
	'ð': "d",
	'þ': "th",
	'ħ': "h",
	'ı': "i",
}

func appendCode(symbols []Symbol, code string) []Symbol {
	for i, el := range code {
		if i > 0 {
			symbols = append(symbols, IntraCharGap)
		}
		if el == '-' {
			symbols = append(symbols, Dah)
		} else {
			symbols = append(symbols, Dit)
		}
	}
	return symbols
}

func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}
