// ABOUTME: Morse encoder package mapping text to timing symbols
// ABOUTME: Holds the character table and the unsupported-character policy
// Package morse converts plaintext into a sequence of Morse timing symbols.
//
// Letters, digits and common punctuation are supported. Lookup is
// case-insensitive. Elements inside a character are separated by
// IntraCharGap, characters by InterCharGap and words by InterWordGap.
// No gap is emitted before the first or after the last element.
//
// Characters outside the table fail with *UnsupportedCharacterError by
// default, or are dropped when the encoder uses PolicySkip.
//
// Example:
//
//	symbols, err := morse.Encode("SOS")
//	fmt.Println(morse.Notation(symbols)) // ...---...
package morse
