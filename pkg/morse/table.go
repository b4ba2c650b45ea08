// ABOUTME: Static Morse character table
// ABOUTME: Letters, digits, punctuation and prosign aliases
package morse

import (
	"sort"
	"unicode"
)

var table = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".",
	'f': "..-.", 'g': "--.", 'h': "....", 'i': "..", 'j': ".---",
	'k': "-.-", 'l': ".-..", 'm': "--", 'n': "-.", 'o': "---",
	'p': ".--.", 'q': "--.-", 'r': ".-.", 's': "...", 't': "-",
	'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-", 'y': "-.--",
	'z': "--..",

	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",

	'.':  ".-.-.-",
	',':  "--..--",
	'?':  "..--..",
	'\'': ".----.",
	'!':  "-.-.--",
	'/':  "-..-.",
	'(':  "-.--.",
	')':  "-.--.-",
	'&':  ".-...", // AS, wait
	':':  "---...",
	';':  "-.-.-.",
	'=':  "-...-", // BT, break
	'+':  ".-.-.", // AR, end of message
	'-':  "-....-",
	'_':  "..--.-",
	'"':  ".-..-.",
	'$':  "...-..-",
	'@':  ".--.-.",
}

var byCode = func() map[string]rune {
	m := make(map[string]rune, len(table))
	for r, code := range table {
		m[code] = r
	}
	return m
}()

// Code returns the dot-dash pattern for r
func Code(r rune) (string, bool) {
	code, ok := table[unicode.ToLower(r)]
	return code, ok
}

// Characters returns all supported characters in ascending order
func Characters() []rune {
	chars := make([]rune, 0, len(table))
	for r := range table {
		chars = append(chars, r)
	}
	sort.Slice(chars, func(i, j int) bool { return chars[i] < chars[j] })
	return chars
}

// Lookup returns the character sent as code
func Lookup(code string) (rune, bool) {
	r, ok := byCode[code]
	return r, ok
}
