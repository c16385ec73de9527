package corpus

import (
	"strings"
	"unicode"
)

// Tokenize splits a line on every rune that is not a letter, a digit, a
// combining mark or an apostrophe. Marks are kept so Devanagari vowel
// signs and nukta stay attached to their consonants.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return !(unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsMark(r) || r == '\'')
	})
}

// IsDevanagari reports whether word contains any rune of the Devanagari block.
func IsDevanagari(word string) bool {
	for _, r := range word {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// IsRoman reports whether word is non-empty and made only of ASCII letters.
func IsRoman(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		c := word[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
