package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// keyPunctuation is stripped from words before they become cache keys.
const keyPunctuation = "।,;:!?-\"'()[]{}"

// StripPunctuation trims surrounding whitespace and removes the cache-key
// punctuation set. Case is preserved.
func StripPunctuation(word string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(keyPunctuation, r) {
			return -1
		}
		return r
	}, strings.TrimSpace(word))
}

// NormalizeKey turns a word into the key used by the runtime and static caches:
//   - Unicode NFC (precomposed and decomposed nukta letters share one form)
//   - punctuation from keyPunctuation removed
//   - lowercased
//   - runs of whitespace collapsed to one space, ends trimmed
//
// An empty result means the word cannot be looked up.
func NormalizeKey(word string) string {
	word = norm.NFC.String(word)
	word = strings.ToLower(StripPunctuation(word))
	return strings.Join(strings.Fields(word), " ")
}
