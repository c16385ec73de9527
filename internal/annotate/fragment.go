package annotate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/nazm-backend/internal/domain"
	"github.com/heartmarshall/nazm-backend/internal/glossary"
)

// Kind tags a Fragment.
type Kind string

const (
	KindPlain       Kind = "plain"
	KindTranslation Kind = "translation"
	KindLookup      Kind = "lookup"
)

// Fragment is one renderable piece of a line.
//   - plain: text rendered as is (whitespace, punctuation, gaps)
//   - translation: a glossary match with its meaning
//   - lookup: a word whose meaning is fetched when the reader asks for it
//
// Word is set on lookup fragments and holds the normalized key to resolve.
type Fragment struct {
	Kind    Kind   `json:"kind"`
	Text    string `json:"text"`
	Word    string `json:"word,omitempty"`
	Meaning string `json:"meaning,omitempty"`
}

// Plain is text shown as written.
func Plain(text string) Fragment { return Fragment{Kind: KindPlain, Text: text} }

// Translated is a glossary span carrying its translation.
func Translated(word, meaning string) Fragment {
	return Fragment{Kind: KindTranslation, Text: word, Meaning: meaning}
}

// Lookup is a word the reader can tap; Word holds the key sent to the meaning endpoint.
func Lookup(word string) Fragment {
	return Fragment{Kind: KindLookup, Text: word, Word: domain.NormalizeKey(word)}
}

// BlankLine is the placeholder emitted for empty lines so they keep their height.
const BlankLine = "\u00a0"

// lookupDelimiters are split off as plain fragments in the lookup pass.
const lookupDelimiters = "।,;:!?-\"'"

// Annotator renders lines into fragments.
type Annotator struct {
	matcher *Matcher
}

// NewAnnotator builds an Annotator over the spans of table.
func NewAnnotator(table *glossary.Table) *Annotator {
	return &Annotator{matcher: NewMatcher(table)}
}

// Matcher exposes the span matcher used by the annotator.
func (a *Annotator) Matcher() *Matcher { return a.matcher }

// Annotate renders a line. Concatenating the Text of the result gives the
// original line back, except for blank lines which render as BlankLine.
func (a *Annotator) Annotate(line string, script domain.Script) []Fragment {
	if strings.TrimSpace(line) == "" {
		return []Fragment{Plain(BlankLine)}
	}
	return wrapLookups(splitSpans(line, a.matcher.FindSpans(line, script)))
}

// AnnotateLines renders every line of a poem.
func (a *Annotator) AnnotateLines(lines []string, script domain.Script) [][]Fragment {
	out := make([][]Fragment, len(lines))
	for i, line := range lines {
		out[i] = a.Annotate(line, script)
	}
	return out
}

// splitSpans covers line with alternating plain and translation fragments.
func splitSpans(line string, spans []Span) []Fragment {
	out := make([]Fragment, 0, 2*len(spans)+1)
	last := 0
	for _, s := range spans {
		if s.Start > last {
			out = append(out, Plain(line[last:s.Start]))
		}
		out = append(out, Translated(line[s.Start:s.End], s.Translation))
		last = s.End
	}
	if last < len(line) {
		out = append(out, Plain(line[last:]))
	}
	return out
}

// wrapLookups tokenizes plain fragments into words and delimiters. Words
// become lookup fragments; translation fragments pass through untouched.
func wrapLookups(in []Fragment) []Fragment {
	out := make([]Fragment, 0, len(in))
	for _, f := range in {
		if f.Kind != KindPlain {
			out = append(out, f)
			continue
		}
		for _, part := range splitDelimited(f.Text) {
			if isDelimiter(part) {
				out = appendPlain(out, part)
			} else {
				out = append(out, Lookup(part))
			}
		}
	}
	return out
}

// appendPlain merges consecutive plain text into one fragment.
func appendPlain(out []Fragment, text string) []Fragment {
	if n := len(out); n > 0 && out[n-1].Kind == KindPlain {
		out[n-1].Text += text
		return out
	}
	return append(out, Plain(text))
}

// splitDelimited splits s into words, whitespace runs and single
// delimiter runes, keeping every byte.
func splitDelimited(s string) []string {
	var parts []string
	wordStart := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			if wordStart >= 0 {
				parts = append(parts, s[wordStart:i])
				wordStart = -1
			}
			j := i + size
			for j < len(s) {
				r2, size2 := utf8.DecodeRuneInString(s[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += size2
			}
			parts = append(parts, s[i:j])
			i = j
			continue
		case strings.ContainsRune(lookupDelimiters, r):
			if wordStart >= 0 {
				parts = append(parts, s[wordStart:i])
				wordStart = -1
			}
			parts = append(parts, s[i:i+size])
		default:
			if wordStart < 0 {
				wordStart = i
			}
		}
		i += size
	}
	if wordStart >= 0 {
		parts = append(parts, s[wordStart:])
	}
	return parts
}

func isDelimiter(part string) bool {
	if strings.TrimSpace(part) == "" {
		return true
	}
	r, size := utf8.DecodeRuneInString(part)
	return size == len(part) && strings.ContainsRune(lookupDelimiters, r)
}

// Text concatenates fragment texts.
func Text(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}
