// Package annotate turns a poem line into renderable fragments: glossary
// matches become translation fragments, every other word becomes a lookup
// fragment resolved on demand.
package annotate

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/nazm-backend/internal/domain"
	"github.com/heartmarshall/nazm-backend/internal/glossary"
)

// Span is a glossary match inside one line. Start and End are byte offsets
// into the line, always on rune boundaries; the range is half-open.
type Span struct {
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Start       int    `json:"startIndex"`
	End         int    `json:"endIndex"`
}

// Matcher finds glossary spans in poem lines.
type Matcher struct {
	table *glossary.Table
}

// NewMatcher returns a Matcher over the keys of table.
func NewMatcher(table *glossary.Table) *Matcher {
	return &Matcher{table: table}
}

// FindSpans returns the accepted, pairwise non-overlapping matches in line,
// ordered by Start. Blank lines yield no spans.
//
// Every occurrence of every key is collected, then candidates are ordered by
// start with longer matches first at equal starts, and accepted greedily
// when they begin at or after the end of the last accepted span.
func (m *Matcher) FindSpans(line string, script domain.Script) []Span {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	var candidates []Span
	if script == domain.ScriptRoman {
		candidates = m.romanCandidates(line)
	} else {
		candidates = m.devanagariCandidates(line)
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End-candidates[i].Start > candidates[j].End-candidates[j].Start
	})

	accepted := make([]Span, 0, len(candidates))
	end := 0
	for _, c := range candidates {
		if c.Start < end {
			continue
		}
		accepted = append(accepted, c)
		end = c.End
	}
	return accepted
}

func (m *Matcher) devanagariCandidates(line string) []Span {
	var out []Span
	for _, headword := range m.table.Headwords() {
		tr, _ := m.table.Lookup(headword, domain.ScriptDevanagari)
		for from := 0; from < len(line); {
			i := strings.Index(line[from:], headword)
			if i < 0 {
				break
			}
			start := from + i
			end := start + len(headword)
			out = append(out, Span{Word: line[start:end], Translation: tr.Meaning, Start: start, End: end})
			from = end
		}
	}
	return out
}

func (m *Matcher) romanCandidates(line string) []Span {
	var out []Span
	for _, key := range m.table.RomanKeys() {
		tr, ok := m.table.Lookup(key, domain.ScriptRoman)
		if !ok {
			continue
		}
		for from := 0; from < len(line); {
			start, end := indexFold(line, key, from)
			if start < 0 {
				break
			}
			out = append(out, Span{Word: line[start:end], Translation: tr.Meaning, Start: start, End: end})
			from = end
		}
	}
	return out
}

// indexFold finds the first case-insensitive occurrence of sub in s at or
// after byte offset from. It returns byte offsets into s, which may span a
// different number of bytes than sub when case forms differ in width.
func indexFold(s, sub string, from int) (start, end int) {
	if sub == "" {
		return -1, -1
	}
	for i := from; i < len(s); {
		if n := prefixFold(s[i:], sub); n > 0 {
			return i, i + n
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return -1, -1
}

// prefixFold reports how many bytes of s match sub case-insensitively,
// or 0 when s does not start with sub.
func prefixFold(s, sub string) int {
	n := 0
	for _, want := range sub {
		if n >= len(s) {
			return 0
		}
		got, size := utf8.DecodeRuneInString(s[n:])
		if got != want && unicode.ToLower(got) != unicode.ToLower(want) {
			return 0
		}
		n += size
	}
	return n
}
